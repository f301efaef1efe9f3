package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/handiism/cnsr-locator/internal/dataset"
)

// Settings holds all configuration options.
type Settings struct {
	// DataRoot is the directory holding the recordings. Empty means
	// "data" under the working directory.
	DataRoot string `json:"data_root" env:"CNSR_DATA_ROOT"`

	// DefaultKind is the dataset kind used when a command names none.
	DefaultKind string `json:"default_kind" env:"CNSR_KIND"`

	// ScanKinds lists the kinds the scan command surveys.
	ScanKinds []string `json:"scan_kinds" env:"CNSR_SCAN_KINDS" envSeparator:","`

	// ShowHidden makes the picker list dot directories.
	ShowHidden bool `json:"show_hidden" env:"CNSR_SHOW_HIDDEN"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	kinds := dataset.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}

	return &Settings{
		DataRoot:    "",
		DefaultKind: dataset.EDA.Name,
		ScanKinds:   names,
		ShowHidden:  false,
	}
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cnsr", "settings.json")
}

// Load reads settings from a JSON file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, err
		default:
			if err := json.Unmarshal(data, settings); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that every named kind exists.
func (s *Settings) Validate() error {
	if _, err := dataset.ParseKind(s.DefaultKind); err != nil {
		return fmt.Errorf("default_kind: %w", err)
	}
	if _, err := s.Kinds(); err != nil {
		return err
	}
	return nil
}

// Kind returns the configured default dataset kind.
func (s *Settings) Kind() (dataset.Kind, error) {
	return dataset.ParseKind(s.DefaultKind)
}

// Kinds converts ScanKinds to dataset kinds, keeping their order.
func (s *Settings) Kinds() ([]dataset.Kind, error) {
	kinds := make([]dataset.Kind, 0, len(s.ScanKinds))
	for _, name := range s.ScanKinds {
		k, err := dataset.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("scan_kinds: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
