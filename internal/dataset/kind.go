package dataset

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind describes the filename convention of one dataset type.
type Kind struct {
	// Name is the short display name, e.g. "ERN".
	Name string

	// Prefix precedes the participant identifier in every filename.
	Prefix string

	// Extension is the extension of the primary recording file, without dot.
	Extension string

	// Required lists the extensions that must all exist for a participant.
	// Empty means the primary file alone is the dataset.
	Required []string

	pattern *regexp.Regexp
}

func newKind(name, prefix, ext string, required ...string) Kind {
	return Kind{
		Name:      name,
		Prefix:    prefix,
		Extension: ext,
		Required:  required,
		pattern:   regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `([0-9]+)\.` + regexp.QuoteMeta(ext) + `$`),
	}
}

var brainVision = []string{"eeg", "vhdr", "vmrk"}

var (
	EDA = newKind("EDA", "", "txt")
	ERN = newKind("ERN", "sart_", "eeg", brainVision...)
	FAA = newKind("FAA", "", "eeg", brainVision...)
	HRV = newKind("HRV", "rest_", "eeg", brainVision...)
)

// Kinds returns all known dataset kinds in display order.
func Kinds() []Kind {
	return []Kind{EDA, ERN, FAA, HRV}
}

// ParseKind looks a kind up by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.Name, name) {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("unknown dataset kind %q", name)
}

// Glob returns the shell pattern that primary recording files match.
func (k Kind) Glob() string {
	return k.Prefix + "*." + k.Extension
}

// FileName returns the file name for participant with extension ext.
func (k Kind) FileName(participant, ext string) string {
	return k.Prefix + participant + "." + ext
}

// Extensions returns every extension that makes up a complete file set.
func (k Kind) Extensions() []string {
	if len(k.Required) == 0 {
		return []string{k.Extension}
	}
	return k.Required
}

// participant extracts the identifier from a primary file name.
func (k Kind) participant(name string) (string, bool) {
	if k.pattern == nil {
		return "", false
	}
	m := k.pattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (k Kind) String() string {
	return k.Name
}
