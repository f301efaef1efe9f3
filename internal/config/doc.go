// Package config provides configuration management for cnsr-locator.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment variable overrides
//   - Conversion of kind names to dataset kinds
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Data root: ./data
//	// Default kind: EDA
//	// Scan kinds: EDA, ERN, FAA, HRV
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/settings.json")
//	// Uses defaults if the file doesn't exist
//
// # Environment
//
// After the file is read, these variables override it:
//   - CNSR_DATA_ROOT: data root directory
//   - CNSR_KIND: default dataset kind
//   - CNSR_SCAN_KINDS: comma-separated kinds for scans
//   - CNSR_SHOW_HIDDEN: list dot directories in the picker
package config
