package ioutils

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path exists on disk.
//
// Files and directories both count. Any stat error (including permission
// errors) is reported as "does not exist", matching how the locator treats
// unreadable companion files as missing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Abs returns the cleaned absolute form of path.
//
// A leading "~/" is expanded to the user's home directory, so settings
// files can carry paths like "~/cnsr/data".
func Abs(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Touch creates dir (if needed) and an empty file for each name inside it.
//
// Example:
//
//	err := Touch(root, "12345.txt")
func Touch(dir string, names ...string) error {
	if err := EnsureDir(dir); err != nil {
		return err
	}
	for _, name := range names {
		if err := WriteFile(filepath.Join(dir, name), nil); err != nil {
			return err
		}
	}
	return nil
}
