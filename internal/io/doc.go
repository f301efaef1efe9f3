// Package ioutils provides the small file system helpers used by the
// dataset locator, the scanner and their tests.
//
// This package contains functions for:
//   - Existence checks that treat any stat error as "missing"
//   - Absolute path normalization
//   - Directory creation
//   - Writing empty placeholder files (test fixtures, dry runs)
//
// # Existence
//
//	if !ioutils.Exists("/data/EDA/12345.txt") {
//	    // participant data incomplete
//	}
//
// # Fixtures
//
//	// Creates /tmp/x/sart_12345.eeg, .vhdr and .vmrk
//	err := ioutils.Touch("/tmp/x", "sart_12345.eeg", "sart_12345.vhdr", "sart_12345.vmrk")
package ioutils
