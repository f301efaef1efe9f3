package dataset

import "errors"

var (
	// ErrMissingDirectory is returned when a root does not exist on disk.
	ErrMissingDirectory = errors.New("data directory does not exist")

	// ErrNoSelection is returned when the participant is read before one was set.
	ErrNoSelection = errors.New("no participant was selected")

	// ErrIncompleteData is returned when a participant is not among the
	// complete file sets found under the root.
	ErrIncompleteData = errors.New("participant data missing or incomplete")
)
