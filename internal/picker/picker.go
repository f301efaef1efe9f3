// Package picker wires a directory chooser and a participant dropdown to a
// dataset locator without depending on any particular UI toolkit.
package picker

import "fmt"

// DirectoryChooser is a widget that lets the user pick a data root.
type DirectoryChooser interface {
	// Value returns the currently chosen directory, or "" if none.
	Value() string

	// OnChange registers fn to run whenever the user picks a directory.
	// A non-nil error is shown to the user by the widget.
	OnChange(fn func(dir string) error)
}

// Dropdown is a widget that offers a list of participants.
type Dropdown interface {
	// SetOptions replaces the offered values.
	SetOptions(options []string)

	// OnSelect registers fn to run whenever the user selects a value.
	// A non-nil error is shown to the user by the widget.
	OnSelect(fn func(value string) error)
}

// Target is the locator state the picker reads and mutates.
type Target interface {
	EffectiveRoot() (string, error)
	SetRoot(root string) error
	FindParticipants() ([]string, error)
	SetParticipant(participant string) error
}

// Bind populates the dropdown from the target's current root and registers
// the callbacks that keep target and widgets in sync.
//
// A directory change sets the target root and repopulates the dropdown; a
// selection sets the participant. Validation errors flow back to the
// widget that triggered them; the dropdown keeps its options when a
// directory is rejected. The initial population error is returned,
// with the dropdown left empty.
func Bind(target Target, chooser DirectoryChooser, dropdown Dropdown) error {
	chooser.OnChange(func(dir string) error {
		// A rejected root leaves the locator untouched, so the options stay.
		if err := target.SetRoot(dir); err != nil {
			return err
		}
		return refresh(target, dropdown)
	})

	dropdown.OnSelect(func(value string) error {
		return target.SetParticipant(value)
	})

	if dir := chooser.Value(); dir != "" {
		if err := target.SetRoot(dir); err != nil {
			dropdown.SetOptions(nil)
			return err
		}
	}
	return refresh(target, dropdown)
}

func refresh(target Target, dropdown Dropdown) error {
	participants, err := target.FindParticipants()
	if err != nil {
		dropdown.SetOptions(nil)
		return fmt.Errorf("find participants: %w", err)
	}
	dropdown.SetOptions(participants)
	return nil
}
