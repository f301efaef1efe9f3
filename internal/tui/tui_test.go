package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/cnsr-locator/internal/dataset"
	ioutils "github.com/handiism/cnsr-locator/internal/io"
)

func newTestModel(t *testing.T) (*Model, *dataset.Locator, string) {
	t.Helper()
	root := t.TempDir()
	if err := ioutils.Touch(root,
		"sart_100.eeg", "sart_100.vhdr", "sart_100.vmrk",
		"sart_200.eeg", "sart_200.vhdr", "sart_200.vmrk",
		"sart_300.eeg",
	); err != nil {
		t.Fatal(err)
	}

	loc, err := dataset.New(dataset.ERN, root, "")
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(loc, false), loc, root
}

func TestNewModel_PopulatesParticipants(t *testing.T) {
	m, _, root := newTestModel(t)

	if m.err != nil {
		t.Fatalf("model error = %v", m.err)
	}
	if got := len(m.list.Items()); got != 2 {
		t.Errorf("participant items = %d, want 2", got)
	}
	if m.dirs.CurrentDirectory != root {
		t.Errorf("CurrentDirectory = %q, want %q", m.dirs.CurrentDirectory, root)
	}
}

func TestUpdate_TabSwitchesFocus(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != PaneParticipants {
		t.Errorf("focus after tab = %v, want PaneParticipants", m.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != PaneDirectories {
		t.Errorf("focus after second tab = %v, want PaneDirectories", m.focus)
	}
}

func TestUpdate_EnterSelectsParticipant(t *testing.T) {
	m, loc, root := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	p, err := loc.Participant()
	if err != nil {
		t.Fatalf("Participant() error = %v", err)
	}
	if p != "100" {
		t.Errorf("Participant() = %q, want %q", p, "100")
	}

	sel := m.Selection()
	if sel == nil {
		t.Fatal("Selection() = nil after enter")
	}
	if want := filepath.Join(root, "sart_100.vhdr"); sel.Paths["vhdr"] != want {
		t.Errorf("vhdr path = %q, want %q", sel.Paths["vhdr"], want)
	}
	if !strings.Contains(m.View(), "sart_100.vmrk") {
		t.Error("View() does not list the selected files")
	}
}

func TestChooseDirectory(t *testing.T) {
	m, loc, _ := newTestModel(t)

	other := t.TempDir()
	if err := ioutils.Touch(other, "sart_7.eeg", "sart_7.vhdr", "sart_7.vmrk"); err != nil {
		t.Fatal(err)
	}
	m.chooseDirectory(other)

	if m.err != nil {
		t.Fatalf("chooseDirectory() error = %v", m.err)
	}
	if loc.Root() != other {
		t.Errorf("Root() = %q, want %q", loc.Root(), other)
	}
	if got := len(m.list.Items()); got != 1 {
		t.Errorf("participant items = %d, want 1", got)
	}
	if m.focus != PaneParticipants {
		t.Errorf("focus = %v, want PaneParticipants", m.focus)
	}
}

func TestChooseDirectory_Missing(t *testing.T) {
	m, _, root := newTestModel(t)

	m.chooseDirectory(filepath.Join(root, "nope"))

	if !errors.Is(m.err, dataset.ErrMissingDirectory) {
		t.Errorf("err = %v, want ErrMissingDirectory", m.err)
	}
	if got := len(m.list.Items()); got != 2 {
		t.Errorf("participant items = %d, want 2", got)
	}
	if m.Value() != "" {
		t.Errorf("Value() = %q, want empty after rejected directory", m.Value())
	}
	if !strings.Contains(m.View(), "does not exist") {
		t.Error("View() does not show the error")
	}
}

func TestChooseDirectory_MissingKeepsSelection(t *testing.T) {
	m, loc, root := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.chooseDirectory(filepath.Join(root, "nope"))

	if p, err := loc.Participant(); err != nil || p != "100" {
		t.Fatalf("Participant() = %q, %v, want %q", p, err, "100")
	}
	sel := m.Selection()
	if sel == nil || sel.Participant != "100" {
		t.Fatalf("Selection() = %+v, want participant 100", sel)
	}
	if got := len(m.list.Items()); got != 2 {
		t.Errorf("participant items = %d, want 2", got)
	}
}

func TestChooseDirectory_KeepsParticipantCompleteUnderNewRoot(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.selectParticipant("100")

	other := t.TempDir()
	if err := ioutils.Touch(other, "sart_100.eeg", "sart_100.vhdr", "sart_100.vmrk"); err != nil {
		t.Fatal(err)
	}
	m.chooseDirectory(other)

	if m.err != nil {
		t.Fatalf("chooseDirectory() error = %v", m.err)
	}
	if m.Value() != other {
		t.Errorf("Value() = %q, want %q", m.Value(), other)
	}
	sel := m.Selection()
	if sel == nil {
		t.Fatal("Selection() = nil, want participant 100 under new root")
	}
	if want := filepath.Join(other, "sart_100.eeg"); sel.Root != other || sel.Paths["eeg"] != want {
		t.Errorf("Selection() = %+v, want root %q and eeg %q", sel, other, want)
	}
}

func TestChooseDirectory_ClearsParticipantMissingUnderNewRoot(t *testing.T) {
	m, loc, _ := newTestModel(t)
	m.selectParticipant("100")

	other := t.TempDir()
	if err := ioutils.Touch(other, "sart_7.eeg", "sart_7.vhdr", "sart_7.vmrk"); err != nil {
		t.Fatal(err)
	}
	m.chooseDirectory(other)

	if _, err := loc.Participant(); !errors.Is(err, dataset.ErrNoSelection) {
		t.Errorf("Participant() error = %v, want ErrNoSelection", err)
	}
	if m.Selection() != nil {
		t.Errorf("Selection() = %+v, want nil", m.Selection())
	}
}

func TestSelectParticipant_Invalid(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.selectParticipant("300")

	if !errors.Is(m.err, dataset.ErrIncompleteData) {
		t.Errorf("err = %v, want ErrIncompleteData", m.err)
	}
	if m.Selection() != nil {
		t.Error("Selection() != nil after failed selection")
	}
}

func TestUpdate_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Update(q) returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) did not return tea.Quit")
	}
}
