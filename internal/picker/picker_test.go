package picker

import (
	"errors"
	"reflect"
	"testing"

	"github.com/handiism/cnsr-locator/internal/dataset"
	ioutils "github.com/handiism/cnsr-locator/internal/io"
)

type fakeChooser struct {
	value    string
	onChange func(string) error
}

func (c *fakeChooser) Value() string                 { return c.value }
func (c *fakeChooser) OnChange(fn func(string) error) { c.onChange = fn }

func (c *fakeChooser) choose(dir string) error {
	c.value = dir
	return c.onChange(dir)
}

type fakeDropdown struct {
	options  []string
	onSelect func(string) error
}

func (d *fakeDropdown) SetOptions(options []string)    { d.options = options }
func (d *fakeDropdown) OnSelect(fn func(string) error) { d.onSelect = fn }

func TestBind(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	if err := ioutils.Touch(first, "1.txt", "2.txt"); err != nil {
		t.Fatal(err)
	}
	if err := ioutils.Touch(second, "3.txt"); err != nil {
		t.Fatal(err)
	}

	loc, err := dataset.NewEDA(first, "")
	if err != nil {
		t.Fatal(err)
	}
	chooser := &fakeChooser{}
	dropdown := &fakeDropdown{}

	if err := Bind(loc, chooser, dropdown); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if want := []string{"1", "2"}; !reflect.DeepEqual(dropdown.options, want) {
		t.Errorf("options = %v, want %v", dropdown.options, want)
	}

	if err := dropdown.onSelect("2"); err != nil {
		t.Fatalf("select 2: %v", err)
	}
	if p, _ := loc.Participant(); p != "2" {
		t.Errorf("Participant() = %q, want %q", p, "2")
	}

	if err := chooser.choose(second); err != nil {
		t.Fatalf("choose second root: %v", err)
	}
	if want := []string{"3"}; !reflect.DeepEqual(dropdown.options, want) {
		t.Errorf("options after root change = %v, want %v", dropdown.options, want)
	}
	if loc.Root() != second {
		t.Errorf("Root() = %q, want %q", loc.Root(), second)
	}

	if err := dropdown.onSelect("2"); !errors.Is(err, dataset.ErrIncompleteData) {
		t.Errorf("select stale participant: error = %v, want ErrIncompleteData", err)
	}
}

func TestBind_ChooserValueWins(t *testing.T) {
	root := t.TempDir()
	if err := ioutils.Touch(root, "rest_9.eeg", "rest_9.vhdr", "rest_9.vmrk"); err != nil {
		t.Fatal(err)
	}

	loc, err := dataset.NewHRV("", "")
	if err != nil {
		t.Fatal(err)
	}
	dropdown := &fakeDropdown{}
	if err := Bind(loc, &fakeChooser{value: root}, dropdown); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if want := []string{"9"}; !reflect.DeepEqual(dropdown.options, want) {
		t.Errorf("options = %v, want %v", dropdown.options, want)
	}
}

func TestBind_MissingDirectoryKeepsSelection(t *testing.T) {
	root := t.TempDir()
	if err := ioutils.Touch(root, "1.txt", "2.txt"); err != nil {
		t.Fatal(err)
	}
	loc, err := dataset.NewEDA(root, "")
	if err != nil {
		t.Fatal(err)
	}
	chooser := &fakeChooser{}
	dropdown := &fakeDropdown{}
	if err := Bind(loc, chooser, dropdown); err != nil {
		t.Fatal(err)
	}
	if err := dropdown.onSelect("1"); err != nil {
		t.Fatalf("select 1: %v", err)
	}

	err = chooser.choose(root + "/missing")
	if !errors.Is(err, dataset.ErrMissingDirectory) {
		t.Errorf("choose missing dir: error = %v, want ErrMissingDirectory", err)
	}
	if want := []string{"1", "2"}; !reflect.DeepEqual(dropdown.options, want) {
		t.Errorf("options = %v, want %v", dropdown.options, want)
	}
	if loc.Root() != root {
		t.Errorf("Root() = %q, want %q", loc.Root(), root)
	}
	if p, err := loc.Participant(); err != nil || p != "1" {
		t.Errorf("Participant() = %q, %v, want %q", p, err, "1")
	}
}
