package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/cnsr-locator/internal/io"
)

// Locator resolves the files of one participant of one dataset kind.
//
// The zero value is not usable; create locators with New or one of the
// kind-specific constructors. A Locator is not safe for concurrent use.
type Locator struct {
	kind        Kind
	root        string
	defaultRoot string
	participant string
}

// Candidate is a primary recording file found under the root, together
// with the required extensions that have no file next to it.
type Candidate struct {
	Participant string   `json:"participant"`
	Missing     []string `json:"missing,omitempty"`
}

// Complete reports whether every required file exists.
func (c Candidate) Complete() bool {
	return len(c.Missing) == 0
}

// New creates a Locator for kind. Empty root selects the default root
// (data/ under the current working directory); empty participant leaves
// the selection unset. Both non-empty values are validated by the same
// rules as SetRoot and SetParticipant.
func New(kind Kind, root, participant string) (*Locator, error) {
	l := &Locator{kind: kind}
	if wd, err := os.Getwd(); err == nil {
		l.defaultRoot = filepath.Join(wd, "data")
	}

	if err := l.SetRoot(root); err != nil {
		return nil, err
	}
	if err := l.SetParticipant(participant); err != nil {
		return nil, err
	}
	return l, nil
}

// Kind returns the dataset kind this locator searches for.
func (l *Locator) Kind() Kind {
	return l.kind
}

// Root returns the explicitly configured root, or "" if none was set.
func (l *Locator) Root() string {
	return l.root
}

// DefaultRoot returns the fallback root used when no root is set.
func (l *Locator) DefaultRoot() string {
	return l.defaultRoot
}

// EffectiveRoot returns the configured root, or the default root if it
// exists. It never modifies the locator.
func (l *Locator) EffectiveRoot() (string, error) {
	if l.root != "" {
		return l.root, nil
	}
	if l.defaultRoot == "" || !ioutils.Exists(l.defaultRoot) {
		return "", fmt.Errorf("%w: %q", ErrMissingDirectory, l.defaultRoot)
	}
	return l.defaultRoot, nil
}

// SetRoot changes the data root. Empty root clears it without validation.
// Otherwise the path is made absolute and must exist.
//
// A selected participant that has no complete file set under the new
// root is cleared.
func (l *Locator) SetRoot(root string) error {
	if root == "" {
		l.root = ""
		l.reconcile()
		return nil
	}

	abs, err := ioutils.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve data directory %q: %w", root, err)
	}
	if !ioutils.Exists(abs) {
		return fmt.Errorf("%w: %q", ErrMissingDirectory, abs)
	}

	l.root = abs
	l.reconcile()
	return nil
}

func (l *Locator) reconcile() {
	if l.participant == "" {
		return
	}
	if !l.has(l.participant) {
		l.participant = ""
	}
}

// Participant returns the selected participant.
func (l *Locator) Participant() (string, error) {
	if l.participant == "" {
		return "", ErrNoSelection
	}
	return l.participant, nil
}

// SetParticipant selects a participant. Empty clears the selection.
// Otherwise participant must be returned by FindParticipants for the
// current root.
func (l *Locator) SetParticipant(participant string) error {
	if participant == "" {
		l.participant = ""
		return nil
	}

	if !l.has(participant) {
		return fmt.Errorf("%s data for participant %q: %w", l.kind.Name, participant, ErrIncompleteData)
	}

	l.participant = participant
	return nil
}

func (l *Locator) has(participant string) bool {
	found, err := l.FindParticipants()
	if err != nil {
		return false
	}
	for _, p := range found {
		if p == participant {
			return true
		}
	}
	return false
}

// FindParticipants returns the identifiers of all complete file sets under
// the effective root, in directory listing order.
func (l *Locator) FindParticipants() ([]string, error) {
	candidates, err := l.Candidates()
	if err != nil {
		return nil, err
	}

	participants := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Complete() {
			participants = append(participants, c.Participant)
		}
	}
	return participants, nil
}

// Candidates returns every file under the effective root that matches the
// kind's naming convention, complete or not.
func (l *Locator) Candidates() ([]Candidate, error) {
	root, err := l.EffectiveRoot()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list data directory %q: %w", root, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		name := entry.Name()
		// Shell globs do not match dot files.
		if strings.HasPrefix(name, ".") {
			continue
		}
		if ok, _ := filepath.Match(l.kind.Glob(), name); !ok {
			continue
		}
		participant, ok := l.kind.participant(name)
		if !ok {
			continue
		}

		c := Candidate{Participant: participant}
		for _, ext := range l.kind.Required {
			if !ioutils.Exists(filepath.Join(root, l.kind.FileName(participant, ext))) {
				c.Missing = append(c.Missing, ext)
			}
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

// Path joins the effective root with the selected participant's file name
// for ext. It does not check that the file exists.
func (l *Locator) Path(ext string) (string, error) {
	participant, err := l.Participant()
	if err != nil {
		return "", err
	}
	root, err := l.EffectiveRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, l.kind.FileName(participant, ext)), nil
}

// Paths returns the path of every file in the selected participant's set,
// keyed by extension.
func (l *Locator) Paths() (map[string]string, error) {
	paths := make(map[string]string)
	for _, ext := range l.kind.Extensions() {
		p, err := l.Path(ext)
		if err != nil {
			return nil, err
		}
		paths[ext] = p
	}
	return paths, nil
}

// EDAData locates single-file electrodermal activity recordings.
type EDAData struct {
	*Locator
}

// NewEDA creates a locator for EDA recordings (<participant>.txt).
func NewEDA(root, participant string) (*EDAData, error) {
	l, err := New(EDA, root, participant)
	if err != nil {
		return nil, err
	}
	return &EDAData{Locator: l}, nil
}

// Filename returns the path of the participant's recording.
func (d *EDAData) Filename() (string, error) {
	return d.Path(d.kind.Extension)
}

// BrainVisionData locates recordings stored as BrainVision triples:
// a binary .eeg file, a .vhdr header and a .vmrk marker file.
type BrainVisionData struct {
	*Locator
}

func newBrainVision(kind Kind, root, participant string) (*BrainVisionData, error) {
	l, err := New(kind, root, participant)
	if err != nil {
		return nil, err
	}
	return &BrainVisionData{Locator: l}, nil
}

// NewERN creates a locator for ERN recordings (sart_<participant>.*).
func NewERN(root, participant string) (*BrainVisionData, error) {
	return newBrainVision(ERN, root, participant)
}

// NewFAA creates a locator for FAA recordings (<participant>.*).
func NewFAA(root, participant string) (*BrainVisionData, error) {
	return newBrainVision(FAA, root, participant)
}

// NewHRV creates a locator for HRV recordings (rest_<participant>.*).
func NewHRV(root, participant string) (*BrainVisionData, error) {
	return newBrainVision(HRV, root, participant)
}

// EEGFile returns the path of the binary EEG data file.
func (d *BrainVisionData) EEGFile() (string, error) {
	return d.Path("eeg")
}

// VHDRFile returns the path of the header file.
func (d *BrainVisionData) VHDRFile() (string, error) {
	return d.Path("vhdr")
}

// VMRKFile returns the path of the marker file.
func (d *BrainVisionData) VMRKFile() (string, error) {
	return d.Path("vmrk")
}
