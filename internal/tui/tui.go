// Package tui provides a Bubble Tea participant picker for cnsr-locator.
package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/cnsr-locator/internal/dataset"
	"github.com/handiism/cnsr-locator/internal/picker"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("#4ECDC4"))
)

// Pane identifies which widget receives key presses.
type Pane int

const (
	PaneDirectories Pane = iota
	PaneParticipants
)

// Selection is the outcome of a picker session.
type Selection struct {
	Kind        string            `json:"kind"`
	Root        string            `json:"root"`
	Participant string            `json:"participant"`
	Paths       map[string]string `json:"paths"`
}

type participantItem struct {
	id   string
	file string
}

func (i participantItem) Title() string       { return i.id }
func (i participantItem) Description() string { return i.file }
func (i participantItem) FilterValue() string { return i.id }

// Model is the Bubble Tea model for the picker. It implements both
// picker.DirectoryChooser and picker.Dropdown.
type Model struct {
	locator *dataset.Locator

	dirs  filepicker.Model
	list  list.Model
	focus Pane

	dir      string
	onChange []func(string) error
	onSelect []func(string) error

	status    string
	err       error
	selection *Selection

	width  int
	height int
}

var (
	_ picker.DirectoryChooser = (*Model)(nil)
	_ picker.Dropdown         = (*Model)(nil)
)

// NewModel creates a picker bound to loc. The directory browser starts at
// the locator's effective root, or the working directory when there is none.
func NewModel(loc *dataset.Locator, showHidden bool) *Model {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = showHidden
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(lipgloss.Color("#FF6B6B"))
	fp.Styles.Selected = fp.Styles.Selected.Foreground(lipgloss.Color("#FF6B6B"))
	if root, err := loc.EffectiveRoot(); err == nil {
		fp.CurrentDirectory = root
	} else if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	l := list.New(nil, list.NewDefaultDelegate(), 40, 20)
	l.Title = loc.Kind().Name + " participants"
	l.Styles.Title = l.Styles.Title.Background(lipgloss.Color("#4ECDC4"))
	l.SetShowHelp(false)
	l.SetStatusBarItemName("participant", "participants")

	m := &Model{
		locator: loc,
		dirs:    fp,
		list:    l,
	}
	if err := picker.Bind(loc, m, m); err != nil {
		m.err = err
	}
	return m
}

// Value returns the last directory chosen in the browser.
func (m *Model) Value() string {
	return m.dir
}

// OnChange registers a directory callback.
func (m *Model) OnChange(fn func(dir string) error) {
	m.onChange = append(m.onChange, fn)
}

// SetOptions replaces the participant list.
func (m *Model) SetOptions(options []string) {
	kind := m.locator.Kind()
	items := make([]list.Item, len(options))
	for i, id := range options {
		exts := kind.Extensions()
		files := make([]string, len(exts))
		for j, ext := range exts {
			files[j] = kind.FileName(id, ext)
		}
		items[i] = participantItem{id: id, file: strings.Join(files, "  ")}
	}
	m.list.SetItems(items)
}

// OnSelect registers a participant callback.
func (m *Model) OnSelect(fn func(value string) error) {
	m.onSelect = append(m.onSelect, fn)
}

// Selection returns the last successful selection, or nil.
func (m *Model) Selection() *Selection {
	return m.selection
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.dirs.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2-4, msg.Height-10)

	case tea.KeyMsg:
		filtering := m.list.FilterState() == list.Filtering

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q", "esc":
			if !filtering {
				return m, tea.Quit
			}

		case "tab":
			if !filtering {
				m.toggleFocus()
				return m, nil
			}

		case "enter":
			if m.focus == PaneParticipants && !filtering {
				if item, ok := m.list.SelectedItem().(participantItem); ok {
					m.selectParticipant(item.id)
				}
				return m, nil
			}
		}

		// Key presses go to the focused pane only.
		var cmd tea.Cmd
		if m.focus == PaneDirectories {
			m.dirs.Path = ""
			m.dirs, cmd = m.dirs.Update(msg)
			if m.dirs.Path != "" {
				m.chooseDirectory(m.dirs.Path)
			}
		} else {
			m.list, cmd = m.list.Update(msg)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.dirs, cmd = m.dirs.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	if m.focus == PaneDirectories {
		m.focus = PaneParticipants
	} else {
		m.focus = PaneDirectories
	}
}

// chooseDirectory runs the directory callbacks for dir. The chosen
// directory and the selection change only when every callback accepts it.
func (m *Model) chooseDirectory(dir string) {
	m.err = nil
	m.status = ""

	for _, fn := range m.onChange {
		if err := fn(dir); err != nil {
			m.err = err
			return
		}
	}

	m.dir = dir
	m.selection = m.currentSelection()

	n := len(m.list.Items())
	m.status = fmt.Sprintf("Data root %s: %d participant(s)", dir, n)
	if n > 0 {
		m.focus = PaneParticipants
	}
}

// selectParticipant runs the selection callbacks for id.
func (m *Model) selectParticipant(id string) {
	m.err = nil
	m.status = ""

	for _, fn := range m.onSelect {
		if err := fn(id); err != nil {
			m.err = err
			m.selection = m.currentSelection()
			return
		}
	}

	m.selection = m.currentSelection()
	if m.selection == nil {
		m.err = fmt.Errorf("participant %s: no files resolved", id)
		return
	}
	m.status = "Selected participant " + id
}

// currentSelection mirrors the locator's participant, or nil if none is set.
func (m *Model) currentSelection() *Selection {
	participant, err := m.locator.Participant()
	if err != nil {
		return nil
	}
	root, err := m.locator.EffectiveRoot()
	if err != nil {
		return nil
	}
	paths, err := m.locator.Paths()
	if err != nil {
		return nil
	}

	return &Selection{
		Kind:        m.locator.Kind().Name,
		Root:        root,
		Participant: participant,
		Paths:       paths,
	}
}

// View renders the UI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CNSR " + m.locator.Kind().Name + " data"))
	b.WriteString("\n")

	dirPane, listPane := paneStyle, paneStyle
	if m.focus == PaneDirectories {
		dirPane = focusedPaneStyle
	} else {
		listPane = focusedPaneStyle
	}

	left := subtitleStyle.Render("Data Root Directory") + "\n" +
		dimStyle.Render(m.dirs.CurrentDirectory) + "\n\n" +
		m.dirs.View()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		dirPane.Render(left),
		listPane.Render(m.list.View()),
	))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(successStyle.Render("✓ " + m.status))
		b.WriteString("\n")
	}
	if m.selection != nil {
		b.WriteString(m.renderPaths())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m *Model) renderPaths() string {
	var b strings.Builder

	exts := make([]string, 0, len(m.selection.Paths))
	for ext := range m.selection.Paths {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-5s %s", ext, m.selection.Paths[ext])))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) helpText() string {
	switch m.focus {
	case PaneParticipants:
		return "enter: select • /: filter • tab: directories • q: quit"
	default:
		return "enter: choose directory • ←/→: navigate • tab: participants • q: quit"
	}
}

// Run starts the picker for loc and returns the last selection made, or
// nil if the user quit without selecting.
func Run(loc *dataset.Locator, showHidden bool) (*Selection, error) {
	p := tea.NewProgram(NewModel(loc, showHidden), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(*Model); ok {
		return m.Selection(), nil
	}
	return nil, nil
}
