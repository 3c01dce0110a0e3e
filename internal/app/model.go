// Package app implements the interactive selection core: a bubbletea model
// owning the query, the entry lists, the cursor and the interaction mode.
// All state changes happen in Update; View is a pure projection of state.
package app

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trygo/internal/rank"
	"trygo/internal/ui"
	"trygo/internal/workspace"
)

// Mode gates which inputs are meaningful.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDeleteConfirm
)

// previewItem is one child of the highlighted entry's directory, shown in
// the preview pane.
type previewItem struct {
	name  string
	isDir bool
}

// previewCap bounds how many children are read per cursor move; the pane
// can never show more rows than a terminal is tall.
const previewCap = 128

// keyMap declares the bindings the state machine reacts to. Everything else
// falls through to the query input.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Yank    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Confirm: key.NewBinding(key.WithKeys("enter")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+d")),
		Edit:    key.NewBinding(key.WithKeys("ctrl+e")),
		Yank:    key.NewBinding(key.WithKeys("ctrl+y")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

// Model is the single mutable aggregate for one interactive session.
type Model struct {
	root      string
	theme     ui.Theme
	editorCmd string

	searchInput textinput.Model
	all         []workspace.Entry
	filtered    []workspace.Entry
	cursor      int
	mode        Mode
	status      string

	preview []previewItem

	width  int
	height int
	ready  bool

	selection   string
	wantsEditor bool

	keys keyMap

	// removeAll is swapped in tests to simulate deletion I/O failures.
	removeAll func(string) error
}

// New builds the model from an already-scanned entry collection. Entries
// arrive most-recently-modified first and that order is preserved as the
// empty-query view.
func New(root string, entries []workspace.Entry, theme ui.Theme, editorCmd string) Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Focus()

	m := Model{
		root:        root,
		theme:       theme,
		editorCmd:   editorCmd,
		searchInput: ti,
		all:         entries,
		filtered:    rank.Rank(entries, ""),
		keys:        defaultKeyMap(),
		removeAll:   os.RemoveAll,
	}
	m.loadPreview()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the final selection after the program exits: the chosen
// name (or raw query for a new workspace), whether the editor was requested,
// and whether there is a result at all.
func (m Model) Result() (string, bool, bool) {
	return m.selection, m.wantsEditor, m.selection != ""
}

// Query returns the active search string.
func (m Model) Query() string {
	return m.searchInput.Value()
}

// refilter recomputes the filtered view for the current query and resets
// the cursor to the top.
func (m *Model) refilter() {
	m.filtered = rank.Rank(m.all, m.searchInput.Value())
	m.cursor = 0
	m.clampCursor()
}

// clampCursor keeps the cursor inside [0, len(filtered)). Filtering resets
// the cursor anyway; this guards any future path that forgets to.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the entry under the cursor, if any.
func (m Model) selected() (workspace.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return workspace.Entry{}, false
	}
	return m.filtered[m.cursor], true
}

// loadPreview reads the highlighted entry's immediate children. Runs on
// cursor moves and filter changes so View stays free of I/O. Read errors
// leave the pane empty.
func (m *Model) loadPreview() {
	m.preview = nil
	entry, ok := m.selected()
	if !ok {
		return
	}

	dirents, err := os.ReadDir(filepath.Join(m.root, entry.Name))
	if err != nil {
		return
	}
	for _, d := range dirents {
		m.preview = append(m.preview, previewItem{name: d.Name(), isDir: d.IsDir()})
		if len(m.preview) >= previewCap {
			break
		}
	}
}

// dropEntry removes an entry from the scan-time collection by name.
func (m *Model) dropEntry(name string) {
	kept := m.all[:0]
	for _, e := range m.all {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	m.all = kept
}
