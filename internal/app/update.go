package app

import (
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model. Input is dispatched by mode; every branch
// leaves the cursor clamped and never aborts the session on I/O failure.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.searchInput.Width = max(msg.Width-18, 10)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeDeleteConfirm:
			return m.updateDeleteConfirm(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.loadPreview()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.loadPreview()
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if entry, ok := m.selected(); ok {
			m.selection = entry.Name
		} else if q := m.searchInput.Value(); q != "" {
			// Nothing matched: the query names a new workspace (or a URL
			// to clone); dispatch decides which.
			m.selection = q
		} else {
			// Empty list, empty query: confirming nothing is a no-op,
			// not an empty-named create.
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Delete):
		if len(m.filtered) > 0 {
			m.mode = ModeDeleteConfirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.editorCmd == "" {
			m.status = "No editor configured (set editor in config.toml or $EDITOR)"
			return m, nil
		}
		if entry, ok := m.selected(); ok {
			m.selection = entry.Name
		} else if q := m.searchInput.Value(); q != "" {
			m.selection = q
		} else {
			return m, nil
		}
		m.wantsEditor = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Yank):
		if entry, ok := m.selected(); ok {
			path := filepath.Join(m.root, entry.Name)
			if err := clipboard.WriteAll(path); err != nil {
				m.status = "Clipboard unavailable: " + err.Error()
			} else {
				m.status = "Copied: " + path
			}
		}
		return m, nil
	}

	// Everything else edits the query.
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.status = ""
		m.refilter()
		m.loadPreview()
	}
	return m, cmd
}

func (m Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteSelected()
		return m, nil
	case "n", "N", "esc":
		m.mode = ModeNormal
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// deleteSelected removes the highlighted entry's directory from disk. On
// success the entry leaves the collection and the view is re-ranked; on
// failure the collection is untouched and the error surfaces as status
// text. A partial removal therefore leaves memory ahead of disk until the
// next scan; that mirrors the filesystem truthfully enough for a one-shot
// session. Returns to Normal mode either way.
func (m *Model) deleteSelected() {
	defer func() { m.mode = ModeNormal }()

	entry, ok := m.selected()
	if !ok {
		return
	}
	path := filepath.Join(m.root, entry.Name)

	if err := m.removeAll(path); err != nil {
		m.status = "Error deleting: " + err.Error()
		return
	}

	m.dropEntry(entry.Name)
	m.refilter()
	m.loadPreview()
	m.status = "Deleted: " + path
}
