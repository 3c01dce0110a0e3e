package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"trygo/internal/workspace"
)

// Version is stamped by the build; the title bar shows it.
var Version = "dev"

// markerColors are fixed per ecosystem, independent of the theme.
var markerColors = map[string]lipgloss.Color{
	"cargo":   lipgloss.Color("#e66432"),
	"maven":   lipgloss.Color("#ff9632"),
	"flutter": lipgloss.Color("#027bde"),
	"go":      lipgloss.Color("#00add8"),
	"python":  lipgloss.Color("#e5c07b"),
	"mise":    lipgloss.Color("#fab387"),
	"git":     lipgloss.Color("#f05032"),
}

// View implements tea.Model. It is a pure projection of model state; all
// I/O (scan, preview reads, deletion) happens in Update.
func (m Model) View() string {
	if !m.ready {
		return "Loading workspaces..."
	}
	if m.width < 24 || m.height < 8 {
		return "Terminal too small"
	}

	title := m.renderTitle()
	search := m.renderSearchBox()
	contentHeight := m.height - lipgloss.Height(title) - lipgloss.Height(search) - 1
	body := m.renderContent(contentHeight)
	footer := m.renderFooter()

	main := title + "\n" + search + "\n" + body + "\n" + footer

	if m.mode == ModeDeleteConfirm {
		if entry, ok := m.selected(); ok {
			return m.renderDeletePopup(entry.Name)
		}
	}

	return main
}

func (m Model) renderTitle() string {
	bold := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.HelpText)

	line := bold.Foreground(m.theme.Title).Render("🧪 try") +
		faint.Render("-") +
		bold.Foreground(m.theme.TitleAccent).Render("go") +
		faint.Render(" v"+Version)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m Model) renderSearchBox() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Foreground(m.theme.SearchBox).
		Width(max(m.width-2, 1))
	content := truncate.String(" Search/New  "+m.searchInput.View(), uint(max(m.width-4, 1)))
	return box.Render(content)
}

func (m Model) renderContent(height int) string {
	usable := max(m.width-4, 10)
	listWidth := usable * 70 / 100
	previewWidth := usable - listWidth
	rows := max(height-2, 1)

	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	list := border.
		Width(listWidth).
		Height(rows).
		Render(m.renderList(listWidth, rows))

	preview := border.
		Width(previewWidth).
		Height(rows).
		Render(m.renderPreview(previewWidth, rows))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
}

// renderList renders the visible window of the filtered view, keeping the
// cursor row on screen.
func (m Model) renderList(width, rows int) string {
	if len(m.filtered) == 0 {
		hint := truncate.String(" no workspaces - type a name to create one", uint(max(width, 1)))
		return lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(hint)
	}

	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.filtered))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.filtered[i], i == m.cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderRow lays out one entry: folder glyph, creation date, name, marker
// icons and relative age. The date and age columns drop out first on narrow
// panes, then the name truncates with an ellipsis; a row never exceeds the
// pane width, so lipgloss never wraps it into extra lines.
func (m Model) renderRow(e workspace.Entry, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = "→ "
	}

	created := ""
	if width >= 28 {
		created = e.Created.Format("2006-01-02")
	}
	age := ""
	if width >= 44 {
		age = relativeAge(e.Modified)
	}

	var icons, plainIcons strings.Builder
	for _, marker := range workspace.Registry {
		if !e.Markers[marker.Name] {
			continue
		}
		style := lipgloss.NewStyle().Foreground(markerColors[marker.Name])
		icons.WriteString(style.Render(marker.Icon) + " ")
		plainIcons.WriteString(marker.Icon + " ")
	}

	// 2 columns each for the arrow prefix and folder glyph, 1 gap each
	// side of the name.
	reserved := 2 + 2 + len(created) + 1 + runewidth.StringWidth(plainIcons.String()) + len(age) + 1
	available := max(width-reserved, 1)

	name := e.Name
	padding := 0
	if runewidth.StringWidth(name) > available {
		name = truncate.StringWithTail(name, uint(available), "...")
	} else {
		padding = available - runewidth.StringWidth(name)
	}

	if selected {
		// One flat style for the whole row; nested styles would reset the
		// highlight background mid-line.
		row := prefix + "📁" + created + " " + name +
			strings.Repeat(" ", padding) + plainIcons.String() + age
		return lipgloss.NewStyle().
			Background(m.theme.HighlightBg).
			Foreground(m.theme.HighlightFg).
			Bold(true).
			Render(row)
	}

	dateStyle := lipgloss.NewStyle().Foreground(m.theme.ListDate)
	return prefix + "📁" + dateStyle.Render(created) + " " + name +
		strings.Repeat(" ", padding) + icons.String() + dateStyle.Render(age)
}

// renderPreview lists the children of the highlighted entry, capped to the
// pane's visible rows and truncated to its width.
func (m Model) renderPreview(width, rows int) string {
	faint := lipgloss.NewStyle().Foreground(m.theme.HelpText)
	title := faint.Render(truncate.String(" Preview", uint(max(width, 1))))
	if _, ok := m.selected(); !ok {
		return title
	}
	if rows < 2 {
		return title
	}

	var b strings.Builder
	b.WriteString(title + "\n")

	if len(m.preview) == 0 {
		b.WriteString(faint.Render(truncate.String(" (empty)", uint(max(width, 1)))))
		return b.String()
	}

	iconStyle := lipgloss.NewStyle().Foreground(m.theme.Title)
	shown := min(len(m.preview), rows-1)
	for i := 0; i < shown; i++ {
		item := m.preview[i]
		icon := "📄 "
		if item.isDir {
			icon = "📁 "
		}
		line := iconStyle.Render(icon) + truncate.String(item.name, uint(max(width-4, 1)))
		b.WriteString(line)
		if i < shown-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderFooter() string {
	if m.status != "" {
		msg := lipgloss.NewStyle().Foreground(m.theme.Status).Bold(true).
			Render(truncate.String(m.status, uint(max(m.width-2, 1))))
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg)
	}

	keyStyle := lipgloss.NewStyle().Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.HelpText)
	help := keyStyle.Render("↑↓") + helpStyle.Render(": Navigate  ") +
		keyStyle.Render("Enter") + helpStyle.Render(": Select  ") +
		keyStyle.Render("Ctrl-D") + helpStyle.Render(": Delete  ") +
		keyStyle.Render("Ctrl-E") + helpStyle.Render(": Edit  ") +
		keyStyle.Render("Ctrl-Y") + helpStyle.Render(": Copy path  ") +
		keyStyle.Render("Esc") + helpStyle.Render(": Exit")

	if lipgloss.Width(help) > m.width {
		help = keyStyle.Render("Enter") + helpStyle.Render(" select ") +
			keyStyle.Render("Esc") + helpStyle.Render(" exit")
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, help)
}

// renderDeletePopup draws the centered confirmation modal (~60% of the
// viewport wide, three rows tall).
func (m Model) renderDeletePopup(name string) string {
	boxWidth := m.width * 60 / 100
	boxWidth = min(max(boxWidth, 24), m.width-2)

	warn := lipgloss.NewStyle().Foreground(m.theme.PopupText).Bold(true)
	msg := fmt.Sprintf("Delete '%s'? (y/n)", name)
	msg = truncate.StringWithTail(msg, uint(max(boxWidth-4, 4)), "...")

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.PopupText).
		Background(m.theme.PopupBg).
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(warn.Render(" WARNING ") + "\n" + warn.Render(msg))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// relativeAge formats how long ago the entry was touched, e.g. "(01d 04h 23m)".
func relativeAge(t time.Time) string {
	elapsed := time.Since(t)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60
	return fmt.Sprintf("(%02dd %02dh %02dm)", days, hours, minutes)
}
