// Package ui holds the presentation theme. The theme is plain data consumed
// only by the render layer; selection logic never touches it.
package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Profile is the terminal color profile detected from the environment,
// computed once so styling helpers can branch without re-probing.
var Profile = termenv.EnvColorProfile()

// Theme names every color the renderer uses. Values come from the default
// palette overridden by the [colors] table in config.toml.
type Theme struct {
	Title       lipgloss.TerminalColor
	TitleAccent lipgloss.TerminalColor
	SearchBox   lipgloss.TerminalColor
	ListDate    lipgloss.TerminalColor
	HighlightBg lipgloss.TerminalColor
	HighlightFg lipgloss.TerminalColor
	HelpText    lipgloss.TerminalColor
	Status      lipgloss.TerminalColor
	PopupBg     lipgloss.TerminalColor
	PopupText   lipgloss.TerminalColor
}

// Default is the Catppuccin Mocha palette. On terminals without truecolor
// support the hex values degrade to the nearest ANSI color via termenv, so
// 16/256-color terminals still get a coherent palette.
func Default() Theme {
	return Theme{
		Title:       color("#89b4fa"), // Blue
		TitleAccent: color("#f38ba8"), // Red
		SearchBox:   color("#fab387"), // Peach
		ListDate:    color("#a6adc8"), // Subtext0
		HighlightBg: color("#585b70"), // Surface2
		HighlightFg: color("#cdd6f4"), // Text
		HelpText:    color("#9399b2"), // Overlay2
		Status:      color("#f9e2af"), // Yellow
		PopupBg:     color("#1e1e2e"), // Base
		PopupText:   color("#f38ba8"), // Red
	}
}

// color converts a hex string through the detected profile so styles carry
// colors the terminal can actually display.
func color(hex string) lipgloss.TerminalColor {
	switch c := Profile.Color(hex).(type) {
	case termenv.RGBColor:
		return lipgloss.Color(string(c))
	case termenv.ANSI256Color:
		return lipgloss.Color(strconv.Itoa(int(c)))
	case termenv.ANSIColor:
		return lipgloss.Color(strconv.Itoa(int(c)))
	default:
		return lipgloss.NoColor{}
	}
}

// Override replaces a named theme color with a user-supplied value. Unknown
// names and empty values are ignored so a stale config never breaks startup.
func (t *Theme) Override(name, value string) {
	if value == "" {
		return
	}
	c := color(value)
	switch name {
	case "title":
		t.Title = c
	case "title_accent":
		t.TitleAccent = c
	case "search_box":
		t.SearchBox = c
	case "list_date":
		t.ListDate = c
	case "list_highlight_bg":
		t.HighlightBg = c
	case "list_highlight_fg":
		t.HighlightFg = c
	case "help_text":
		t.HelpText = c
	case "status_message":
		t.Status = c
	case "popup_bg":
		t.PopupBg = c
	case "popup_text":
		t.PopupText = c
	}
}
