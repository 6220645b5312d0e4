// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     replclient
// Description: Styles for the REPL terminal UI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package replclient

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Styles groups every style the model renders with. A monochrome set is
// used when colour output is disabled.
type Styles struct {
	Logo      lipgloss.Style
	Prompt    lipgloss.Style
	Input     lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	System    lipgloss.Style
	Panel     lipgloss.Style
	InputBox  lipgloss.Style
	StatusBar lipgloss.Style
	Mode      lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	Spinner   lipgloss.Style
}

// NewStyles returns the coloured or the monochrome style set
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Logo:      plain.Bold(true),
			Prompt:    plain,
			Input:     plain,
			Output:    plain,
			Error:     plain,
			System:    plain.Italic(true),
			Panel:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			InputBox:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			StatusBar: plain.Padding(0, 1),
			Mode:      plain.Bold(true),
			HelpKey:   plain.Bold(true),
			HelpDesc:  plain,
			Spinner:   plain,
		}
	}

	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),
		Input: lipgloss.NewStyle().
			Foreground(ColorText),
		Output: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Error: lipgloss.NewStyle().
			Foreground(ColorError),
		System: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1),
		Mode: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorTextMuted),
		Spinner: lipgloss.NewStyle().
			Foreground(ColorPrimary),
	}
}

// Logo
const Logo = "intp REPL"

// KeyHint renders a keyboard shortcut hint
func (s Styles) KeyHint(key, description string) string {
	return s.HelpKey.Render(key) + " " + s.HelpDesc.Render(description)
}
