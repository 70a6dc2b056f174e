// File: styles.go
// Title: Diagnostic Styles
// Description: Colors and lipgloss styles for rendered diagnostics. Styles
//              are bound to a renderer so color detection follows the
//              output they are written to.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError  = lipgloss.Color("#EF4444")
	colorFatal  = lipgloss.Color("#DC2626")
	colorGutter = lipgloss.Color("#60A5FA")
	colorHint   = lipgloss.Color("#10B981")
	colorMuted  = lipgloss.Color("#9CA3AF")
)

type styles struct {
	errorLabel lipgloss.Style
	fatalLabel lipgloss.Style
	title      lipgloss.Style
	arrow      lipgloss.Style
	gutter     lipgloss.Style
	caret      lipgloss.Style
	note       lipgloss.Style
	hint       lipgloss.Style
	summary    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		errorLabel: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		fatalLabel: r.NewStyle().
			Foreground(colorFatal).
			Bold(true),

		title: r.NewStyle().
			Bold(true),

		arrow: r.NewStyle().
			Foreground(colorGutter),

		gutter: r.NewStyle().
			Foreground(colorGutter).
			Bold(true),

		caret: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		note: r.NewStyle().
			Foreground(colorMuted),

		hint: r.NewStyle().
			Foreground(colorHint),

		summary: r.NewStyle().
			Bold(true),
	}
}
