// File: render.go
// Title: Diagnostic Renderer
// Description: Prints diagnostics with the offending source line and a
//              caret under the reported column:
//
//                error[E0101]: unexpected token
//                  --> main.pe:3:9
//                   |
//                 3 | int x = )
//                   |         ^
//                   = unexpected ')' in expression
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/msto63/peregrine/internal/utils/stringx"
)

// ColorMode selects when output is colored
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always or never", s)
	}
}

// Renderer formats diagnostics for terminals and logs
type Renderer struct {
	out      io.Writer
	tabWidth int
	styles   styles
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, mode ColorMode, tabWidth int) *Renderer {
	lr := lipgloss.NewRenderer(out)
	switch mode {
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		lr.SetColorProfile(termenv.TrueColor)
	}
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Renderer{out: out, tabWidth: tabWidth, styles: newStyles(lr)}
}

// Render formats a single diagnostic
func (r *Renderer) Render(d Diagnostic) string {
	var b strings.Builder
	st := r.styles

	label := st.errorLabel.Render(fmt.Sprintf("error[%s]", d.Code))
	if d.IsFatal() {
		label = st.fatalLabel.Render(fmt.Sprintf("error[%s]", d.Code))
	}
	b.WriteString(label + st.title.Render(": "+d.Title) + "\n")

	width := len(strconv.Itoa(d.Location.Line))
	indent := strings.Repeat(" ", width+2)
	bar := st.gutter.Render("|")

	b.WriteString(strings.Repeat(" ", width+1) + st.arrow.Render("-->") + " " + d.Location.String() + "\n")

	if d.Location.Line > 0 && (d.Location.Source != "" || d.Location.Column > 0) {
		line := stringx.ExpandTabs(d.Location.Source, r.tabWidth)
		col := stringx.VisualColumn(d.Location.Source, d.Location.Column, r.tabWidth)
		number := stringx.PadLeft(strconv.Itoa(d.Location.Line), width, ' ')

		b.WriteString(indent + bar + "\n")
		b.WriteString(" " + st.gutter.Render(number) + " " + bar + " " + line + "\n")
		b.WriteString(indent + bar + " " + strings.Repeat(" ", col-1) + st.caret.Render("^") + "\n")
	}

	if d.Message != "" {
		b.WriteString(indent + st.note.Render("= "+d.Message) + "\n")
	}
	if d.Hint != "" {
		b.WriteString(indent + st.hint.Render("= hint: "+d.Hint) + "\n")
	}

	return b.String()
}

// RenderAll formats diagnostics separated by blank lines
func (r *Renderer) RenderAll(diagnostics []Diagnostic) string {
	parts := make([]string, len(diagnostics))
	for i, d := range diagnostics {
		parts[i] = r.Render(d)
	}
	return strings.Join(parts, "\n")
}

// Summary formats the closing line of a failed run
func (r *Renderer) Summary(f *Failure) string {
	count := f.Count()
	noun := "errors"
	if count == 1 {
		noun = "error"
	}
	s := fmt.Sprintf("%s: %d %s", f.name(), count, noun)
	if f.Suppressed > 0 {
		s += fmt.Sprintf(" (%d not shown)", f.Suppressed)
	}
	return r.styles.summary.Render(s)
}

// PrintFailure writes all diagnostics of f followed by its summary
func (r *Renderer) PrintFailure(f *Failure) error {
	if f == nil {
		return nil
	}
	_, err := io.WriteString(r.out, r.RenderAll(f.Diagnostics)+"\n"+r.Summary(f)+"\n")
	return err
}
