// Package render turns a scan report into terminal output.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/five82/guestdump/internal/scan"
)

// NoErrors is printed for a log without a guru meditation banner.
const NoErrors = "No errors."

// DefaultHighlightColor is bright green in the 16-color palette.
const DefaultHighlightColor = "10"

// chunkSize is the alignment used when matching highlight words.
const chunkSize = 4

// HighlightSet lists the marker words that stand out in register values.
var HighlightSet = []string{"cafe", "beef", "dead", "feed"}

// ColorMode selects when escape sequences are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a user-supplied color mode. Empty means always.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAlways, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Highlighter colors register values.
type Highlighter struct {
	style lipgloss.Style
}

// NewHighlighter builds a Highlighter for output written to w. ColorAlways
// forces plain ANSI sequences regardless of the terminal; ColorAuto lets
// termenv inspect w.
func NewHighlighter(w io.Writer, mode ColorMode, color string) Highlighter {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultHighlightColor
	}
	return Highlighter{style: r.NewStyle().Foreground(lipgloss.Color(color))}
}

// Value colors every 4-byte aligned chunk of v found in HighlightSet. Other
// chunks, including a short trailing one, are copied unchanged.
func (h Highlighter) Value(v string) string {
	var b strings.Builder
	for i := 0; i < len(v); i += chunkSize {
		chunk := v[i:min(i+chunkSize, len(v))]
		if slices.Contains(HighlightSet, chunk) {
			b.WriteString(h.style.Render(chunk))
			continue
		}
		b.WriteString(chunk)
	}
	return b.String()
}

// Lines renders report as output lines. When scanErr is non-nil the partial
// report is followed by the error text, mirroring where the scan stopped.
func (h Highlighter) Lines(report scan.Report, scanErr error) []string {
	if report.Clean && scanErr == nil {
		return []string{NoErrors}
	}
	var lines []string
	if report.Summary != "" {
		lines = append(lines, report.Summary)
	}
	if scanErr != nil {
		return append(lines, scanErr.Error())
	}
	for _, f := range report.Fields {
		lines = append(lines, f.Key+" = "+h.Value(f.Value))
	}
	return lines
}

// Write prints lines to w, one per row.
func Write(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Strip removes terminal escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
