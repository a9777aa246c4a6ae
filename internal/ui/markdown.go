package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// newMarkdownRenderer builds a glamour renderer wrapping at width.
// An empty style follows the terminal background.
func newMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
}

// renderMarkdown renders body, falling back to the raw text if glamour
// is unavailable or fails.
func renderMarkdown(r *glamour.TermRenderer, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	if r != nil {
		if out, err := r.Render(body); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return "  " + strings.ReplaceAll(strings.TrimSpace(body), "\n", "\n  ")
}
