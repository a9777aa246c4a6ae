package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/vitrine/internal/portfolio"
)

// gridColumns picks the masonry column count for a terminal width.
func gridColumns(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 100:
		return 2
	default:
		return 3
	}
}

// renderGrid lays tiles out in columns, dealing them round-robin in the
// given order so the first row reads left to right.
func renderGrid(projects []portfolio.Project, width int) string {
	if len(projects) == 0 {
		return statusStyle.Render("No projects yet.")
	}
	cols := gridColumns(width)
	colWidth := width/cols - 1
	if colWidth < 20 {
		colWidth = 20
	}

	columns := make([][]string, cols)
	for i, p := range projects {
		c := i % cols
		columns[c] = append(columns[c], renderTile(p, colWidth))
	}

	rendered := make([]string, 0, cols)
	for _, col := range columns {
		if len(col) == 0 {
			continue
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, col...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderTile(p portfolio.Project, width int) string {
	// border and padding take four columns
	inner := width - 4

	lines := []string{tileTitleStyle.Width(inner).Render(p.Title)}
	if meta := tileMeta(p); meta != "" {
		lines = append(lines, tileMetaStyle.Width(inner).Render(meta))
	}
	if p.Summary != "" {
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(p.Summary))
	}
	if p.Link != "" {
		lines = append(lines, tileMetaStyle.Width(inner).Render(p.Link))
	}
	return tileStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func tileMeta(p portfolio.Project) string {
	var parts []string
	if p.Year != 0 {
		parts = append(parts, fmt.Sprintf("%d", p.Year))
	}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, " · "))
	}
	return strings.Join(parts, "  ")
}
