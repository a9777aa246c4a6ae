package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/vitrine/internal/portfolio"
)

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 1},
		{59, 1},
		{60, 2},
		{99, 2},
		{100, 3},
		{200, 3},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.width); got != tt.want {
			t.Fatalf("gridColumns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestRenderGridDealsTilesRoundRobin(t *testing.T) {
	var projects []portfolio.Project
	for i := 0; i < 5; i++ {
		projects = append(projects, portfolio.Project{ID: fmt.Sprint(i), Title: fmt.Sprintf("Tile%d", i)})
	}

	grid := renderGrid(projects, 120)
	lines := strings.Split(grid, "\n")

	// row one holds the first three tiles, left to right
	first := lines[1]
	a, b, c := strings.Index(first, "Tile0"), strings.Index(first, "Tile1"), strings.Index(first, "Tile2")
	if a < 0 || b <= a || c <= b {
		t.Fatalf("expected Tile0, Tile1, Tile2 across the first row, got %q", first)
	}
	if strings.Contains(first, "Tile3") {
		t.Fatalf("expected Tile3 on a later row, got %q", first)
	}
	if !strings.Contains(grid, "Tile3") || !strings.Contains(grid, "Tile4") {
		t.Fatal("expected every tile rendered")
	}
	if w := lipgloss.Width(grid); w > 120 {
		t.Fatalf("expected grid within 120 columns, got %d", w)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	if got := renderGrid(nil, 80); !strings.Contains(got, "No projects yet.") {
		t.Fatalf("unexpected empty grid %q", got)
	}
}

func TestTileMeta(t *testing.T) {
	tests := []struct {
		project portfolio.Project
		want    string
	}{
		{portfolio.Project{}, ""},
		{portfolio.Project{Year: 2024}, "2024"},
		{portfolio.Project{Tags: []string{"print", "riso"}}, "print · riso"},
		{portfolio.Project{Year: 2021, Tags: []string{"data"}}, "2021  data"},
	}
	for _, tt := range tests {
		if got := tileMeta(tt.project); got != tt.want {
			t.Fatalf("tileMeta(%+v) = %q, want %q", tt.project, got, tt.want)
		}
	}
}
