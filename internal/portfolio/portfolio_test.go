package portfolio

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/olivier-w/vitrine/internal/flip"
)

func TestDefaultDocument(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	want := []string{"GALLERY", "ARCHIVE", "CANVAS", "STUDIO"}
	if !reflect.DeepEqual(p.Flip.Words, want) {
		t.Fatalf("expected words %v, got %v", want, p.Flip.Words)
	}
	if p.Flip.Timing() != flip.DefaultTiming() {
		t.Fatalf("expected default timing, got %+v", p.Flip.Timing())
	}
	if len(p.Projects) == 0 || len(p.Sections) == 0 {
		t.Fatal("expected sample sections and projects")
	}
	if p.Source != "" {
		t.Fatalf("expected no source for the built-in document, got %q", p.Source)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `title: Test
flip:
  words: [ONE, TWO]
  interval: 5s
reduced_motion: true
sections:
  - anchor: "#intro"
    title: Intro
    body: hi
projects:
  - title: Untitled
  - id: fixed
    title: Fixed
    year: 2020
    tags: [a, b]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Source != path {
		t.Fatalf("expected source %q, got %q", path, p.Source)
	}
	if !p.ReducedMotion {
		t.Fatal("expected reduced motion")
	}

	timing := p.Flip.Timing()
	if timing.Interval != 5*time.Second {
		t.Fatalf("expected 5s interval, got %v", timing.Interval)
	}
	if timing.InitialDelay != flip.DefaultInitialDelay || timing.Transition != flip.DefaultTransition {
		t.Fatalf("expected unset values to default, got %+v", timing)
	}

	if p.Sections[0].Anchor != "intro" {
		t.Fatalf("expected anchor without '#', got %q", p.Sections[0].Anchor)
	}
	if _, err := uuid.Parse(p.Projects[0].ID); err != nil {
		t.Fatalf("expected generated uuid, got %q", p.Projects[0].ID)
	}
	if p.Projects[1].ID != "fixed" {
		t.Fatalf("expected explicit id kept, got %q", p.Projects[1].ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing title", "projects: []\n"},
		{"empty anchor", "title: x\nsections:\n  - anchor: '#'\n"},
		{"duplicate anchor", "title: x\nsections:\n  - anchor: a\n  - anchor: '#a'\n"},
		{"untitled project", "title: x\nprojects:\n  - id: p\n"},
		{"duplicate project", "title: x\nprojects:\n  - {id: p, title: A}\n  - {id: p, title: B}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("title: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEmptyWordListIsLeftToTheCycle(t *testing.T) {
	p, err := Parse([]byte("title: x\nflip:\n  words: []\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := flip.NewCycle(p.Flip.Words); !errors.Is(err, flip.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration from the cycle, got %v", err)
	}
}

func TestSectionIndex(t *testing.T) {
	p := &Portfolio{Sections: []Section{{Anchor: "about"}, {Anchor: "contact"}}}
	tests := []struct {
		anchor string
		want   int
		ok     bool
	}{
		{"about", 0, true},
		{"#contact", 1, true},
		{" #contact ", 1, true},
		{"#", 0, false},
		{"", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		got, ok := p.SectionIndex(tt.anchor)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("SectionIndex(%q) = %d, %v; want %d, %v", tt.anchor, got, ok, tt.want, tt.ok)
		}
	}
}
