package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/vitrine/internal/flip"
)

//go:embed default.yaml
var defaultDocument []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid portfolio")

// Portfolio is the document rendered as a page.
type Portfolio struct {
	Title         string    `yaml:"title"`
	Tagline       string    `yaml:"tagline"`
	Flip          Flip      `yaml:"flip"`
	ReducedMotion bool      `yaml:"reduced_motion"`
	Sections      []Section `yaml:"sections"`
	Projects      []Project `yaml:"projects"`

	// Source is the file the document was read from, empty for the built-in one.
	Source string `yaml:"-"`
}

// Flip configures the headline animation.
type Flip struct {
	Words        []string      `yaml:"words"`
	Interval     time.Duration `yaml:"interval"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	Transition   time.Duration `yaml:"transition"`
}

// Timing converts the document settings, filling unset values with defaults.
func (f Flip) Timing() flip.Timing {
	t := flip.DefaultTiming()
	if f.Interval != 0 {
		t.Interval = f.Interval
	}
	if f.InitialDelay != 0 {
		t.InitialDelay = f.InitialDelay
	}
	if f.Transition != 0 {
		t.Transition = f.Transition
	}
	return t
}

// Section is a titled block of markdown reachable by its anchor.
type Section struct {
	Anchor string `yaml:"anchor"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
}

// Project is one tile of the project grid.
type Project struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Year    int      `yaml:"year"`
	Tags    []string `yaml:"tags"`
	Link    string   `yaml:"link"`
}

// Default returns the built-in sample portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads and validates the document at path.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// Parse decodes and validates a YAML document. Anchors lose any leading '#'.
// Projects without an ID are given a random one so every tile stays
// distinguishable.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse portfolio: %w", err)
	}
	for i := range p.Sections {
		p.Sections[i].Anchor = strings.TrimPrefix(strings.TrimSpace(p.Sections[i].Anchor), "#")
	}
	for i := range p.Projects {
		if strings.TrimSpace(p.Projects[i].ID) == "" {
			p.Projects[i].ID = uuid.NewString()
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the page depends on.
func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}

	anchors := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		a := s.Anchor
		if a == "" {
			return fmt.Errorf("%w: sections[%d].anchor is required", ErrInvalid, i)
		}
		if anchors[a] {
			return fmt.Errorf("%w: duplicate section anchor %q", ErrInvalid, a)
		}
		anchors[a] = true
	}

	ids := make(map[string]bool, len(p.Projects))
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			return fmt.Errorf("%w: projects[%d].title is required", ErrInvalid, i)
		}
		if ids[pr.ID] {
			return fmt.Errorf("%w: duplicate project id %q", ErrInvalid, pr.ID)
		}
		ids[pr.ID] = true
	}
	return nil
}

// SectionIndex finds the section with the given anchor. A leading '#' is
// ignored; an empty anchor never resolves.
func (p *Portfolio) SectionIndex(anchor string) (int, bool) {
	anchor = strings.TrimPrefix(strings.TrimSpace(anchor), "#")
	if anchor == "" {
		return 0, false
	}
	for i, s := range p.Sections {
		if s.Anchor == anchor {
			return i, true
		}
	}
	return 0, false
}
