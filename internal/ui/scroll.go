package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	scrollFrequency = 7.0
	scrollDamping   = 1.0

	// narrowWidth mirrors the page's mobile breakpoint, in columns.
	narrowWidth = 80
	// backToTop thresholds, in lines scrolled.
	narrowTopThreshold = 4
	wideTopThreshold   = 8
)

// scroller eases the viewport offset toward a target with a critically
// damped spring, one step per scroll tick.
type scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func newScroller() scroller {
	return scroller{spring: harmonica.NewSpring(harmonica.FPS(scrollFPS), scrollFrequency, scrollDamping)}
}

func (s *scroller) start(from, to int) {
	s.pos = float64(from)
	s.target = float64(to)
	s.vel = 0
	s.active = from != to
}

// step advances one frame and returns the offset to show.
// done reports that the target was reached and the animation stopped.
func (s *scroller) step() (offset int, done bool) {
	if !s.active {
		return int(s.target), true
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
		return int(s.target), true
	}
	return int(math.Round(s.pos)), false
}

func (s *scroller) stop() {
	s.active = false
	s.vel = 0
}

// backToTopThreshold is how far the page must scroll before the
// back-to-top control appears. Narrow terminals show it sooner.
func backToTopThreshold(width int) int {
	if width <= narrowWidth {
		return narrowTopThreshold
	}
	return wideTopThreshold
}

func backToTopVisible(offset, width int) bool {
	return offset > backToTopThreshold(width)
}
