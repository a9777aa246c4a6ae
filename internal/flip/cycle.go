package flip

import "fmt"

// Cycle rotates a display label through a fixed word list.
// It holds no timers; a host (Runner, a test, a UI loop) drives Begin, Swap
// and Settle in that order. Cycle is not safe for concurrent use.
type Cycle struct {
	words []string
	index int
	phase Phase
}

// NewCycle creates a Cycle showing the first word. The list is copied.
func NewCycle(words []string) (*Cycle, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty word list", ErrInvalidConfiguration)
	}
	w := make([]string, len(words))
	copy(w, words)
	return &Cycle{words: w}, nil
}

// Word returns the word currently displayed.
func (c *Cycle) Word() string {
	return c.words[c.index]
}

// Index returns the position of the displayed word in the list.
func (c *Cycle) Index() int {
	return c.index
}

// Phase returns the current transition phase.
func (c *Cycle) Phase() Phase {
	return c.phase
}

// Len returns the number of words in the cycle.
func (c *Cycle) Len() int {
	return len(c.words)
}

// Frame returns the current word and phase.
func (c *Cycle) Frame() Frame {
	return Frame{Word: c.Word(), Index: c.index, Phase: c.phase}
}

// Advance moves to the next word, wrapping after the last one.
func (c *Cycle) Advance() {
	c.index = (c.index + 1) % len(c.words)
}

// Begin starts the exit animation for the displayed word.
// A transition still in flight is completed first, so only one is ever active.
func (c *Cycle) Begin() {
	c.Swap()
	c.Settle()
	c.phase = TransitioningOut
}

// Swap advances the word and starts the entry animation.
// It reports false and does nothing unless the exit animation is active.
func (c *Cycle) Swap() bool {
	if c.phase != TransitioningOut {
		return false
	}
	c.Advance()
	c.phase = TransitioningIn
	return true
}

// Settle ends the entry animation.
// It reports false and does nothing unless the entry animation is active.
func (c *Cycle) Settle() bool {
	if c.phase != TransitioningIn {
		return false
	}
	c.phase = Idle
	return true
}

// Step runs one whole tick at once: Begin, Swap, Settle.
func (c *Cycle) Step() {
	c.Begin()
	c.Swap()
	c.Settle()
}
