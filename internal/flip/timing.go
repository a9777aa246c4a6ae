package flip

import (
	"fmt"
	"time"
)

const (
	DefaultInterval     = 3000 * time.Millisecond
	DefaultInitialDelay = 1000 * time.Millisecond
	DefaultTransition   = 350 * time.Millisecond
)

// Timing configures when ticks fire and how long each transition lasts.
type Timing struct {
	Interval     time.Duration // from a settled transition to the next tick
	InitialDelay time.Duration // from start to the first tick
	Transition   time.Duration // whole out/in animation; the word swaps halfway
}

// DefaultTiming returns a 3s interval, a 1s initial delay and a 350ms transition.
func DefaultTiming() Timing {
	return Timing{
		Interval:     DefaultInterval,
		InitialDelay: DefaultInitialDelay,
		Transition:   DefaultTransition,
	}
}

// SwapDelay is the offset from a tick to the word change.
func (t Timing) SwapDelay() time.Duration {
	return t.Transition / 2
}

// Validate rejects timings no scheduler can honor.
func (t Timing) Validate() error {
	if t.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfiguration, t.Interval)
	}
	if t.InitialDelay < 0 {
		return fmt.Errorf("%w: negative initial delay %v", ErrInvalidConfiguration, t.InitialDelay)
	}
	if t.Transition < 0 {
		return fmt.Errorf("%w: negative transition %v", ErrInvalidConfiguration, t.Transition)
	}
	return nil
}

// Instant returns t with a zero-length transition, for hosts that prefer
// reduced motion. Ticks still rotate the word on the same schedule.
func (t Timing) Instant() Timing {
	t.Transition = 0
	return t
}
