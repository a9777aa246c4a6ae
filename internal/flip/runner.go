package flip

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"go.uber.org/zap"
)

const defaultFrameBuffer = 16

type event int

const (
	eventTick event = iota
	eventSwap
	eventSettle
)

// Runner drives a Cycle from a clock. One goroutine owns the schedule,
// so transitions never overlap; readers see a snapshot under mu.
type Runner struct {
	clock  clock.Clock
	timing Timing
	logger *zap.Logger
	buffer int

	mu    sync.Mutex
	cycle *Cycle
	ticks int

	frames   chan Frame
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for transition and lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFrameBuffer sets how many frames may queue before new ones are dropped.
func WithFrameBuffer(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.buffer = n
		}
	}
}

// Start validates the configuration and begins cycling through words.
// The first tick fires after timing.InitialDelay. Each later tick fires
// timing.Interval after the previous transition settled. On error no goroutine or timer is created.
// A nil clk means the wall clock.
func Start(clk clock.Clock, words []string, timing Timing, opts ...Option) (*Runner, error) {
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	c, err := NewCycle(words)
	if err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.NewClock()
	}

	r := &Runner{
		clock:  clk,
		timing: timing,
		logger: zap.NewNop(),
		buffer: defaultFrameBuffer,
		cycle:  c,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.frames = make(chan Frame, r.buffer)

	r.logger.Debug("flip cycle started",
		zap.Int("words", c.Len()),
		zap.Duration("interval", timing.Interval),
		zap.Duration("initial_delay", timing.InitialDelay),
		zap.Duration("transition", timing.Transition))

	go r.loop()
	return r, nil
}

// CurrentWord returns the word currently displayed.
func (r *Runner) CurrentWord() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycle.Word()
}

// Phase returns the current transition phase.
func (r *Runner) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycle.Phase()
}

// Frame returns the current word and phase together.
func (r *Runner) Frame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycle.Frame()
}

// Ticks returns how many ticks have fired so far.
func (r *Runner) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

// Frames delivers a Frame after every transition. The channel is closed
// once the runner stops. Frames are dropped while the buffer is full.
func (r *Runner) Frames() <-chan Frame {
	return r.frames
}

// Stop halts the schedule and waits for the runner's goroutine to exit.
// No transition happens after Stop returns; the phase is left as it was.
// Stop is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	<-r.doneCh
}

func (r *Runner) loop() {
	defer close(r.doneCh)
	defer close(r.frames)

	nextTick := r.clock.Now().Add(r.timing.InitialDelay)
	var swapAt, settleAt time.Time

	for {
		at, ev := nextTick, eventTick
		if !settleAt.IsZero() && !settleAt.After(at) {
			at, ev = settleAt, eventSettle
		}
		if !swapAt.IsZero() && !swapAt.After(at) {
			at, ev = swapAt, eventSwap
		}

		if !r.wait(at) {
			r.logger.Debug("flip cycle stopped", zap.Int("ticks", r.Ticks()))
			return
		}

		switch ev {
		case eventTick:
			swapAt = at.Add(r.timing.SwapDelay())
			settleAt = at.Add(r.timing.Transition)
			// the next tick is armed once this transition has settled
			nextTick = at.Add(r.timing.Transition + r.timing.Interval)
		case eventSwap:
			swapAt = time.Time{}
		case eventSettle:
			settleAt = time.Time{}
		}
		r.apply(ev)
	}
}

// wait blocks until the clock reaches at. Deadlines already in the past
// return at once, so a clock that jumps ahead replays every missed step.
// It reports false if the runner was stopped.
func (r *Runner) wait(at time.Time) bool {
	d := at.Sub(r.clock.Now())
	if d <= 0 {
		select {
		case <-r.stopCh:
			return false
		default:
			return true
		}
	}

	timer := r.clock.NewTimer(d)
	select {
	case <-r.stopCh:
		timer.Stop()
		return false
	case <-timer.C():
		return true
	}
}

func (r *Runner) apply(ev event) {
	r.mu.Lock()
	switch ev {
	case eventTick:
		r.cycle.Begin()
		r.ticks++
	case eventSwap:
		r.cycle.Swap()
	case eventSettle:
		r.cycle.Settle()
	}
	f := r.cycle.Frame()
	r.mu.Unlock()

	select {
	case r.frames <- f:
	default:
		r.logger.Debug("flip frame dropped", zap.String("word", f.Word), zap.Stringer("phase", f.Phase))
	}
}
