package flip

import (
	"errors"
	"testing"
	"time"
)

func TestNewCycleRejectsEmptyList(t *testing.T) {
	for _, words := range [][]string{nil, {}} {
		c, err := NewCycle(words)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
		if c != nil {
			t.Fatal("expected no cycle on error")
		}
	}
}

func TestCycleRotation(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{2, "C"},
		{3, "A"},
		{7, "B"},
	}
	for _, tt := range tests {
		c, err := NewCycle([]string{"A", "B", "C"})
		if err != nil {
			t.Fatalf("NewCycle() error = %v", err)
		}
		for i := 0; i < tt.ticks; i++ {
			c.Step()
		}
		if got := c.Word(); got != tt.want {
			t.Fatalf("after %d ticks: expected %q, got %q", tt.ticks, tt.want, got)
		}
		if c.Phase() != Idle {
			t.Fatalf("after %d ticks: expected idle, got %v", tt.ticks, c.Phase())
		}
	}
}

func TestCycleSingleWordIsStable(t *testing.T) {
	c, err := NewCycle([]string{"ONLY"})
	if err != nil {
		t.Fatalf("NewCycle() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		c.Step()
		if c.Word() != "ONLY" || c.Index() != 0 {
			t.Fatalf("tick %d: expected ONLY at index 0, got %q at %d", i+1, c.Word(), c.Index())
		}
	}
}

func TestCyclePhases(t *testing.T) {
	c, _ := NewCycle([]string{"A", "B"})

	if c.Swap() {
		t.Fatal("expected swap to be refused while idle")
	}
	if c.Settle() {
		t.Fatal("expected settle to be refused while idle")
	}

	c.Begin()
	if c.Phase() != TransitioningOut || c.Word() != "A" {
		t.Fatalf("expected out phase on A, got %v on %q", c.Phase(), c.Word())
	}
	if c.Settle() {
		t.Fatal("expected settle to be refused while transitioning out")
	}

	if !c.Swap() {
		t.Fatal("expected swap during out phase")
	}
	if c.Phase() != TransitioningIn || c.Word() != "B" {
		t.Fatalf("expected in phase on B, got %v on %q", c.Phase(), c.Word())
	}
	if c.Swap() {
		t.Fatal("expected a second swap to be refused")
	}

	if !c.Settle() {
		t.Fatal("expected settle during in phase")
	}
	if got := c.Frame(); got != (Frame{Word: "B", Index: 1, Phase: Idle}) {
		t.Fatalf("unexpected frame %+v", got)
	}
}

func TestBeginCompletesTransitionInFlight(t *testing.T) {
	c, _ := NewCycle([]string{"A", "B", "C"})

	c.Begin()
	c.Begin() // interrupted before the swap

	if c.Word() != "B" {
		t.Fatalf("expected interrupted transition to land on B, got %q", c.Word())
	}
	if c.Phase() != TransitioningOut {
		t.Fatalf("expected a fresh out phase, got %v", c.Phase())
	}

	c.Swap()
	c.Begin() // interrupted during the entry animation
	if c.Word() != "C" || c.Phase() != TransitioningOut {
		t.Fatalf("expected out phase on C, got %v on %q", c.Phase(), c.Word())
	}
}

func TestNewCycleCopiesWords(t *testing.T) {
	words := []string{"A", "B"}
	c, _ := NewCycle(words)
	words[0] = "Z"
	if c.Word() != "A" {
		t.Fatalf("expected cycle to keep its own copy, got %q", c.Word())
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		Idle:             "idle",
		TransitioningOut: "out",
		TransitioningIn:  "in",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Fatalf("expected %q, got %q", want, p.String())
		}
	}
}

func TestTimingValidate(t *testing.T) {
	tests := []struct {
		name    string
		timing  Timing
		wantErr bool
	}{
		{"defaults", DefaultTiming(), false},
		{"very short", Timing{Interval: time.Millisecond}, false},
		{"very long", Timing{Interval: 24 * time.Hour, InitialDelay: time.Hour, Transition: time.Minute}, false},
		{"zero interval", Timing{}, true},
		{"negative delay", Timing{Interval: time.Second, InitialDelay: -1}, true},
		{"negative transition", Timing{Interval: time.Second, Transition: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.timing.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestTimingDefaults(t *testing.T) {
	d := DefaultTiming()
	if d.Interval != 3*time.Second || d.InitialDelay != time.Second || d.Transition != 350*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", d)
	}
	if d.SwapDelay() != 175*time.Millisecond {
		t.Fatalf("expected swap at 175ms, got %v", d.SwapDelay())
	}
	if d.Instant().Transition != 0 || d.Instant().Interval != d.Interval {
		t.Fatalf("unexpected instant timing %+v", d.Instant())
	}
}
