package flip

// Phase is the sub-state of a flip transition.
type Phase int

const (
	Idle Phase = iota
	TransitioningOut
	TransitioningIn
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case TransitioningOut:
		return "out"
	case TransitioningIn:
		return "in"
	default:
		return "idle"
	}
}

// Frame is what a host renders: the word to show and the phase to style it with.
type Frame struct {
	Word  string
	Index int
	Phase Phase
}
