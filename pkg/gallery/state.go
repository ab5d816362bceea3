package gallery

import "fmt"

// State is the transition phase of a session.
//
//	Idle ──Present()──► Presenting ──done──► Idle
//	Idle ◄──distance 0── InteractiveDismiss ◄──swipe──┘
//	Idle/InteractiveDismiss ──Close() or distance 1──► Closing ──done──► Dismissed
//
// Only one transition runs at a time. Dismissed is terminal.
type State int

const (
	StateIdle State = iota
	StatePresenting
	StateInteractiveDismiss
	StateClosing
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePresenting:
		return "presenting"
	case StateInteractiveDismiss:
		return "interactive_dismiss"
	case StateClosing:
		return "closing"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TransitionState is the current state plus interactive dismiss progress.
type TransitionState struct {
	State State
	// Progress is the swipe distance in [0, 1] while interactively dismissing.
	Progress float64
}

func (t TransitionState) String() string {
	if t.State == StateInteractiveDismiss {
		return fmt.Sprintf("%s(%.2f)", t.State, t.Progress)
	}
	return t.State.String()
}
