package gallery

import "fmt"

// EventKind identifies a page event.
type EventKind int

const (
	// EventSwipeDistance reports interactive dismiss progress.
	EventSwipeDistance EventKind = iota
	// EventSingleTap reports a single tap on page content.
	EventSingleTap
	// EventPageAppeared reports that a page finished landing on screen.
	EventPageAppeared
)

func (k EventKind) String() string {
	switch k {
	case EventSwipeDistance:
		return "swipe_distance"
	case EventSingleTap:
		return "single_tap"
	case EventPageAppeared:
		return "page_appeared"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// PageEvent is the message a page sends to its session. It is the only
// channel from page content back to the navigation core.
type PageEvent struct {
	Kind EventKind
	// Index is the sending page's index.
	Index int
	// Distance is the normalized swipe distance to the edge, in [0, 1].
	// Only meaningful for EventSwipeDistance.
	Distance float64
}

// SwipeDistance builds an EventSwipeDistance event.
func SwipeDistance(index int, distance float64) PageEvent {
	return PageEvent{Kind: EventSwipeDistance, Index: index, Distance: distance}
}

// SingleTap builds an EventSingleTap event.
func SingleTap(index int) PageEvent {
	return PageEvent{Kind: EventSingleTap, Index: index}
}

// PageAppeared builds an EventPageAppeared event.
func PageAppeared(index int) PageEvent {
	return PageEvent{Kind: EventPageAppeared, Index: index}
}
