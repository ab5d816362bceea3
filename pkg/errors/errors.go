// Package errors provides structured error reporting for the gallery.
//
// Construction failures are returned to the caller. Conditions the gallery
// degrades around, such as a detached displacement source, are reported to
// the global [Handler] instead, which logs them by default.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidConstruction indicates bad session parameters.
	KindInvalidConstruction
	// KindStaleAnchor indicates the displacement source was gone when a
	// transition started.
	KindStaleAnchor
	// KindConfig indicates an unreadable or invalid configuration file.
	KindConfig
	// KindInvalidEvent indicates a page event the session had to drop.
	KindInvalidEvent
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConstruction:
		return "invalid_construction"
	case KindStaleAnchor:
		return "stale_anchor"
	case KindConfig:
		return "config"
	case KindInvalidEvent:
		return "invalid_event"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by GalleryError.
var (
	ErrItemCount      = stderrors.New("item count must be greater than zero")
	ErrStartIndex     = stderrors.New("start index out of range")
	ErrMissingHost    = stderrors.New("required host collaborator is nil")
	ErrDetachedSource = stderrors.New("displacement source is no longer attached")
	ErrPageIndex      = stderrors.New("page index out of range")
	ErrSwipeDistance  = stderrors.New("swipe distance is not a number")
	ErrEventKind      = stderrors.New("unknown page event kind")
)

// GalleryError represents a structured error raised by a gallery session.
type GalleryError struct {
	// Op is the operation that failed (e.g., "gallery.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// SessionID identifies the session, if one exists yet.
	SessionID string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GalleryError) Error() string {
	if e.SessionID != "" {
		return fmt.Sprintf("%s [%s] session=%s: %v", e.Op, e.Kind, e.SessionID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GalleryError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gallery.OnPageLanded").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by gallery sessions.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *GalleryError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// KindOf returns the kind of the first GalleryError in err's chain.
func KindOf(err error) ErrorKind {
	var ge *GalleryError
	if stderrors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
