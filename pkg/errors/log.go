package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that writes one line per error.
type LogHandler struct {
	// Verbose enables stack traces.
	Verbose bool
	// Out receives the output. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a GalleryError.
func (h *LogHandler) HandleError(err *GalleryError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[gallery error] %s [%s]", err.Op, err.Kind)
		if err.SessionID != "" {
			fmt.Fprintf(w, " session=%s", err.SessionID)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[gallery error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[gallery panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[gallery panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
