package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		if err.ID != "" {
			fmt.Fprintf(os.Stderr, "[driftterm error] %s [%s] id=%s: %v\n", err.Op, err.Kind, err.ID, err.Err)
			return
		}
		fmt.Fprintf(os.Stderr, "[driftterm error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[driftterm error] %s: %v\n", err.Op, err.Err)
}
