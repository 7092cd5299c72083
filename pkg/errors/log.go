package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler writes ForgeErrors as status text, one line per error.
type LogHandler struct {
	// Out is the destination; stderr when nil.
	Out io.Writer
	// Verbose enables the kind and path detail.
	Verbose bool
}

// HandleError logs a ForgeError.
func (h *LogHandler) HandleError(err *ForgeError) {
	if err == nil {
		return
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	if h.Verbose {
		fmt.Fprintf(out, "[forge error] %s [%s]", err.Op, err.Kind)
		if err.Path != "" {
			fmt.Fprintf(out, " path=%s", err.Path)
		}
		fmt.Fprintf(out, ": %v\n", err.Err)
		return
	}
	fmt.Fprintf(out, "[forge error] %s: %v\n", err.Op, err.Err)
}
