// Package errors provides structured error handling for the Forge designer
// core and CLI. Decode and file I/O failures are reported through ForgeError;
// code generation never produces one (inconsistent document state is clamped
// at the point of use instead).
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDecode indicates a malformed persisted project document.
	KindDecode
	// KindIO indicates a read or write failure on a project file.
	KindIO
	// KindConfig indicates an invalid forge.yaml or command-line setting.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindIO:
		return "io"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ForgeError represents a structured error in the Forge tool.
type ForgeError struct {
	// Op is the operation that failed (e.g., "document.Decode").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ForgeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ForgeError) Unwrap() error {
	return e.Err
}

// New constructs a ForgeError for the given operation.
func New(op string, kind ErrorKind, err error) *ForgeError {
	return &ForgeError{Op: op, Kind: kind, Err: err}
}

// NewPath constructs a ForgeError carrying the file path involved.
func NewPath(op string, kind ErrorKind, path string, err error) *ForgeError {
	return &ForgeError{Op: op, Kind: kind, Path: path, Err: err}
}

// Errorf constructs a ForgeError from a format string.
func Errorf(op string, kind ErrorKind, format string, args ...any) *ForgeError {
	return &ForgeError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
