package errors

import (
	"errors"
	"sync"
)

// ErrorHandler receives structured errors for reporting.
type ErrorHandler interface {
	HandleError(err *ForgeError)
}

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
func Report(err *ForgeError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// Coerce returns err as a ForgeError, wrapping it under op when it is not
// one already. A nil err returns nil.
func Coerce(op string, err error) *ForgeError {
	if err == nil {
		return nil
	}
	var fe *ForgeError
	if errors.As(err, &fe) {
		return fe
	}
	return New(op, KindUnknown, err)
}
