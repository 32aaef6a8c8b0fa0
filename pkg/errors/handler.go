package errors

import (
	"fmt"
	"os"
	"sync"
)

// Handler receives backend errors reported by the framework. Backend failures
// are reported rather than propagated because rendering degradation must never
// take down the application core.
type Handler interface {
	HandleBackendError(err *BackendError)
}

var (
	// defaultHandler logs to stderr unless replaced via SetHandler.
	defaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
}

// ReportBackendError sends a backend error to the global handler.
func ReportBackendError(err *BackendError) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := defaultHandler
	handlerMu.RUnlock()
	if h != nil {
		h.HandleBackendError(err)
	}
}

// LogHandler is a Handler that writes errors to stderr.
type LogHandler struct{}

// HandleBackendError logs a BackendError to stderr.
func (h *LogHandler) HandleBackendError(err *BackendError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[droid error] %s: %v\n", err.Op, err.Err)
}
