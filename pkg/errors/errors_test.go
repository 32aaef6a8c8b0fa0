package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvalidStateErrorMessage(t *testing.T) {
	err := &InvalidStateError{Activity: "Main", From: "created", To: "paused"}
	want := "activity Main: invalid transition created -> paused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestActivityNotFoundErrorIncludesRegistered(t *testing.T) {
	err := &ActivityNotFoundError{Name: "settings", Registered: []string{"home", "about"}}
	msg := err.Error()
	for _, want := range []string{"settings", "home", "about"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestActivityNotFoundErrorEmptyRegistry(t *testing.T) {
	err := &ActivityNotFoundError{Name: "any"}
	if !strings.Contains(err.Error(), "no activities registered") {
		t.Errorf("Error() = %q, want empty-registry wording", err.Error())
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &BackendError{Op: "console.encode", Err: cause}
	if !stderrors.Is(err, cause) {
		t.Error("BackendError must unwrap to its cause")
	}
}

// captureHandler records reported errors.
type captureHandler struct {
	got []*BackendError
}

func (h *captureHandler) HandleBackendError(err *BackendError) {
	h.got = append(h.got, err)
}

func TestReportBackendErrorUsesConfiguredHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	err := &BackendError{Op: "test", Err: fmt.Errorf("x")}
	ReportBackendError(err)
	ReportBackendError(nil) // ignored

	if len(h.got) != 1 || h.got[0] != err {
		t.Errorf("handler received %v, want exactly the reported error", h.got)
	}
}
