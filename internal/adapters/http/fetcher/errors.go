package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds for retrieval failures.
var (
	ErrTransport        = errors.New("transport failure")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError reports a non-200 response. It matches ErrUnexpectedStatus
// under errors.Is.
type StatusError struct {
	Code   int
	Status string // e.g. "404 Not Found"
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("%s: %s", ErrUnexpectedStatus, status)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }
