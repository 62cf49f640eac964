package taskapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport  = errors.New("taskapi: transport failure")
	ErrDecode     = errors.New("taskapi: malformed response")
	ErrValidation = errors.New("taskapi: rejected by store")
	ErrNotFound   = errors.New("taskapi: task not found")
)

// Error carries the failing operation and, when the store answered, the HTTP
// status and its message. Kind is one of the sentinels above.
type Error struct {
	Op      string
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func transportErr(op string, err error) error {
	return &Error{Op: op, Kind: ErrTransport, Err: err}
}

func decodeErr(op string, err error) error {
	return &Error{Op: op, Kind: ErrDecode, Err: err}
}

func validationErr(op string, err error) error {
	return &Error{Op: op, Kind: ErrValidation, Err: err}
}

// statusErr maps a non-2xx answer to the error taxonomy.
func statusErr(op string, status int, message string) error {
	kind := ErrTransport
	switch status {
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = ErrValidation
	}
	return &Error{Op: op, Kind: kind, Status: status, Message: message}
}
