package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateEmail is returned when a submission's email already belongs to
// a committed user record, whether caught by the pre-check or by the unique
// constraint on the users table.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// FieldError describes one violated constraint on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailedError carries every violated constraint of a step payload,
// not just the first one.
type ValidationFailedError struct {
	Step   Step         `json:"step"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("invalid %s data: %s", e.Step, strings.Join(msgs, "; "))
}

// IncompleteSubmissionError is returned by final submission when one or more
// steps have no staged payload.
type IncompleteSubmissionError struct {
	Missing []Step `json:"missing"`
}

func (e *IncompleteSubmissionError) Error() string {
	names := make([]string, len(e.Missing))
	for i, s := range e.Missing {
		names[i] = string(s)
	}
	return fmt.Sprintf("incomplete submission: missing steps: %s", strings.Join(names, ", "))
}

// StoreUnavailableError wraps an infrastructure failure from either store so
// the raw error never leaks past the orchestrator boundary.
type StoreUnavailableError struct {
	Store string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s store unavailable: %v", e.Store, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
