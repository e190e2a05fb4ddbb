// Package errors defines the application error taxonomy. Every error that
// can reach the chat boundary maps to a business error code plus the action
// hint the frontend understands.
package errors

import (
	"fmt"
	"strings"

	"fuelflow/internal/domain/entity"
	"fuelflow/internal/errors"
)

// Action is the hint telling the frontend how to recover from a reply.
type Action string

const (
	ActionNone            Action = ""
	ActionClickToRedirect Action = "click_to_redirect"
	ActionRefreshMemory   Action = "refresh_memory"
	ActionCallAdmin       Action = "call_admin"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Action() Action    // Frontend recovery hint
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	action    Action
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message string, action Action) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		action:    action,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Action returns the frontend recovery hint
func (e *BaseError) Action() Action {
	return e.action
}

// Predefined error types
var (
	ErrEmptyQuery = NewBaseError(
		"EMPTY_QUERY",
		"No name was given to search for. Please tell me who or what to look up.",
		ActionNone,
	)

	ErrUpstreamUnavailable = NewBaseError(
		"UPSTREAM_UNAVAILABLE",
		"The assistant is unreachable right now. Please try again in a moment.",
		ActionCallAdmin,
	)
)

// NotFoundError is returned when a name resolves to no cached record, even
// after a forced refresh.
type NotFoundError struct {
	Kind  entity.Kind
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", strings.ToLower(e.Kind.Label()), e.Query)
}

func (e *NotFoundError) ErrorCode() string {
	return "NOT_FOUND"
}

func (e *NotFoundError) Message() string {
	return fmt.Sprintf("No %s named '%s' in bucket. Please let me know if I need to refresh my memory.",
		strings.ToLower(e.Kind.Label()), e.Query)
}

func (e *NotFoundError) Action() Action {
	return ActionRefreshMemory
}

// AmbiguousError is returned when a name resolves to more than one record.
// It carries the full candidate list so the caller can disambiguate instead
// of guessing.
type AmbiguousError struct {
	Kind       entity.Kind
	Query      string
	Candidates []any
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d %ss matching %q", len(e.Candidates), strings.ToLower(e.Kind.Label()), e.Query)
}

func (e *AmbiguousError) ErrorCode() string {
	return "AMBIGUOUS"
}

func (e *AmbiguousError) Message() string {
	return fmt.Sprintf("%d %s(s) found. Please provide the full name to be specific!",
		len(e.Candidates), e.Kind.Label())
}

func (e *AmbiguousError) Action() Action {
	return ActionClickToRedirect
}

// DBWriteError is returned when a fully resolved transaction could not be
// persisted. Nothing was written; the operator has to intervene.
type DBWriteError struct {
	Err error
}

func (e *DBWriteError) Error() string {
	return "db write failed: " + e.Err.Error()
}

func (e *DBWriteError) Unwrap() error {
	return e.Err
}

func (e *DBWriteError) ErrorCode() string {
	return "DB_WRITE_ERROR"
}

func (e *DBWriteError) Message() string {
	return "DB ERROR: " + e.Err.Error()
}

func (e *DBWriteError) Action() Action {
	return ActionCallAdmin
}
