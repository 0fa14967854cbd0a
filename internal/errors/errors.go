package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a rolecoach error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"   // 400
	ErrAPIKeyMissing   ErrorCode = "API_KEY_MISSING"   // 401
	ErrNotFound        ErrorCode = "NOT_FOUND"         // 404
	ErrNoActiveSession ErrorCode = "NO_ACTIVE_SESSION" // 409
	ErrSessionActive   ErrorCode = "SESSION_ACTIVE"    // 409
	ErrInvalidImport   ErrorCode = "INVALID_IMPORT"    // 422
	ErrGateway         ErrorCode = "GATEWAY"           // 502
	ErrInternal        ErrorCode = "INTERNAL"          // 500
)

// CoachError represents a structured error with code, status, and details.
type CoachError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CoachError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *CoachError {
	return &CoachError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewAPIKeyMissing creates a 401 error for operations that need a Gemini key.
func NewAPIKeyMissing() *CoachError {
	return &CoachError{
		Code:    ErrAPIKeyMissing,
		Status:  401,
		Message: "no Gemini API key configured; run `rolecoach key set` first",
	}
}

// NewNotFound creates a 404 error for a missing record.
func NewNotFound(identifier string) *CoachError {
	return &CoachError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("record not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewNoActiveSession creates a 409 error for session operations invoked
// while no roleplay session is active.
func NewNoActiveSession() *CoachError {
	return &CoachError{
		Code:    ErrNoActiveSession,
		Status:  409,
		Message: "no active roleplay session",
	}
}

// NewSessionActive creates a 409 error for starting a session while one
// is already in progress.
func NewSessionActive(id string) *CoachError {
	return &CoachError{
		Code:    ErrSessionActive,
		Status:  409,
		Message: fmt.Sprintf("a roleplay session is already active: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewInvalidImport creates a 422 error for malformed import files.
func NewInvalidImport(msg string) *CoachError {
	return &CoachError{
		Code:    ErrInvalidImport,
		Status:  422,
		Message: msg,
	}
}

// NewGateway creates a 502 error wrapping a Gemini API failure.
// The upstream message is surfaced verbatim; there is no retry.
func NewGateway(err error) *CoachError {
	msg := "gateway error"
	if err != nil {
		msg = err.Error()
	}
	return &CoachError{
		Code:    ErrGateway,
		Status:  502,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *CoachError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CoachError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is (or wraps) a CoachError with the given code.
func Is(err error, code ErrorCode) bool {
	var cErr *CoachError
	if stderrors.As(err, &cErr) {
		return cErr.Code == code
	}
	return false
}
