// Package apperror holds the typed error every API failure is reported as.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInternal          = "INTERNAL_ERROR"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeEntityScrapped    = "ENTITY_SCRAPPED"
	CodeSequenceExhausted = "SEQUENCE_EXHAUSTED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeDuplicate         = "DUPLICATE_ENTRY"
)

// statusByCode maps every known code to its response status.
// Codes missing here are business rules and answer 422.
var statusByCode = map[string]int{
	CodeInternal:     http.StatusInternalServerError,
	CodeValidation:   http.StatusBadRequest,
	CodeInvalidInput: http.StatusBadRequest,
	CodeUnauthorized: http.StatusUnauthorized,
	CodeForbidden:    http.StatusForbidden,
	CodeNotFound:     http.StatusNotFound,
	CodeConflict:     http.StatusConflict,
	CodeDuplicate:    http.StatusConflict,
}

// AppError is rendered as {code, message, details}. Err is kept for logs only.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Code + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail adds one response detail and returns e for chaining.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, 2)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the error that triggered e.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// New builds an error whose status is derived from code.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidation(message string) *AppError   { return New(CodeValidation, message) }
func NewInvalidInput(message string) *AppError { return New(CodeInvalidInput, message) }
func NewUnauthorized(message string) *AppError { return New(CodeUnauthorized, message) }
func NewForbidden(message string) *AppError    { return New(CodeForbidden, message) }
func NewConflict(message string) *AppError     { return New(CodeConflict, message) }

// NewBusinessRule reports a violated domain rule (422).
func NewBusinessRule(code, message string) *AppError { return New(code, message) }

// NewInternal hides err from the client behind a generic message.
func NewInternal(err error) *AppError {
	return New(CodeInternal, "Internal server error").WithCause(err)
}

func NewNotFound(entity string, id any) *AppError {
	return New(CodeNotFound, entity+" not found").
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// NewEntityScrapped rejects commands other than reactivate on a scrapped entity.
func NewEntityScrapped(entity string, id any) *AppError {
	return New(CodeEntityScrapped, entity+" is scrapped").
		WithDetail("entity", entity).
		WithDetail("id", id)
}

func NewDuplicate(entity, field, value string) *AppError {
	return New(CodeDuplicate, fmt.Sprintf("%s with this %s already exists", entity, field)).
		WithDetail("entity", entity).
		WithDetail("field", field).
		WithDetail("value", value)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == CodeNotFound
}
