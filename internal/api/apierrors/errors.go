package apierrors

import (
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return string(e.Code) + ": " + e.Message
	}
	return string(e.Code) + ": " + e.Message + " (" + e.Details + ")"
}

// Response is the body of every error response
type Response struct {
	Error *APIError `json:"error"`
}

// New creates an error response body
func New(code ErrorCode, message string, details ...string) Response {
	return Response{
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: strings.Join(details, ", "),
		},
	}
}

func NewBadRequestError(message string, details ...string) Response {
	return New(ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) Response {
	return New(ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) Response {
	return New(ErrCodeValidationFailed, "Validation failed", details...)
}

func NewUnauthorizedError(message string, details ...string) Response {
	return New(ErrCodeUnauthorized, message, details...)
}

func NewConflictError(message string, details ...string) Response {
	return New(ErrCodeConflict, message, details...)
}

func NewInternalError(message string, details ...string) Response {
	return New(ErrCodeInternalError, message, details...)
}

func NewServiceUnavailableError(message string, details ...string) Response {
	return New(ErrCodeServiceUnavailable, message, details...)
}
