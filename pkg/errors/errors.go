package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code onto an HTTP status for gin error handlers.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrBadRequest, ErrValidation, ErrWeakPassword:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Common error codes
const (
	ErrBadRequest ErrorCode = iota + 1000
	ErrInternal
	ErrInvalidPolicy
	ErrWeakPassword
	ErrValidation
)

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// Common errors
func BadRequest(message string, err error) *AppError {
	return NewBadRequest(message, err)
}

func Internal(err error) *AppError {
	return NewInternal(err)
}

// InvalidPolicy reports a password policy that cannot be enforced,
// e.g. a maximum length below the minimum.
func InvalidPolicy(err error) *AppError {
	return &AppError{
		Code:    ErrInvalidPolicy,
		Message: "invalid password policy",
		Err:     err,
	}
}

// WeakPassword carries the explanation of a rejected candidate.
func WeakPassword(reason string, details interface{}) *AppError {
	return &AppError{
		Code:    ErrWeakPassword,
		Message: reason,
		Details: details,
	}
}

func Validation(message string, details interface{}) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
		Details: details,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or 0.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}
