package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindRequiredField
	KindReferentialIntegrity
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindRequiredField:
		return "required_field"
	case KindReferentialIntegrity:
		return "referential_integrity"
	default:
		return "internal"
	}
}

// AppError represents an application error
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// StatusCode maps the error kind to an HTTP status
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest, KindRequiredField:
		return http.StatusBadRequest
	case KindReferentialIntegrity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func NotFound(resource string, err error) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Kind:    KindBadRequest,
		Message: message,
		Err:     err,
	}
}

func RequiredField(message string, err error) *AppError {
	return &AppError{
		Kind:    KindRequiredField,
		Message: message,
		Err:     err,
	}
}

func ReferentialIntegrity(message string, err error) *AppError {
	return &AppError{
		Kind:    KindReferentialIntegrity,
		Message: message,
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// IsKind reports whether any error in err's chain is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// As is re-exported so callers need not import both error packages
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
