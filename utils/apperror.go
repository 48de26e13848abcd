package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures for the HTTP layer.
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindDependency   ErrorKind = "dependency"
)

// AppError is a classified error that can be rendered to clients.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func Unauthorized(msg string) error {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// Validation reports a bad input; field may be empty when no single field is at fault.
func Validation(field, msg string) error {
	return &AppError{Kind: KindValidation, Field: field, Message: msg}
}

// Conflict reports a uniqueness or concurrency clash. code lets callers tell
// conflicts apart (e.g. "duplicate_reference").
func Conflict(code, msg string) error {
	return &AppError{Kind: KindConflict, Code: code, Message: msg}
}

// Dependency wraps a store or downstream failure.
func Dependency(msg string, err error) error {
	return &AppError{Kind: KindDependency, Message: msg, Err: err}
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" for unclassified errors.
func KindOf(err error) ErrorKind {
	if ae, ok := AsAppError(err); ok {
		return ae.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	ae, ok := AsAppError(err)
	return ok && ae.Code == code
}

// HTTPStatus maps err to a response status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
