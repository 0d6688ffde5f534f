package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the one error type that crosses component boundaries. Clients and
// repos return it directly so handlers can switch on Code instead of probing
// provider-specific error values.
type Error struct {
	Status int
	Code   string
	Err    error
}

const (
	CodeUnauthorized = "unauthorized"
	CodeValidation   = "validation_error"
	CodeStorage      = "storage_error"
	CodeUpstream     = "upstream_error"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal_error"
)

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Unauthorized(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

func Storage(err error) *Error {
	return New(http.StatusInternalServerError, CodeStorage, err)
}

func Upstream(err error) *Error {
	return New(http.StatusInternalServerError, CodeUpstream, err)
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// From returns err as *Error, wrapping anything foreign as internal_error so
// provider errors never reach the wire unlabeled.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

func Is(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
