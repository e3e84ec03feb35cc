// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// Sentinel errors mapped from server error codes.
var (
	// ErrInactiveUserKey is reported by the server (code 2001) when share
	// keys are only available for a user key that is no longer active.
	ErrInactiveUserKey = errors.New("inactive user key")

	// ErrItemRevisionConflict is reported (code 2011) when an update is based
	// on a stale revision.
	ErrItemRevisionConflict = errors.New("item revision conflict")
)

// Server error codes carried in the "code" field of an error body.
const (
	CodeInactiveUserKey      = 2001
	CodeItemRevisionConflict = 2011
)

// APIError is a non-2xx response. It unwraps to the status sentinel and,
// when the body carries a known code, to the code sentinel too.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("http %d (code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() []error {
	errs := []error{statusSentinel(e.Status)}
	if codeErr := codeSentinel(e.Code); codeErr != nil {
		errs = append(errs, codeErr)
	}
	return errs
}

func codeSentinel(code int) error {
	switch code {
	case CodeInactiveUserKey:
		return ErrInactiveUserKey
	case CodeItemRevisionConflict:
		return ErrItemRevisionConflict
	default:
		return nil
	}
}
