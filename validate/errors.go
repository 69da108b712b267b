// SPDX-License-Identifier: MIT
// Package: pixelcal/validate
//
// errors.go: sentinels, one per failure reason, and the error wrapper that
// carries the full Result.

package validate

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed = errors.New("validate: message is not valid UTF-8")
	ErrEmpty     = errors.New("validate: message is empty")
	ErrTooLong   = errors.New("validate: message too long")
	ErrTooShort  = errors.New("validate: message too short")
	ErrCharset   = errors.New("validate: unsupported characters")
)

// ValidationError is a failed Result in error form.
type ValidationError struct {
	Result Result
}

// Error implements error.
func (e *ValidationError) Error() string {
	r := e.Result
	switch r.Reason {
	case ReasonTooLong, ReasonTooShort:
		return fmt.Sprintf("%v: %d characters", e.Unwrap(), r.Length)
	case ReasonCharset:
		return fmt.Sprintf("%v: %q", e.Unwrap(), string(r.Invalid))
	default:
		return e.Unwrap().Error()
	}
}

// Unwrap returns the sentinel for the reason.
func (e *ValidationError) Unwrap() error {
	switch e.Result.Reason {
	case ReasonMalformed:
		return ErrMalformed
	case ReasonEmpty:
		return ErrEmpty
	case ReasonTooLong:
		return ErrTooLong
	case ReasonTooShort:
		return ErrTooShort
	case ReasonCharset:
		return ErrCharset
	default:
		return nil
	}
}
