// Package common defines shared constants and sentinel errors used across
// libreserve components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors raised at the service boundary.
	ErrValidation      = errors.New("validation error")
	ErrInvalidDate     = errors.New("invalid date")
	ErrFutureDate      = errors.New("reservation date is in the future")
	ErrInvalidDuration = errors.New("invalid reservation duration")
)
