package provider

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrNotConfigured is returned for a required provider whose API key is missing.
var ErrNotConfigured = errors.New("provider not configured")

// Error is a single provider failure.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fail wraps err with the provider identity. It returns err unchanged if it
// already carries one.
func Fail(name string, err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return &Error{Provider: name, Err: err}
}
