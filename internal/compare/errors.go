package compare

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/lukman83/pricewise/internal/provider"
)

var (
	// ErrEmptyQuery is returned before any provider is called.
	ErrEmptyQuery = errors.New("query is required")
	// ErrNoProviders means no provider was available to run.
	ErrNoProviders = errors.New("no providers available")
)

// AllFailedError is returned when every attempted provider failed.
type AllFailedError struct {
	Failures []*provider.Error
}

func (e *AllFailedError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Error())
	}
	return "all providers failed: " + strings.Join(parts, "; ")
}

func (e *AllFailedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Providers returns the failed provider names in invocation order.
func (e *AllFailedError) Providers() []string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.Provider)
	}
	return names
}
