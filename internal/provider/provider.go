// Package provider defines the upstream shopping-search adapter contract and the
// field-extraction helpers shared by adapters.
package provider

import (
	"context"

	"github.com/lukman83/pricewise/internal/models"
)

// Provider calls exactly one upstream shopping-search API.
//
// Search returns the provider's products (possibly empty). It fails only on
// transport, status, timeout or payload errors, never on missing optional fields.
type Provider interface {
	Name() string
	// Available reports whether the provider is configured (e.g. has an API key).
	Available() bool
	// Required providers that are unavailable count as a failure instead of being skipped.
	Required() bool
	Search(ctx context.Context, query string) ([]models.Product, error)
}
