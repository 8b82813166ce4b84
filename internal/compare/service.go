package compare

import (
	"context"
	"strings"

	"github.com/lukman83/pricewise/internal/models"
)

// Comparer is anything that produces ranked offers for a query.
type Comparer interface {
	Compare(ctx context.Context, query string) ([]models.Product, error)
}

// Service validates input and delegates to a Comparer.
type Service struct {
	comparer Comparer
}

// NewService wraps c with query validation.
func NewService(c Comparer) *Service {
	return &Service{comparer: c}
}

// Compare rejects an empty query and otherwise returns the comparer's offers.
// An empty result is a non-nil empty slice.
func (s *Service) Compare(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	products, err := s.comparer.Compare(ctx, query)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
