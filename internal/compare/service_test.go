package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/lukman83/pricewise/internal/models"
)

type comparerFunc func(ctx context.Context, query string) ([]models.Product, error)

func (f comparerFunc) Compare(ctx context.Context, query string) ([]models.Product, error) {
	return f(ctx, query)
}

func TestService_Compare(t *testing.T) {
	var gotQuery string
	svc := NewService(comparerFunc(func(ctx context.Context, query string) ([]models.Product, error) {
		gotQuery = query
		return nil, nil
	}))

	if _, err := svc.Compare(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if gotQuery != "" {
		t.Error("comparer must not be called for an empty query")
	}

	products, err := svc.Compare(context.Background(), "  air max ")
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery != "air max" {
		t.Errorf("expected trimmed query, got %q", gotQuery)
	}
	if products == nil {
		t.Error("expected non-nil empty list")
	}
}

func TestService_PropagatesTotalFailure(t *testing.T) {
	want := &AllFailedError{}
	svc := NewService(comparerFunc(func(ctx context.Context, query string) ([]models.Product, error) {
		return nil, want
	}))

	if _, err := svc.Compare(context.Background(), "q"); !errors.Is(err, want) {
		t.Errorf("expected total failure, got %v", err)
	}
}
