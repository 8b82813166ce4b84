package compare

import (
	"testing"

	"github.com/lukman83/pricewise/internal/models"
)

func TestRank_StableTiesAndDedupe(t *testing.T) {
	in := []models.Product{
		{Title: "first", Source: "Walmart", PriceAmount: 10},
		{Title: "second", Source: "walmart.com", PriceAmount: 10},
		{Title: "third", Source: "Target", PriceAmount: 10},
		{Title: "unpriced", Source: "Costco", PriceAmount: 0},
		{Title: "cheap", Source: "Target", PriceAmount: 4},
	}

	got := Rank(in, Ranking{PageSize: 8})
	if len(got) != 2 {
		t.Fatalf("expected 2 offers, got %+v", got)
	}
	if got[0].Title != "cheap" || got[1].Title != "first" {
		t.Errorf("unexpected order: %q, %q", got[0].Title, got[1].Title)
	}
	if in[0].Title != "first" || in[4].Title != "cheap" {
		t.Error("Rank must not modify its input")
	}
}

func TestRank_Truncates(t *testing.T) {
	var in []models.Product
	for i, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		in = append(in, models.Product{Source: s, PriceAmount: float64(10 - i)})
	}

	got := Rank(in, Ranking{})
	if len(got) != DefaultPageSize {
		t.Fatalf("expected %d offers, got %d", DefaultPageSize, len(got))
	}
	if got[0].PriceAmount != 1 {
		t.Errorf("expected cheapest first, got %v", got[0].PriceAmount)
	}

	if got := Rank(in, Ranking{PageSize: 3}); len(got) != 3 {
		t.Errorf("expected 3 offers, got %d", len(got))
	}
}

func TestRank_TrustedOnlyDefaultCatalog(t *testing.T) {
	in := []models.Product{
		{Source: "Best Buy Official Store", PriceAmount: 100},
		{Source: "Totally Legit Electronics", PriceAmount: 1},
	}
	got := Rank(in, Ranking{TrustedOnly: true})
	if len(got) != 1 || got[0].Source != "Best Buy Official Store" {
		t.Errorf("expected only the trusted seller, got %+v", got)
	}
}
