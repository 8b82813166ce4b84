package compare

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lukman83/pricewise/internal/models"
	"github.com/lukman83/pricewise/internal/provider"
	"github.com/lukman83/pricewise/internal/seller"
)

type fakeProvider struct {
	name        string
	products    []models.Product
	err         error
	unavailable bool
	required    bool
	onSearch    func(ctx context.Context) error
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return !f.unavailable }
func (f *fakeProvider) Required() bool  { return f.required }

func (f *fakeProvider) Search(ctx context.Context, query string) ([]models.Product, error) {
	if f.onSearch != nil {
		if err := f.onSearch(ctx); err != nil {
			return nil, provider.Fail(f.name, err)
		}
	}
	if f.err != nil {
		return nil, provider.Fail(f.name, f.err)
	}
	return f.products, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func offer(source string, price float64) models.Product {
	return models.Product{Title: source + " offer", Source: source, PriceAmount: price, PriceDisplay: provider.FormatPrice(price)}
}

func trusted() Ranking {
	return Ranking{TrustedOnly: true, Catalog: seller.NewCatalog([]string{"amazon", "best buy"}, nil), PageSize: 8}
}

func TestAggregator_MergesTrustedCheapestPerSeller(t *testing.T) {
	a := &fakeProvider{name: "a", products: []models.Product{offer("Best Buy Official", 149.99), offer("amazon.com", 139.99)}}
	b := &fakeProvider{name: "b", products: []models.Product{offer("Amazon", 135.00), offer("Unknown Shop", 50.00)}}

	agg := NewAggregator([]provider.Provider{a, b}, trusted(), discardLogger())
	got, err := agg.Compare(context.Background(), "shoes")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 offers, got %d: %+v", len(got), got)
	}
	if got[0].Source != "Amazon" || got[0].PriceAmount != 135.00 {
		t.Errorf("expected Amazon at 135.00 first, got %+v", got[0])
	}
	if got[1].Source != "Best Buy Official" || got[1].PriceAmount != 149.99 {
		t.Errorf("expected Best Buy at 149.99 second, got %+v", got[1])
	}
}

func TestAggregator_OneProviderTimesOut(t *testing.T) {
	slow := &fakeProvider{name: "slow", onSearch: func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		<-ctx.Done()
		return ctx.Err()
	}}
	fast := &fakeProvider{name: "fast", products: []models.Product{offer("Amazon", 20)}}

	agg := NewAggregator([]provider.Provider{slow, fast}, trusted(), discardLogger())
	report, err := agg.Run(context.Background(), "mug")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Products) != 1 || report.Products[0].Source != "Amazon" {
		t.Errorf("expected the single Amazon offer, got %+v", report.Products)
	}
	if len(report.Failures) != 1 || report.Failures[0].Provider != "slow" {
		t.Errorf("expected slow to be recorded as failed, got %+v", report.Failures)
	}
	if !errors.Is(report.Failures[0], context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", report.Failures[0])
	}
}

func TestAggregator_EmptyResultsAreNotAnError(t *testing.T) {
	a := &fakeProvider{name: "a"}
	b := &fakeProvider{name: "b", products: []models.Product{}}

	agg := NewAggregator([]provider.Provider{a, b}, trusted(), discardLogger())
	got, err := agg.Compare(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestAggregator_AllProvidersFail(t *testing.T) {
	a := &fakeProvider{name: "searchapi", err: errors.New("unauthorized")}
	b := &fakeProvider{name: "rainforest", err: context.DeadlineExceeded}

	agg := NewAggregator([]provider.Provider{a, b}, trusted(), discardLogger())
	_, err := agg.Compare(context.Background(), "tv")

	var all *AllFailedError
	if !errors.As(err, &all) {
		t.Fatalf("expected AllFailedError, got %v", err)
	}
	if !reflect.DeepEqual(all.Providers(), []string{"searchapi", "rainforest"}) {
		t.Errorf("unexpected providers %v", all.Providers())
	}
	if !strings.Contains(err.Error(), "searchapi: unauthorized") || !strings.Contains(err.Error(), "rainforest") {
		t.Errorf("error should reference both providers: %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected wrapped deadline error to be reachable")
	}
}

func TestAggregator_UnavailableProviders(t *testing.T) {
	optional := &fakeProvider{name: "optional", unavailable: true}
	required := &fakeProvider{name: "required", unavailable: true, required: true}
	ok := &fakeProvider{name: "ok", products: []models.Product{offer("Amazon", 5)}}

	report, err := NewAggregator([]provider.Provider{optional, required, ok}, trusted(), discardLogger()).Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(report.Skipped, []string{"optional"}) {
		t.Errorf("unexpected skipped %v", report.Skipped)
	}
	if len(report.Failures) != 1 || !errors.Is(report.Failures[0], provider.ErrNotConfigured) {
		t.Errorf("expected required provider to fail as not configured, got %v", report.Failures)
	}

	_, err = NewAggregator([]provider.Provider{required}, trusted(), discardLogger()).Compare(context.Background(), "q")
	var all *AllFailedError
	if !errors.As(err, &all) {
		t.Errorf("expected AllFailedError for lone unconfigured required provider, got %v", err)
	}

	_, err = NewAggregator([]provider.Provider{optional}, trusted(), discardLogger()).Compare(context.Background(), "q")
	if !errors.Is(err, ErrNoProviders) {
		t.Errorf("expected ErrNoProviders, got %v", err)
	}
}

func TestAggregator_FansOutConcurrently(t *testing.T) {
	var started sync.WaitGroup
	started.Add(2)
	barrier := func(ctx context.Context) error {
		started.Done()
		done := make(chan struct{})
		go func() { started.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("providers were not called concurrently")
		}
	}

	a := &fakeProvider{name: "a", onSearch: barrier, products: []models.Product{offer("Amazon", 1)}}
	b := &fakeProvider{name: "b", onSearch: barrier, products: []models.Product{offer("Best Buy", 2)}}

	report, err := NewAggregator([]provider.Provider{a, b}, trusted(), discardLogger()).Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", report.Failures)
	}
	if !reflect.DeepEqual(report.Succeeded, []string{"a", "b"}) {
		t.Errorf("succeeded should follow provider order, got %v", report.Succeeded)
	}
}

func TestAggregator_TrustFilterDisabled(t *testing.T) {
	a := &fakeProvider{name: "a", products: []models.Product{offer("Unknown Shop", 50), offer("Amazon", 60)}}

	got, err := NewAggregator([]provider.Provider{a}, Ranking{PageSize: 8}, discardLogger()).Compare(context.Background(), "q")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Source != "Unknown Shop" {
		t.Errorf("expected untrusted seller to be kept, got %+v", got)
	}
}

func TestAggregator_Properties(t *testing.T) {
	sources := []string{"Amazon", "amazon.com", "Best Buy", "BestBuy.com", "Walmart", "Target", "Corner Store", "eBay - seller", "Nike", "Shady Deals"}
	rng := rand.New(rand.NewPCG(1, 2))

	randomProducts := func() []models.Product {
		n := rng.IntN(12)
		out := make([]models.Product, 0, n)
		for i := 0; i < n; i++ {
			price := float64(rng.IntN(300)) - 20
			if price < 0 {
				price = 0
			}
			out = append(out, offer(sources[rng.IntN(len(sources))], price))
		}
		return out
	}

	catalog := seller.DefaultCatalog()
	for iter := 0; iter < 200; iter++ {
		providers := []provider.Provider{
			&fakeProvider{name: "a", products: randomProducts()},
			&fakeProvider{name: "b", products: randomProducts()},
			&fakeProvider{name: "c", products: randomProducts(), err: maybeErr(rng)},
		}
		agg := NewAggregator(providers, Ranking{TrustedOnly: true, Catalog: catalog, PageSize: 5}, discardLogger())

		got, err := agg.Compare(context.Background(), "q")
		if err != nil {
			t.Fatalf("iteration %d: unexpected error %v", iter, err)
		}
		again, _ := agg.Compare(context.Background(), "q")
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("iteration %d: results not reproducible", iter)
		}

		if len(got) > 5 {
			t.Fatalf("iteration %d: page size exceeded: %d", iter, len(got))
		}
		seen := map[string]bool{}
		for i, p := range got {
			if p.PriceAmount <= 0 {
				t.Fatalf("iteration %d: non-positive price %+v", iter, p)
			}
			if i > 0 && got[i-1].PriceAmount > p.PriceAmount {
				t.Fatalf("iteration %d: not sorted: %+v", iter, got)
			}
			if !catalog.IsTrusted(p.Source) {
				t.Fatalf("iteration %d: untrusted seller %q", iter, p.Source)
			}
			key := seller.Normalize(p.Source)
			if seen[key] {
				t.Fatalf("iteration %d: duplicate seller %q", iter, key)
			}
			seen[key] = true
		}
	}
}

func maybeErr(rng *rand.Rand) error {
	if rng.IntN(3) == 0 {
		return errors.New("flaky")
	}
	return nil
}

func TestAggregator_ReportsProgressPerProvider(t *testing.T) {
	a := &fakeProvider{name: "a", products: []models.Product{offer("Amazon", 5), offer("Best Buy", 6)}}
	b := &fakeProvider{name: "b", err: errors.New("boom")}

	var mu sync.Mutex
	var events []provider.Progress
	ctx := provider.WithProgress(context.Background(), func(p provider.Progress) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, p)
	})

	if _, err := NewAggregator([]provider.Provider{a, b}, trusted(), discardLogger()).Compare(ctx, "q"); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 progress events, got %+v", events)
	}
	byName := map[string]provider.Progress{}
	dones := map[int]bool{}
	for _, e := range events {
		byName[e.Provider] = e
		dones[e.Done] = true
		if e.Total != 2 {
			t.Errorf("event %+v: expected total 2", e)
		}
	}
	if byName["a"].Results != 2 || byName["a"].Err != nil {
		t.Errorf("unexpected event for a: %+v", byName["a"])
	}
	if byName["b"].Err == nil {
		t.Errorf("expected failure event for b: %+v", byName["b"])
	}
	if !dones[1] || !dones[2] {
		t.Errorf("expected done counts 1 and 2, got %v", dones)
	}
}
