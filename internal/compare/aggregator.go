// Package compare fans a query out to every provider and merges the answers
// into one price-ranked, seller-deduplicated offer list.
package compare

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/lukman83/pricewise/internal/models"
	"github.com/lukman83/pricewise/internal/provider"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of one aggregation run.
type Report struct {
	Products  []models.Product
	Succeeded []string
	Skipped   []string
	Failures  []*provider.Error
	// Merged is the number of records received before ranking.
	Merged int
}

// Aggregator is stateless across calls; it is safe for concurrent use.
type Aggregator struct {
	providers []provider.Provider
	ranking   Ranking
	log       *slog.Logger
}

// NewAggregator creates an aggregator over providers in merge order. A nil
// logger falls back to slog.Default.
func NewAggregator(providers []provider.Provider, ranking Ranking, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{
		providers: append([]provider.Provider(nil), providers...),
		ranking:   ranking,
		log:       log,
	}
}

// Compare returns the ranked offers for query. It fails only when every
// attempted provider failed.
func (a *Aggregator) Compare(ctx context.Context, query string) ([]models.Product, error) {
	r, err := a.Run(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.Products, nil
}

// Run is Compare with per-provider bookkeeping.
func (a *Aggregator) Run(ctx context.Context, query string) (*Report, error) {
	report := &Report{}

	var active []provider.Provider
	var early []*provider.Error
	for _, p := range a.providers {
		switch {
		case p.Available():
			active = append(active, p)
		case p.Required():
			a.log.Warn("provider failed", "provider", p.Name(), "error", provider.ErrNotConfigured)
			early = append(early, provider.Fail(p.Name(), provider.ErrNotConfigured))
		default:
			a.log.Debug("provider skipped", "provider", p.Name(), "reason", "not configured")
			report.Skipped = append(report.Skipped, p.Name())
		}
	}
	if len(active) == 0 && len(early) == 0 {
		return nil, ErrNoProviders
	}

	// Every task returns nil so a failure never cancels its siblings.
	results := make([][]models.Product, len(active))
	errs := make([]error, len(active))
	var done atomic.Int32
	var g errgroup.Group
	for i, p := range active {
		g.Go(func() error {
			products, err := p.Search(ctx, query)
			provider.ReportProgress(ctx, provider.Progress{
				Provider: p.Name(),
				Results:  len(products),
				Err:      err,
				Done:     int(done.Add(1)),
				Total:    len(active),
			})
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = products
			return nil
		})
	}
	_ = g.Wait()

	report.Failures = append(report.Failures, early...)
	var merged []models.Product
	for i, p := range active {
		if errs[i] != nil {
			pe := provider.Fail(p.Name(), errs[i])
			a.log.Warn("provider failed", "provider", p.Name(), "error", pe.Err)
			report.Failures = append(report.Failures, pe)
			continue
		}
		a.log.Debug("provider returned", "provider", p.Name(), "count", len(results[i]))
		report.Succeeded = append(report.Succeeded, p.Name())
		merged = append(merged, results[i]...)
	}

	if len(report.Succeeded) == 0 {
		return nil, &AllFailedError{Failures: report.Failures}
	}

	report.Merged = len(merged)
	report.Products = Rank(merged, a.ranking)
	if report.Products == nil {
		report.Products = []models.Product{}
	}

	a.log.Info("compare finished",
		"query", query,
		"succeeded", len(report.Succeeded),
		"failed", len(report.Failures),
		"merged", report.Merged,
		"returned", len(report.Products),
	)
	return report, nil
}
