package provider

import (
	"context"
	"fmt"
)

// Progress reports one provider finishing its search within a comparison.
type Progress struct {
	Provider string
	Results  int
	Err      error
	// Done counts finished providers, this one included, out of Total.
	Done, Total int
}

func (p Progress) String() string {
	if p.Err != nil {
		return fmt.Sprintf("%s failed (%d/%d)", p.Provider, p.Done, p.Total)
	}
	return fmt.Sprintf("%s: %d results (%d/%d)", p.Provider, p.Results, p.Done, p.Total)
}

// ProgressFunc receives progress events. It may be called from several
// goroutines at once.
type ProgressFunc func(Progress)

type progressKey struct{}

// WithProgress returns a context whose comparisons report to fn.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

// ReportProgress sends p to the callback in ctx. Without one it does nothing.
func ReportProgress(ctx context.Context, p Progress) {
	if fn, ok := ctx.Value(progressKey{}).(ProgressFunc); ok && fn != nil {
		fn(p)
	}
}
