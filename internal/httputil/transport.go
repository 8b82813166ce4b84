package httputil

import (
	"net/http"

	"github.com/go-faster/errors"
	"golang.org/x/time/rate"
)

// Transport is an http.RoundTripper that waits on a rate limiter before
// sending, keeping each provider under its upstream quota.
type Transport struct {
	Base        http.RoundTripper
	RateLimiter *rate.Limiter
}

// NewTransport returns a Transport allowing perSecond requests with the given burst.
// A non-positive perSecond disables limiting.
func NewTransport(base http.RoundTripper, perSecond float64, burst int) *Transport {
	t := &Transport{Base: base}
	if perSecond > 0 {
		if burst <= 0 {
			burst = 1
		}
		t.RateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(req.Context()); err != nil {
			return nil, errors.Wrap(err, "rate limiter")
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
