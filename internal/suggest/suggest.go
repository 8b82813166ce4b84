// Package suggest proxies Google's query autocomplete.
package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/lukman83/pricewise/internal/httputil"
)

const (
	DefaultEndpoint = "https://suggestqueries.google.com/complete/search"
	DefaultTimeout  = 3 * time.Second
	MinQueryLength  = 2
	MaxSuggestions  = 8
)

type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// New creates a suggestion client. Empty endpoint and nil client get the defaults.
func New(endpoint string, client *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = httputil.NewHTTPClient(nil, DefaultTimeout)
	}
	return &Client{endpoint: endpoint, timeout: DefaultTimeout, http: client}
}

// Suggest returns up to MaxSuggestions completions. Queries shorter than
// MinQueryLength return an empty list without calling upstream.
func (c *Client) Suggest(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if len([]rune(partial)) < MinQueryLength {
		return []string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", partial)

	// Response shape: ["query", ["suggestion", ...], ...]
	var payload []json.RawMessage
	if err := httputil.GetJSON(ctx, c.http, c.endpoint+"?"+params.Encode(), 0, &payload); err != nil {
		return nil, errors.Wrap(err, "fetch suggestions")
	}
	if len(payload) < 2 {
		return []string{}, nil
	}

	var suggestions []string
	if err := json.Unmarshal(payload[1], &suggestions); err != nil {
		return nil, errors.Wrap(err, "decode suggestions")
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions, nil
}
