// Package rainforest adapts Amazon search results served by the Rainforest API.
package rainforest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lukman83/pricewise/internal/httputil"
	"github.com/lukman83/pricewise/internal/models"
	"github.com/lukman83/pricewise/internal/provider"
	"github.com/lukman83/pricewise/internal/seller"
)

const (
	Name            = "rainforest"
	Source          = "Amazon"
	DefaultEndpoint = "https://api.rainforestapi.com/request"
	DefaultTimeout  = 30 * time.Second
	MaxResults      = 3
)

type Config struct {
	APIKey       string
	Endpoint     string
	AmazonDomain string
	Timeout      time.Duration
	MaxRetries   int
	Mandatory    bool
}

// Client implements provider.Provider for Rainforest API searches.
type Client struct {
	cfg     Config
	http    *http.Client
	catalog *seller.Catalog
}

// New creates a Rainforest API client. A nil client or catalog gets the defaults.
func New(cfg Config, client *http.Client, catalog *seller.Catalog) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.AmazonDomain == "" {
		cfg.AmazonDomain = "amazon.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if client == nil {
		client = httputil.NewHTTPClient(nil, cfg.Timeout)
	}
	if catalog == nil {
		catalog = seller.DefaultCatalog()
	}
	return &Client{cfg: cfg, http: client, catalog: catalog}
}

func (c *Client) Name() string    { return Name }
func (c *Client) Available() bool { return c.cfg.APIKey != "" }
func (c *Client) Required() bool  { return c.cfg.Mandatory }

type response struct {
	RequestInfo struct {
		Success *bool                `json:"success"`
		Message provider.LooseString `json:"message"`
	} `json:"request_info"`
	SearchResults []searchResult `json:"search_results"`
}

type price struct {
	Value provider.LooseFloat  `json:"value"`
	Raw   provider.LooseString `json:"raw"`
}

type searchResult struct {
	Title     provider.LooseString `json:"title"`
	Link      provider.LooseString `json:"link"`
	Image     provider.LooseString `json:"image"`
	Thumbnail provider.LooseString `json:"thumbnail"`
	Price     *price               `json:"price"`
	Prices    []price              `json:"prices"`
	Delivery  json.RawMessage      `json:"delivery"`
}

func (c *Client) Search(ctx context.Context, query string) ([]models.Product, error) {
	if !c.Available() {
		return nil, provider.Fail(Name, provider.ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set("api_key", c.cfg.APIKey)
	params.Set("type", "search")
	params.Set("amazon_domain", c.cfg.AmazonDomain)
	params.Set("search_term", query)

	var payload response
	if err := httputil.GetJSON(ctx, c.http, c.cfg.Endpoint+"?"+params.Encode(), c.cfg.MaxRetries, &payload); err != nil {
		return nil, provider.Fail(Name, err)
	}
	if s := payload.RequestInfo.Success; s != nil && !*s {
		return nil, provider.Fail(Name, fmt.Errorf("api error: %s", payload.RequestInfo.Message))
	}

	products := make([]models.Product, 0, len(payload.SearchResults))
	for _, item := range payload.SearchResults {
		products = append(products, c.toProduct(item))
	}

	return provider.Limit(products, MaxResults), nil
}

func (c *Client) toProduct(item searchResult) models.Product {
	var attempts []provider.PriceAttempt
	if p := item.Price; p != nil {
		attempts = append(attempts,
			provider.Numeric(float64(p.Value), p.Raw.String()),
			provider.Text(p.Raw.String()),
		)
	}
	if len(item.Prices) > 0 {
		first := item.Prices[0]
		attempts = append(attempts,
			provider.Numeric(float64(first.Value), first.Raw.String()),
			provider.Text(first.Raw.String()),
		)
	}
	pr := provider.FirstPrice(attempts...)

	return models.Product{
		Title:        provider.FirstString(provider.Str(provider.CleanText(item.Title.String())), provider.Str("Amazon Product")),
		PriceDisplay: pr.Display,
		PriceAmount:  pr.Amount,
		Link:         provider.FirstString(provider.Str(item.Link.String()), provider.Str("#")),
		Image:        provider.FirstString(provider.Str(item.Image.String()), provider.Str(item.Thumbnail.String())),
		Source:       Source,
		Logo:         c.catalog.LogoFor(Source, ""),
		Delivery:     provider.CleanText(deliveryNote(item.Delivery)),
	}
}

// deliveryNote accepts either {"tagline": "..."} or a plain string.
func deliveryNote(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var obj struct {
		Tagline provider.LooseString `json:"tagline"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Tagline != "" {
		return obj.Tagline.String()
	}
	var s provider.LooseString
	if err := json.Unmarshal(raw, &s); err == nil {
		return s.String()
	}
	return ""
}
