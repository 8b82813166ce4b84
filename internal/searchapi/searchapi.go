// Package searchapi adapts Google Shopping results served by SearchApi.io.
package searchapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lukman83/pricewise/internal/compare"
	"github.com/lukman83/pricewise/internal/httputil"
	"github.com/lukman83/pricewise/internal/models"
	"github.com/lukman83/pricewise/internal/provider"
	"github.com/lukman83/pricewise/internal/seller"
)

const (
	Name            = "searchapi"
	DefaultEndpoint = "https://www.searchapi.io/api/v1/search"
	DefaultTimeout  = 20 * time.Second
	MaxResults      = 6
)

// Config configures the SearchApi.io adapter.
type Config struct {
	APIKey     string
	Endpoint   string
	Location   string
	Language   string
	Timeout    time.Duration
	MaxRetries int
	// Mandatory makes a missing API key a failure rather than a skip.
	Mandatory bool
	// TrustedOnly keeps whitelisted sellers only when choosing the capped results.
	TrustedOnly bool
}

// Client implements provider.Provider for SearchApi.io google_shopping.
type Client struct {
	cfg     Config
	http    *http.Client
	catalog *seller.Catalog
}

// New creates a SearchApi.io client. A nil client or catalog gets the defaults.
func New(cfg Config, client *http.Client, catalog *seller.Catalog) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Location == "" {
		cfg.Location = "United States"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
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
	Error           provider.LooseString `json:"error"`
	ShoppingResults []shoppingResult     `json:"shopping_results"`
}

type shoppingResult struct {
	Title            provider.LooseString `json:"title"`
	Price            provider.LooseString `json:"price"`
	ExtractedPrice   provider.LooseFloat  `json:"extracted_price"`
	AlternativePrice *struct {
		Price          provider.LooseString `json:"price"`
		ExtractedPrice provider.LooseFloat  `json:"extracted_price"`
	} `json:"alternative_price"`
	Source      provider.LooseString `json:"source"`
	Store       provider.LooseString `json:"store"`
	Merchant    provider.LooseString `json:"merchant"`
	Seller      provider.LooseString `json:"seller"`
	ProductLink provider.LooseString `json:"product_link"`
	Link        provider.LooseString `json:"link"`
	Thumbnail   provider.LooseString `json:"thumbnail"`
	Delivery    provider.LooseString `json:"delivery"`
}

func (c *Client) Search(ctx context.Context, query string) ([]models.Product, error) {
	if !c.Available() {
		return nil, provider.Fail(Name, provider.ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	params.Set("api_key", c.cfg.APIKey)
	params.Set("location", c.cfg.Location)
	params.Set("hl", c.cfg.Language)

	var payload response
	if err := httputil.GetJSON(ctx, c.http, c.cfg.Endpoint+"?"+params.Encode(), c.cfg.MaxRetries, &payload); err != nil {
		return nil, provider.Fail(Name, err)
	}
	if payload.Error != "" {
		return nil, provider.Fail(Name, fmt.Errorf("api error: %s", payload.Error))
	}

	products := make([]models.Product, 0, len(payload.ShoppingResults))
	for _, item := range payload.ShoppingResults {
		products = append(products, c.toProduct(item))
	}


	// Shopping results come in relevance order; keep the cheapest sellers.
	return compare.Rank(products, compare.Ranking{
		TrustedOnly: c.cfg.TrustedOnly,
		Catalog:     c.catalog,
		PageSize:    MaxResults,
	}), nil
}

func (c *Client) toProduct(item shoppingResult) models.Product {
	source := provider.FirstString(
		provider.Str(item.Source.String()),
		provider.Str(item.Store.String()),
		provider.Str(item.Merchant.String()),
		provider.Str(item.Seller.String()),
		provider.Str("Unknown"),
	)

	attempts := []provider.PriceAttempt{
		provider.Numeric(float64(item.ExtractedPrice), item.Price.String()),
		provider.Text(item.Price.String()),
	}
	if alt := item.AlternativePrice; alt != nil {
		attempts = append(attempts,
			provider.Numeric(float64(alt.ExtractedPrice), alt.Price.String()),
			provider.Text(alt.Price.String()),
		)
	}
	price := provider.FirstPrice(attempts...)

	thumbnail := item.Thumbnail.String()
	return models.Product{
		Title:        provider.FirstString(provider.Str(provider.CleanText(item.Title.String())), provider.Str("Product")),
		PriceDisplay: price.Display,
		PriceAmount:  price.Amount,
		Link:         provider.FirstString(provider.Str(item.ProductLink.String()), provider.Str(item.Link.String()), provider.Str("#")),
		Image:        thumbnail,
		Source:       source,
		Logo:         c.catalog.LogoFor(source, thumbnail),
		Delivery:     provider.CleanText(item.Delivery.String()),
	}
}
