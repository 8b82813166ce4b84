package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lukman83/pricewise/config"
	"github.com/lukman83/pricewise/internal/compare"
	"github.com/lukman83/pricewise/internal/httputil"
	"github.com/lukman83/pricewise/internal/obs"
	"github.com/lukman83/pricewise/internal/provider"
	"github.com/lukman83/pricewise/internal/rainforest"
	"github.com/lukman83/pricewise/internal/searchapi"
	"github.com/lukman83/pricewise/internal/seller"
	"github.com/lukman83/pricewise/internal/suggest"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pricewise",
	Short: "Pricewise - find the cheapest trustworthy offer for a product",
	Long: "Queries shopping-search providers in parallel, keeps trusted sellers, " +
		"collapses duplicates to the cheapest offer per seller and ranks by price.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("trusted-only", true, "Only return offers from whitelisted sellers")
	rootCmd.PersistentFlags().Int("page-size", 0, "Maximum number of offers returned (default from config)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML seller catalog")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	flags := rootCmd.PersistentFlags()
	if flags.Changed("trusted-only") {
		cfg.TrustedOnly, _ = flags.GetBool("trusted-only")
	}
	if v, _ := flags.GetInt("page-size"); v > 0 {
		cfg.PageSize = v
	}
	if v, _ := flags.GetString("catalog"); v != "" {
		cfg.CatalogFile = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
}

func buildLogger(w io.Writer) *slog.Logger {
	return obs.NewLogger(w, cfg.LogLevel, cfg.LogFormat)
}

func buildCatalog() (*seller.Catalog, error) {
	if cfg.CatalogFile == "" {
		return seller.DefaultCatalog(), nil
	}
	return seller.LoadCatalog(cfg.CatalogFile)
}

// buildHTTPClient creates a rate-limited client for one provider.
func buildHTTPClient(timeout time.Duration) *http.Client {
	transport := httputil.NewTransport(&http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}, cfg.RatePerSecond, cfg.RateBurst)
	return httputil.NewHTTPClient(transport, timeout)
}

// buildRegistry registers every provider in merge order.
func buildRegistry(catalog *seller.Catalog) *provider.Registry {
	reg := provider.NewRegistry()
	reg.Register(searchapi.New(searchapi.Config{
		APIKey:      cfg.SearchAPIKey,
		Location:    cfg.Location,
		Language:    cfg.Language,
		Timeout:     cfg.SearchAPITimeout,
		MaxRetries:  cfg.MaxRetries,
		Mandatory:   true,
		TrustedOnly: cfg.TrustedOnly,
	}, buildHTTPClient(cfg.SearchAPITimeout), catalog))
	reg.Register(rainforest.New(rainforest.Config{
		APIKey:       cfg.RainforestAPIKey,
		AmazonDomain: cfg.AmazonDomain,
		Timeout:      cfg.RainforestTimeout,
		MaxRetries:   cfg.MaxRetries,
	}, buildHTTPClient(cfg.RainforestTimeout), catalog))
	return reg
}

// buildAggregator wires the selected providers (all when names is empty).
func buildAggregator(log *slog.Logger, names []string) (*compare.Aggregator, error) {
	catalog, err := buildCatalog()
	if err != nil {
		return nil, err
	}
	providers, err := buildRegistry(catalog).Select(names)
	if err != nil {
		return nil, err
	}
	return compare.NewAggregator(providers, compare.Ranking{
		TrustedOnly: cfg.TrustedOnly,
		Catalog:     catalog,
		PageSize:    cfg.PageSize,
	}, log), nil
}

func buildSuggester() *suggest.Client {
	return suggest.New("", buildHTTPClient(suggest.DefaultTimeout))
}
