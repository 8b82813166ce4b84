// Package server exposes the comparison service over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/lukman83/pricewise/internal/compare"
	"github.com/lukman83/pricewise/internal/models"
)

type Comparer interface {
	Compare(ctx context.Context, query string) ([]models.Product, error)
}

type Suggester interface {
	Suggest(ctx context.Context, partial string) ([]string, error)
}

type Options struct {
	AllowOrigins string
	// MCPHandler, when set, is mounted at /mcp.
	MCPHandler http.Handler
	// APIKey guards /mcp with a bearer token when non-empty.
	APIKey string
	Logger *slog.Logger
}

type handlers struct {
	comparer  Comparer
	suggester Suggester
	log       *slog.Logger
}

// New builds the fiber application.
func New(comparer Comparer, suggester Suggester, opts Options) *fiber.App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AllowOrigins == "" {
		opts.AllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "pricewise",
		DisableStartupMessage: true,
	})
	app.Use(withRequestID)
	app.Use(withLogging(opts.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Mcp-Session-Id",
	}))

	h := &handlers{comparer: comparer, suggester: suggester, log: opts.Logger}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Price Comparison API is running")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/api/compare", h.compare)
	app.Get("/api/compare/suggestions", h.suggestions)

	if opts.MCPHandler != nil {
		mcp := adaptor.HTTPHandler(opts.MCPHandler)
		if opts.APIKey != "" {
			app.All("/mcp", bearerAuth(opts.APIKey), mcp)
		} else {
			app.All("/mcp", mcp)
		}
	}

	return app
}

// GET /api/compare?q=productName
func (h *handlers) compare(c *fiber.Ctx) error {
	products, err := h.comparer.Compare(c.UserContext(), c.Query("q"))
	if err != nil {
		if errors.Is(err, compare.ErrEmptyQuery) {
			return writeJSONError(c, fiber.StatusBadRequest, `Query parameter "q" is required`, "")
		}
		h.log.Error("compare failed", "error", err, "request_id", RequestID(c))
		return writeJSONError(c, fiber.StatusInternalServerError, "Failed to fetch price data", err.Error())
	}
	return c.JSON(products)
}

// GET /api/compare/suggestions?q=partialText
func (h *handlers) suggestions(c *fiber.Ctx) error {
	suggestions, err := h.suggester.Suggest(c.UserContext(), c.Query("q"))
	if err != nil {
		h.log.Warn("suggestions failed", "error", err, "request_id", RequestID(c))
		return c.JSON([]string{})
	}
	return c.JSON(suggestions)
}
