package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lukman83/pricewise/internal/compare"
	"github.com/lukman83/pricewise/internal/server"
	mcpserver "github.com/lukman83/pricewise/mcp"
	"github.com/spf13/cobra"
)

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Start the HTTP API",
	Long:  "Serve /api/compare, /api/compare/suggestions and the MCP endpoint at /mcp over HTTP.",
	RunE:  runServeHTTP,
}

func init() {
	serveHTTPCmd.Flags().String("port", "", "HTTP port (default from $PORT or 5000)")
	rootCmd.AddCommand(serveHTTPCmd)
}

func runServeHTTP(cmd *cobra.Command, args []string) error {
	log := buildLogger(os.Stderr)

	agg, err := buildAggregator(log, nil)
	if err != nil {
		return err
	}
	svc := compare.NewService(agg)
	suggester := buildSuggester()

	app := server.New(svc, suggester, server.Options{
		AllowOrigins: cfg.AllowOrigins,
		MCPHandler:   mcpserver.HTTPHandler(svc, suggester),
		APIKey:       cfg.APIKey,
		Logger:       log,
	})

	port := cfg.HTTPPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}
	addr := fmt.Sprintf(":%s", port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
