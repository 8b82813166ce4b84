package cmd

import (
	"fmt"

	"github.com/lukman83/pricewise/internal/compare"
	mcpserver "github.com/lukman83/pricewise/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol; logs go to stderr
	agg, err := buildAggregator(buildLogger(cmd.ErrOrStderr()), nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Pricewise MCP server on stdio...")
	return mcpserver.Serve(compare.NewService(agg), buildSuggester())
}
