package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lukman83/pricewise/internal/compare"
	"github.com/lukman83/pricewise/internal/provider"
	"github.com/lukman83/pricewise/internal/ui"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [product]",
	Short: "Compare prices for a product across providers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().String("format", "json", "Output format: json, table")
	compareCmd.Flags().StringSlice("provider", nil, "Restrict to these providers (default: all)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	format, _ := cmd.Flags().GetString("format")
	names, _ := cmd.Flags().GetStringSlice("provider")

	if query == "" {
		return compare.ErrEmptyQuery
	}

	agg, err := buildAggregator(buildLogger(cmd.ErrOrStderr()), names)
	if err != nil {
		return err
	}

	spin := ui.NewSpinner(cmd.ErrOrStderr())
	spin.Start("Comparing prices for '" + query + "'...")
	ctx := provider.WithProgress(context.Background(), func(p provider.Progress) {
		spin.Update(p.String())
	})
	report, err := agg.Run(ctx, query)
	spin.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "table":
		printReport(out, report)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report.Products)
	}
	return nil
}
