package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Autocomplete a product search",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	suggestions, err := buildSuggester().Suggest(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}
