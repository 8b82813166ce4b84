package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List shopping providers and whether they are configured",
	Args:  cobra.NoArgs,
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	catalog, err := buildCatalog()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAVAILABLE\tREQUIRED")
	for _, p := range buildRegistry(catalog).List() {
		fmt.Fprintf(tw, "%s\t%v\t%v\n", p.Name(), p.Available(), p.Required())
	}
	return tw.Flush()
}
