package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sellersCmd = &cobra.Command{
	Use:   "sellers",
	Short: "List the trusted-seller whitelist in effect",
	Long:  "Print the normalized whitelist used by the trust filter, including any --catalog override.",
	Args:  cobra.NoArgs,
	RunE:  runSellers,
}

func init() {
	rootCmd.AddCommand(sellersCmd)
}

func runSellers(cmd *cobra.Command, args []string) error {
	catalog, err := buildCatalog()
	if err != nil {
		return err
	}
	for _, s := range catalog.Trusted() {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}
