package cmd

import (
	"fmt"

	"github.com/rantu/rantu-market/internal"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear persisted chat conversations",
	Long: `Remove the stored chat conversations.

The next chat run starts fresh with only the default AI assistant
conversation. Catalog, cart, and orders are demo state and are unaffected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := internal.NewSessionStore(a.kv).Clear(); err != nil {
			return fmt.Errorf("failed to clear chat state: %w", err)
		}

		internal.LogInfo("Cleared chat state at %s", a.paths.DatabasePath)
		fmt.Fprintln(cmd.OutOrStdout(), "Chat conversations cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
