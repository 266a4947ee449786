package cmd

import (
	"fmt"
	"os"

	"github.com/rantu/rantu-market/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dataDir string
	locale  string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rantu",
	Short: "Demo storefront for the RANTU farm goods marketplace",
	Long: `A demo storefront for RANTU, an agricultural goods marketplace
connecting buyers with farmers around Jambi.

The storefront keeps its state locally: the product catalog, cart, and
orders live in process memory, and chat conversations persist to a local
database so they survive between runs.

Features:
  • Browse the farmers market catalog
  • Manage a cart and place demo orders
  • Chat with the RANTU AI assistant (market prices, weather, farming tips)
  • Message sellers and couriers, resumed per contact across runs

Quick Start:
  rantu market                              # Browse the catalog
  rantu chat                                # Talk to the AI assistant
  rantu chat --contact "Tani Makmur"        # Message a seller
  rantu orders --checkout                   # Place an order from the cart`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Custom data directory (default: per-OS app data dir, or RANTU_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", internal.DefaultLocale, "Display language (id or en)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
