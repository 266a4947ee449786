package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	marketHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	farmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Browse the farmers market catalog",
	Long:  `List the products currently offered on the RANTU marketplace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, marketHeaderStyle.Render(a.i18n.T("market.title")))
		fmt.Fprintln(out)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tNAME\t%s\t%s\t%s\tTAGS\n",
			strings.ToUpper(a.i18n.T("market.farm")),
			strings.ToUpper(a.i18n.T("market.price")),
			strings.ToUpper(a.i18n.T("market.rating")))

		for _, p := range a.catalog.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s/%s\t%.1f (%d)\t%s\n",
				p.ID,
				p.Name,
				farmStyle.Render(p.Farm),
				formatRupiah(p.Price),
				p.Unit,
				p.Rating,
				p.Reviews,
				strings.Join(p.Tags, ", "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(marketCmd)
}
