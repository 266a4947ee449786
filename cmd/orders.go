package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	ordersCheckout bool
	ordersAdvance  string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show orders, place one from the cart, or advance fulfillment",
	Long: `Show the order list.

--checkout turns the current cart into a confirmed order and clears the
cart. --advance moves an order to its next fulfillment stage, the way the
seller dashboard would.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		out := cmd.OutOrStdout()

		if ordersCheckout {
			order, err := a.orders.PlaceOrder(a.cart)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (%s)\n\n", a.i18n.T("orders.placed"), order.ID)
		}
		if ordersAdvance != "" {
			status, err := a.orders.Advance(ordersAdvance)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s → %s\n\n", ordersAdvance, a.i18n.T("orders.status."+string(status)))
		}

		fmt.Fprintln(out, marketHeaderStyle.Render(a.i18n.T("orders.title")))
		fmt.Fprintln(out)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tDATE\tSTATUS\tTOTAL\tCOURIER\n")
		for _, order := range a.orders.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				order.ID,
				order.Date,
				a.i18n.T("orders.status."+string(order.Status)),
				formatRupiah(order.Total),
				order.Courier)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)

	ordersCmd.Flags().BoolVar(&ordersCheckout, "checkout", false, "Place an order from the current cart")
	ordersCmd.Flags().StringVar(&ordersAdvance, "advance", "", "Advance an order to its next fulfillment stage by id")
}
