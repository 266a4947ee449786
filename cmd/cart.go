package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	cartAdd    string
	cartQty    int
	cartRemove string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show or modify the shopping cart",
	Long: `Show the demo shopping cart.

--add puts a catalog product (by id) in the cart, incrementing its line if
one exists; --remove drops a line. The cart itself is demo state seeded at
startup; only chat conversations persist between runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		out := cmd.OutOrStdout()

		if cartAdd != "" {
			product, ok := a.catalog.Get(cartAdd)
			if !ok {
				return fmt.Errorf("no product with id %q in the catalog", cartAdd)
			}
			a.cart.Add(product, cartQty)
		}
		if cartRemove != "" {
			a.cart.Remove(cartRemove)
		}

		items := a.cart.Items()
		fmt.Fprintln(out, marketHeaderStyle.Render(a.i18n.T("cart.title")))
		fmt.Fprintln(out)
		if len(items) == 0 {
			fmt.Fprintln(out, a.i18n.T("cart.empty"))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tNAME\tQTY\tPRICE\tLINE\n")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s/%s\t%s\n",
				item.ID,
				item.Name,
				item.Quantity,
				formatRupiah(item.Price),
				item.Unit,
				formatRupiah(item.Price*int64(item.Quantity)))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%s: %s\n", a.i18n.T("cart.subtotal"), formatRupiah(a.cart.Subtotal()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)

	cartCmd.Flags().StringVar(&cartAdd, "add", "", "Add a product to the cart by id")
	cartCmd.Flags().IntVar(&cartQty, "qty", 1, "Quantity for --add")
	cartCmd.Flags().StringVar(&cartRemove, "remove", "", "Remove a product from the cart by id")
}
