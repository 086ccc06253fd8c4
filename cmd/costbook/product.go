// Product command group for the costbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage finished products and their recipes",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products sorted by code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "product list", err)
		}
		defer store.Detach()

		products := repo.Products()
		selected := repo.State().SelectedProductCode

		if flagJSON {
			printJSON(products)
			return nil
		}

		if len(products) == 0 {
			fmt.Println("No products.")
			return nil
		}
		for _, p := range products {
			marker := " "
			if p.Code == selected {
				marker = "*"
			}
			fmt.Printf("%s %s\t%s\tdaily %g\t%d line(s)\n", marker, p.Code, p.Desc, p.DailyQty, len(p.Recipe))
		}
		return nil
	},
}

func init() {
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productSelectCmd)
	productCmd.AddCommand(productShowCmd)
}
