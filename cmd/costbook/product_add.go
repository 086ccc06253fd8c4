// Product add command upserts a finished product and selects it.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	productAddCode     string
	productAddDesc     string
	productAddDailyQty float64
)

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product, or update one with the same code",
	Long: `Add registers a finished product with a daily production quantity.
Adding a code that already exists overwrites its description and daily
quantity while keeping the recipe. The product becomes the current
selection either way.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "product add", err)
		}
		defer store.Detach()

		created, err := repo.UpsertProduct(cmd.Context(), productAddCode, productAddDesc, productAddDailyQty)
		if err != nil {
			fail(failCode(err), "product add", err)
		}

		if created {
			fmt.Println("Product created:", productAddCode)
		} else {
			fmt.Println("Product updated:", productAddCode)
		}
		return nil
	},
}

func init() {
	productAddCmd.Flags().StringVar(&productAddCode, "code", "", "product code (required)")
	productAddCmd.Flags().StringVar(&productAddDesc, "desc", "", "product description (required)")
	productAddCmd.Flags().Float64Var(&productAddDailyQty, "daily-qty", 0, "units produced per day (>= 0)")
	productAddCmd.MarkFlagRequired("code")
	productAddCmd.MarkFlagRequired("desc")
}
