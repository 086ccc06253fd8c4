// Recipe add command adds a material-quantity line to a product's recipe.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recipeAddProduct  string
	recipeAddMaterial string
	recipeAddQty      float64
	recipeAddNote     string
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a material to a product's recipe",
	Long: `Add puts a quantity of a material into a recipe. Without --product
the selected product is targeted. Adding a material already in the recipe
accumulates the quantity; the note is replaced only when a new one is
given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "recipe add", err)
		}
		defer store.Detach()

		accumulated, err := repo.AddRecipeLine(cmd.Context(), recipeAddProduct, recipeAddMaterial, recipeAddQty, recipeAddNote)
		if err != nil {
			fail(failCode(err), "recipe add", err)
		}

		if accumulated {
			fmt.Println("Quantity accumulated on existing line.")
		} else {
			fmt.Println("Line added to recipe.")
		}
		return nil
	},
}

func init() {
	recipeAddCmd.Flags().StringVar(&recipeAddProduct, "product", "", "product code (default: selected product)")
	recipeAddCmd.Flags().StringVar(&recipeAddMaterial, "material", "", "material code (required)")
	recipeAddCmd.Flags().Float64Var(&recipeAddQty, "qty", 0, "quantity per unit (> 0, required)")
	recipeAddCmd.Flags().StringVar(&recipeAddNote, "note", "", "free-form note for the line")
	recipeAddCmd.MarkFlagRequired("material")
	recipeAddCmd.MarkFlagRequired("qty")
}
