// Recipe rm command removes a line from a product's recipe.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	recipeRmProduct string
	recipeRmLineID  string
)

var recipeRmCmd = &cobra.Command{
	Use:   "rm [index]",
	Short: "Remove a recipe line by index or stable id",
	Long: `Rm removes one line from a recipe. The positional index comes from
"product show"; it shifts when earlier lines are removed, so --line with
the stable line id is safer when scripting. An index that no longer
exists is ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (len(args) == 0) == (recipeRmLineID == "") {
			fmt.Fprintln(os.Stderr, "recipe rm: give an index or --line, not both")
			os.Exit(exitUserError)
		}

		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "recipe rm", err)
		}
		defer store.Detach()

		var removed bool
		if recipeRmLineID != "" {
			removed, err = repo.RemoveRecipeLineByID(cmd.Context(), recipeRmProduct, recipeRmLineID)
		} else {
			index, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				fmt.Fprintf(os.Stderr, "recipe rm: invalid index %q\n", args[0])
				os.Exit(exitUserError)
			}
			removed, err = repo.RemoveRecipeLine(cmd.Context(), recipeRmProduct, index)
		}
		if err != nil {
			fail(failCode(err), "recipe rm", err)
		}

		if removed {
			fmt.Println("Line removed.")
		} else {
			fmt.Println("No such line; recipe unchanged.")
		}
		return nil
	},
}

func init() {
	recipeRmCmd.Flags().StringVar(&recipeRmProduct, "product", "", "product code (default: selected product)")
	recipeRmCmd.Flags().StringVar(&recipeRmLineID, "line", "", "stable line id (alternative to index)")
}
