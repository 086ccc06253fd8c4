// Product select command sets the current selection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var productSelectCmd = &cobra.Command{
	Use:   "select [code]",
	Short: "Select the product that recipe commands default to",
	Long: `Select sets the current product. With no argument the selection is
cleared. A code that matches no product leaves the selection unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "product select", err)
		}
		defer store.Detach()

		code := ""
		if len(args) == 1 {
			code = args[0]
		}

		if err := repo.SelectProduct(cmd.Context(), code); err != nil {
			fail(failCode(err), "product select", err)
		}

		selected := repo.State().SelectedProductCode
		if selected == "" {
			fmt.Println("Selection cleared.")
		} else {
			fmt.Println("Selected product:", selected)
		}
		return nil
	},
}
