// Material rm command deletes a material and cascades into recipes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var materialRmCmd = &cobra.Command{
	Use:   "rm <code>",
	Short: "Delete a raw material and remove it from every recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "material rm", err)
		}
		defer store.Detach()

		affected, err := repo.DeleteMaterial(cmd.Context(), args[0])
		if err != nil {
			fail(failCode(err), "material rm", err)
		}

		if affected > 0 {
			fmt.Printf("Material removed; %d recipe(s) updated.\n", affected)
		} else {
			fmt.Println("Material removed.")
		}
		return nil
	},
}
