// Material add command upserts a raw material.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	materialAddCode string
	materialAddDesc string
	materialAddCost float64
)

var materialAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a raw material, or update one with the same code",
	Long: `Add registers a raw material with a unit cost. Adding a code that
already exists overwrites its description and cost in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "material add", err)
		}
		defer store.Detach()

		created, err := repo.UpsertMaterial(cmd.Context(), materialAddCode, materialAddDesc, materialAddCost)
		if err != nil {
			fail(failCode(err), "material add", err)
		}

		if created {
			fmt.Println("Material added:", materialAddCode)
		} else {
			fmt.Println("Material updated:", materialAddCode)
		}
		return nil
	},
}

func init() {
	materialAddCmd.Flags().StringVar(&materialAddCode, "code", "", "material code (required)")
	materialAddCmd.Flags().StringVar(&materialAddDesc, "desc", "", "material description (required)")
	materialAddCmd.Flags().Float64Var(&materialAddCost, "cost", 0, "unit cost (>= 0)")
	materialAddCmd.MarkFlagRequired("code")
	materialAddCmd.MarkFlagRequired("desc")
}
