// Material command group for the costbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var materialCmd = &cobra.Command{
	Use:     "material",
	Aliases: []string{"mp"},
	Short:   "Manage raw materials",
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List raw materials sorted by code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "material list", err)
		}
		defer store.Detach()

		materials := repo.Materials()
		if flagJSON {
			printJSON(materials)
			return nil
		}

		if len(materials) == 0 {
			fmt.Println("No materials.")
			return nil
		}
		for _, m := range materials {
			fmt.Printf("%s\t%s\t%g\n", m.Code, m.Desc, m.Cost)
		}
		return nil
	},
}

func init() {
	materialCmd.AddCommand(materialAddCmd)
	materialCmd.AddCommand(materialRmCmd)
	materialCmd.AddCommand(materialListCmd)
}
