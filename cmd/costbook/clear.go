// Clear command wipes the whole state and the durable store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every material, product, and the stored snapshot",
	Long: `Clear resets the state to empty and removes the stored snapshot from
the data directory. There is no undo; --force is required.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			fmt.Fprintln(os.Stderr, "clear: this deletes everything; re-run with --force")
			os.Exit(exitUserError)
		}

		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "clear", err)
		}
		defer store.Detach()

		if err := repo.ClearAll(cmd.Context()); err != nil {
			fail(failCode(err), "clear", err)
		}

		fmt.Println("All data cleared.")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "confirm deletion of all data")
}
