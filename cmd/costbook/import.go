// Import command replaces the whole state from a JSON snapshot.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the whole state from a JSON snapshot",
	Long: `Import parses a snapshot produced by export and replaces the current
state with it. Without a file argument the snapshot is read from stdin.
A document that is not a JSON object is rejected and the current state is
left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			fail(exitSysError, "import", err)
		}

		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "import", err)
		}
		defer store.Detach()

		if err := repo.Import(cmd.Context(), data); err != nil {
			fail(failCode(err), "import", err)
		}

		state := repo.State()
		fmt.Printf("Imported %d material(s), %d product(s).\n", len(state.Materials), len(state.Products))
		return nil
	},
}
