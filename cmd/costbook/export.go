// Export command writes the whole state as a JSON snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole state as pretty-printed JSON",
	Long: `Export serializes every material, every product, and the current
selection to the JSON interchange form, suitable for backup or for
importing into another data directory. Without -o the snapshot goes to
stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "export", err)
		}
		defer store.Detach()

		data, err := repo.Export()
		if err != nil {
			fail(exitSysError, "export", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, append(data, '\n'), 0o644); err != nil {
			fail(exitSysError, "export", err)
		}
		fmt.Fprintln(os.Stderr, "Snapshot written to", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the snapshot to a file instead of stdout")
}
