// Version command for the costbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabrica-tools/costbook/pkg/costbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the costbook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("costbook", costbook.Version)
	},
}
