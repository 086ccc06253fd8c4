// Package main provides the costbook CLI: bill-of-materials costing for a
// local book of raw materials and finished products.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
