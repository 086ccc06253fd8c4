// Recipe command group for the costbook CLI.
package main

import "github.com/spf13/cobra"

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Edit the recipe of a product",
}

func init() {
	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeRmCmd)
}
