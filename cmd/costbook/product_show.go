// Product show command prints a costed recipe with unit and daily totals.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabrica-tools/costbook/pkg/costing"
)

var productShowCmd = &cobra.Command{
	Use:   "show [code]",
	Short: "Show a product's recipe with line, unit, and daily costs",
	Long: `Show costs a product's recipe against the current material costs.
With no argument the selected product is shown. Lines whose material has
been deleted are marked dangling and cost zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openRepository(cmd.Context())
		if err != nil {
			fail(exitSysError, "product show", err)
		}
		defer store.Detach()

		state := repo.State()

		product := state.SelectedProduct()
		if len(args) == 1 {
			product = state.FindProduct(args[0])
			if product == nil {
				fmt.Fprintf(os.Stderr, "product %q not found\n", args[0])
				os.Exit(exitUserError)
			}
		}
		if product == nil {
			fmt.Fprintln(os.Stderr, "no product selected; create one or pass a code")
			os.Exit(exitUserError)
		}

		summary := costing.Summarize(product, state.Materials)

		if flagJSON {
			printJSON(summary)
			return nil
		}

		fmt.Printf("%s\t%s\tdaily %g\n", summary.Code, summary.Desc, summary.DailyQty)
		for _, line := range summary.Lines {
			desc := line.Desc
			if line.Dangling {
				desc = "(material deleted)"
			}
			fmt.Printf("  [%d] %s\t%s\tqty %g\tcost %g", line.Index, line.MPCode, desc, line.Qty, line.Cost)
			if line.Note != "" {
				fmt.Printf("\t%s", line.Note)
			}
			fmt.Println()
		}
		fmt.Printf("unit cost:  %g\n", summary.UnitCost)
		fmt.Printf("daily cost: %g\n", summary.DailyCost)
		return nil
	},
}
