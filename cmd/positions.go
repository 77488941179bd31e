package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List open paper-trading positions",
	RunE:  runPositions,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(positionsCmd)
}

func runPositions(cmd *cobra.Command, args []string) error {
	led, store, err := openLedger()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	open := led.OpenPositions()
	if len(open) == 0 {
		fmt.Println("No open positions.")
		return nil
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.Header("Game", "Key", "Cat", "Strat", "Opened", "Stake/Leg", "Cost", "Edge", "ROI%", "Exp. Profit")
	for _, t := range open {
		tbl.Append(
			t.Game,
			t.GameKey,
			t.Category,
			fmt.Sprintf("%d", t.Result.SelectedStrategy),
			t.OpenedAt.Format("01-02 15:04"),
			fmt.Sprintf("%.2f", t.AmountPerLeg),
			fmt.Sprintf("%.2f", t.Cost),
			fmt.Sprintf("%.2f", t.Result.Edge),
			fmt.Sprintf("%.2f", t.Result.ROIPercent),
			fmt.Sprintf("%.2f", t.ExpectedProfit()),
		)
	}
	tbl.Render()

	return nil
}
