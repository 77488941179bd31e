package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show paper trade history, newest first",
	RunE:  runHistory,
}

//nolint:gochecknoglobals // Cobra boilerplate
var historyLimit int

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "Maximum number of trades to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	led, store, err := openLedger()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	trades := led.TradeHistory(historyLimit)
	if len(trades) == 0 {
		fmt.Println("No trades recorded.")
		return nil
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.Header("Game", "Cat", "Status", "Opened", "Closed", "ROI%", "PnL", "Reason")
	for _, t := range trades {
		closed := "-"
		if !t.ClosedAt.IsZero() {
			closed = t.ClosedAt.Format("01-02 15:04")
		}
		tbl.Append(
			t.Game,
			t.Category,
			string(t.Status),
			t.OpenedAt.Format("01-02 15:04"),
			closed,
			fmt.Sprintf("%.2f", t.Result.ROIPercent),
			fmt.Sprintf("%.2f", t.RealizedPnL),
			t.CloseReason,
		)
	}
	tbl.Render()

	return nil
}
