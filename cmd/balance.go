package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the paper-trading balance",
	Long: `Display the current paper-trading account state:
- cash balance and reserved exposure
- realized profit from settled and closed trades
- estimated profit still locked in open positions`,
	RunE: runBalance,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	led, store, err := openLedger()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	snap := led.Snapshot(0)

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.Header("Metric", "USD")
	tbl.Append("Balance", fmt.Sprintf("%.2f", snap.Balance))
	tbl.Append("Initial balance", fmt.Sprintf("%.2f", snap.InitialBalance))
	tbl.Append("Reserved exposure", fmt.Sprintf("%.2f", snap.TotalExposure))
	tbl.Append("Available", fmt.Sprintf("%.2f", snap.Balance-snap.TotalExposure))
	tbl.Append("Realized profit", fmt.Sprintf("%.2f", snap.RealizedProfit))
	tbl.Append("Estimated profit (open)", fmt.Sprintf("%.2f", snap.EstimatedProfit))
	tbl.Render()

	fmt.Printf("\nTotal trades: %d\n", snap.TotalTrades)
	return nil
}
