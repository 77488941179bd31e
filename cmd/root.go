package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "polymix",
	Short: "Polymarket vs Kalshi arbitrage monitor",
	Long: `Polymix compares binary sports markets on Polymarket and Kalshi,
looks for cross-venue price discrepancies that survive fees and slippage,
and records profitable hedges as paper trades.

The monitor polls the odds feed on a fixed interval, opens at most one
position per game, and settles positions once a venue reports the game
as finished.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
