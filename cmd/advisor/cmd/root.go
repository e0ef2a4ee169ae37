package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "An RSI+MACD trading decision engine",
	Long: `Advisor is an algorithmic-trading decision engine written in Go.

Given candle history for an instrument it computes RSI, MACD and ATR,
detects entry signals, sizes the position by account risk, derives
stop-loss/take-profit levels, and submits pending-stop orders through a
two-phase check-then-send broker protocol.

It provides tools for:
  - Running the polling decision loop against a simulated gateway
  - Backtesting the strategy over historical candle CSVs
  - Journaling backtest runs to CSV or SQLite
  - Risk-based lot sizing with per-instrument pip metadata`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
