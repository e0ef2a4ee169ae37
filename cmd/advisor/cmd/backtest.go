package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/backtest"
	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/internal/logging"
	"github.com/rustyeddy/advisor/journal"
	"github.com/rustyeddy/advisor/market"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay a candle CSV through the decision pipeline",
	Long: `Replay historical candles through the same pipeline the live loop
runs, one growing history prefix per cycle, and report how many signals
fired and how their orders fared. Candle files are semicolon-separated:
time;open;high;low;close;volume.

Example:
  advisor backtest -f examples/configs/basic.yaml --candles usdjpy_m30.csv`,
	RunE: runBacktest,
}

var (
	btConfigPath  string
	btCandlesPath string
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	backtestCmd.Flags().StringVar(&btCandlesPath, "candles", "", "path to candle CSV (required)")
	backtestCmd.MarkFlagRequired("config")
	backtestCmd.MarkFlagRequired("candles")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(btConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(os.Stderr, cfg.Logging.Level)

	candles, err := market.LoadCSV(btCandlesPath)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	var j journal.Journal
	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.RunsFile, cfg.Journal.OutcomesFile)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	sum, err := backtest.Run(context.Background(), candles, cfg.Strategy, cfg.Account.Balance, j, log)
	if err != nil {
		return err
	}

	fmt.Printf("Backtest %s complete:\n", sum.RunID)
	fmt.Printf("  Candles:  %d\n", len(candles))
	fmt.Printf("  Cycles:   %d\n", sum.Cycles)
	fmt.Printf("  Signals:  %d\n", sum.Signals)
	fmt.Printf("  Accepted: %d\n", sum.Accepted)
	fmt.Printf("  Rejected: %d\n", sum.Rejected)
	return nil
}
