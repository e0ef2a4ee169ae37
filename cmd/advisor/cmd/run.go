package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/advisor/broker"
	"github.com/rustyeddy/advisor/config"
	"github.com/rustyeddy/advisor/internal/logging"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/metrics"
	"github.com/rustyeddy/advisor/sim"
	"github.com/rustyeddy/advisor/strategy"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the polling decision loop against the sim gateway",
	Long: `Run the strategy loop from a configuration file.

Each cycle fetches candles, computes indicators, detects a signal, and
submits a validated pending-stop order through the gateway. The loop
stops on Ctrl-C, on a fatal gateway outcome, or on a transport failure.

Example:
  advisor run -f examples/configs/basic.yaml`,
	RunE: runRun,
}

var (
	runConfigPath string
	runSeed       int64
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "seed for the synthetic candle source")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(os.Stderr, cfg.Logging.Level)

	if cfg.Metrics.Addr != "" {
		srv := metrics.Serve(cfg.Metrics.Addr)
		defer srv.Close()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics listener started")
	}

	gw := sim.NewGateway(broker.Account{
		ID:       cfg.Account.ID,
		Currency: cfg.Account.Currency,
		Balance:  cfg.Account.Balance,
		Equity:   cfg.Account.Balance,
	})
	gw.FillOnAccept = true

	meta, _ := market.Instrument(cfg.Strategy.Symbol)
	startPrice := 1.10
	if meta.QuoteJPY() {
		startPrice = 150.0
	}
	candles := sim.GenerateCandles(runSeed, cfg.Strategy.CandleCount+500, startPrice, cfg.Strategy.Timeframe)
	source := sim.NewSliceSource(candles)
	source.End = cfg.Strategy.CandleCount
	source.AdvanceOnFetch = true

	orch, err := strategy.NewOrchestrator(cfg.Strategy, source, gw, log)
	if err != nil {
		return err
	}

	interval, err := cfg.Runner.ParseInterval()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("symbol", cfg.Strategy.Symbol).
		Str("timeframe", string(cfg.Strategy.Timeframe)).
		Dur("interval", interval).
		Msg("starting cycle loop")

	runner := strategy.NewRunner(orch, interval, log)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
