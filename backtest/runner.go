// Package backtest replays historical candles through the live decision
// pipeline, one growing prefix per cycle, against the sim gateway.
package backtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/advisor/broker"
	"github.com/rustyeddy/advisor/internal/id"
	"github.com/rustyeddy/advisor/journal"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/sim"
	"github.com/rustyeddy/advisor/strategy"
)

// Summary is the aggregate result of one replay.
type Summary struct {
	RunID    string
	Cycles   int
	Signals  int
	Accepted int
	Rejected int
}

// Run replays candles through a fresh orchestrator configured by params.
// Every candle beyond the first becomes one cycle over the history seen
// so far, exactly as the live poller would have observed it. Outcomes
// that produced a signal are journaled when j is non-nil.
func Run(ctx context.Context, candles []market.Candle, params strategy.Params, balance float64, j journal.Journal, log zerolog.Logger) (Summary, error) {
	if len(candles) < 2 {
		return Summary{}, fmt.Errorf("backtest needs at least 2 candles, got %d", len(candles))
	}

	gw := sim.NewGateway(broker.Account{
		ID:       "BACKTEST",
		Currency: "USD",
		Balance:  balance,
		Equity:   balance,
	})
	source := sim.NewSliceSource(candles)

	orch, err := strategy.NewOrchestrator(params, source, gw, log)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{RunID: id.New()}
	start := time.Now().UTC()

	for end := 2; end <= len(candles); end++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		source.End = end

		res, err := orch.RunCycle(ctx)
		if err != nil && !errors.Is(err, strategy.ErrAlgoTradingDisabled) {
			return sum, fmt.Errorf("cycle %d: %w", end, err)
		}
		sum.Cycles++

		if res.Signal.Kind == strategy.SignalNone {
			continue
		}
		sum.Signals++
		switch res.Status {
		case strategy.StatusTradeMade:
			sum.Accepted++
		case strategy.StatusRejected:
			sum.Rejected++
		}

		if j != nil {
			out := journal.Outcome{
				RunID:      sum.RunID,
				Time:       res.Time,
				Status:     string(res.Status),
				Signal:     res.Signal.Kind.String(),
				Lots:       res.Lots,
				Entry:      res.Levels.Entry,
				StopLoss:   res.Levels.StopLoss,
				TakeProfit: res.Levels.TakeProfit,
			}
			if res.Outcome != nil {
				out.Reason = res.Outcome.Reason.String()
				out.Ticket = res.Outcome.Ticket
			}
			if err := j.RecordOutcome(out); err != nil {
				return sum, fmt.Errorf("journal outcome: %w", err)
			}
		}
	}

	if j != nil {
		err := j.RecordRun(journal.Run{
			ID:        sum.RunID,
			Symbol:    params.Symbol,
			Timeframe: string(params.Timeframe),
			Cycles:    sum.Cycles,
			Signals:   sum.Signals,
			Accepted:  sum.Accepted,
			Rejected:  sum.Rejected,
			StartTime: start,
			EndTime:   time.Now().UTC(),
		})
		if err != nil {
			return sum, fmt.Errorf("journal run: %w", err)
		}
	}
	return sum, nil
}
