package strategy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/advisor/broker"
	"github.com/rustyeddy/advisor/indicators"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/metrics"
	"github.com/rustyeddy/advisor/risk"
)

// CycleStatus is the terminal classification of one polling cycle.
type CycleStatus string

const (
	StatusNoSignal     CycleStatus = "no-signal"
	StatusPositionHeld CycleStatus = "position-held"
	StatusNoTrade      CycleStatus = "no-trade"
	StatusRejected     CycleStatus = "rejected"
	StatusTradeMade    CycleStatus = "trade-made"
)

// Loop-terminating conditions. Everything else resolves locally into a
// no-trade cycle.
var (
	// ErrAlgoTradingDisabled means the operator must enable algorithmic
	// trading at the gateway terminal; retrying cannot help.
	ErrAlgoTradingDisabled = errors.New("algo trading disabled at the gateway; enable it at the terminal and restart")

	// ErrUnknownGatewayCode means the gateway answered with a code this
	// engine does not recognize. Stopping is safer than guessing.
	ErrUnknownGatewayCode = errors.New("gateway returned an unrecognized reason code")
)

// Params fixes one strategy instance's configuration.
type Params struct {
	Symbol       string            `json:"symbol" yaml:"symbol"`
	Timeframe    market.Timeframe  `json:"timeframe" yaml:"timeframe"`
	CandleCount  int               `json:"candle_count" yaml:"candle_count"`
	RiskFraction float64           `json:"risk_fraction" yaml:"risk_fraction"`
	Indicators   indicators.Config `json:"indicators" yaml:"indicators"`
}

// DefaultParams mirrors the stock RSI+MACD advisor setup.
func DefaultParams() Params {
	return Params{
		Symbol:       "USDJPY",
		Timeframe:    market.M30,
		CandleCount:  1000,
		RiskFraction: 0.01,
		Indicators:   indicators.DefaultConfig(),
	}
}

// Validate rejects parameter sets the pipeline cannot run with.
func (p Params) Validate() error {
	if _, err := market.Instrument(p.Symbol); err != nil {
		return err
	}
	if !p.Timeframe.Valid() {
		return fmt.Errorf("unknown timeframe %q", p.Timeframe)
	}
	if p.CandleCount <= 0 || p.CandleCount > market.MaxCandleBatch {
		return fmt.Errorf("candle_count must be in [1, %d], got %d", market.MaxCandleBatch, p.CandleCount)
	}
	if p.RiskFraction <= 0 || p.RiskFraction > 1 {
		return fmt.Errorf("risk_fraction must be in (0, 1], got %v", p.RiskFraction)
	}
	ind := p.Indicators
	if ind.RSIPeriod <= 0 || ind.MACDFast <= 0 || ind.MACDSlow <= 0 || ind.MACDSignal <= 0 || ind.ATRPeriod <= 0 {
		return fmt.Errorf("indicator periods must all be positive")
	}
	if ind.MACDFast >= ind.MACDSlow {
		return fmt.Errorf("macd_fast (%d) must be shorter than macd_slow (%d)", ind.MACDFast, ind.MACDSlow)
	}
	return nil
}

// CycleResult is what one polling cycle produced. Exactly one status
// line is logged per cycle regardless of outcome.
type CycleResult struct {
	Time    time.Time
	Status  CycleStatus
	Signal  Signal
	Lots    float64
	Levels  Levels
	Outcome *broker.Outcome
}

// Orchestrator drives one full decision cycle: fetch candles, build
// indicators, detect a signal, guard against pyramiding, derive levels,
// size the position, and execute. It holds no cross-cycle state; open
// positions and balance are queried fresh from the gateway every cycle.
type Orchestrator struct {
	params Params
	source market.CandleSource
	gw     broker.OrderGateway
	exec   *broker.Executor
	log    zerolog.Logger

	// detect is Detect in production; tests substitute it to force a
	// signal without crafting an exact RSI recross candle path.
	detect func(*indicators.Frame) (Signal, error)
}

func NewOrchestrator(params Params, source market.CandleSource, gw broker.OrderGateway, log zerolog.Logger) (*Orchestrator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("strategy params: %w", err)
	}
	return &Orchestrator{
		params: params,
		source: source,
		gw:     gw,
		exec:   broker.NewExecutor(gw, log),
		log:    log,
		detect: Detect,
	}, nil
}

// Params returns the instance configuration.
func (o *Orchestrator) Params() Params { return o.params }

// RunCycle executes one synchronous polling cycle. Indicator, signal and
// sizing problems resolve locally into a no-trade result; only
// gateway-protocol violations and transport failures come back as
// errors, and those terminate the caller's loop.
func (o *Orchestrator) RunCycle(ctx context.Context) (CycleResult, error) {
	candles, err := o.source.Fetch(ctx, o.params.Symbol, o.params.Timeframe, o.params.CandleCount)
	if err != nil {
		return CycleResult{}, fmt.Errorf("fetch candles for %s: %w", o.params.Symbol, err)
	}
	if len(candles) == 0 {
		return o.finish(CycleResult{Time: time.Now().UTC(), Status: StatusNoSignal}), nil
	}

	res := CycleResult{Time: candles[len(candles)-1].Time}
	frame := indicators.BuildFrame(candles, o.params.Indicators)

	sig, derr := o.detect(frame)
	if derr != nil {
		o.log.Error().Err(derr).Str("symbol", o.params.Symbol).
			Msg("signal detector inconsistency; treating as no signal")
	}
	res.Signal = sig
	if sig.Kind == SignalNone {
		res.Status = StatusNoSignal
		return o.finish(res), nil
	}

	// Never pyramid: a held position in the signal's direction
	// suppresses the entry. Queried fresh, not cached.
	held, err := o.sameDirectionHeld(ctx, sig.Kind)
	if err != nil {
		return res, fmt.Errorf("query open positions for %s: %w", o.params.Symbol, err)
	}
	if held {
		res.Status = StatusPositionHeld
		return o.finish(res), nil
	}

	levels, err := ComputeLevels(sig, frame)
	if err != nil {
		o.log.Warn().Err(err).Str("symbol", o.params.Symbol).Msg("cannot derive trade levels")
		res.Status = StatusNoTrade
		return o.finish(res), nil
	}
	res.Levels = levels

	acct, err := o.gw.GetAccount(ctx)
	if err != nil {
		return res, fmt.Errorf("query account: %w", err)
	}

	size, err := risk.Calculate(risk.Inputs{
		Balance:      acct.Balance,
		RiskFraction: o.params.RiskFraction,
		EntryPrice:   levels.Entry,
		StopLoss:     levels.StopLoss,
		Symbol:       o.params.Symbol,
	})
	if err != nil {
		o.log.Warn().Err(err).Str("symbol", o.params.Symbol).Msg("position sizing failed")
		res.Status = StatusNoTrade
		return o.finish(res), nil
	}
	if size.Lots == 0 {
		res.Status = StatusNoTrade
		return o.finish(res), nil
	}
	res.Lots = size.Lots

	kind := broker.KindBuyStop
	if sig.Kind == SignalSell {
		kind = broker.KindSellStop
	}
	req, err := broker.NewOrderRequest(
		o.params.Symbol, kind, size.Lots,
		levels.Entry, levels.StopLoss, levels.TakeProfit,
		fmt.Sprintf("RSI_MACD_%s", o.params.Symbol),
	)
	if err != nil {
		o.log.Warn().Err(err).Str("symbol", o.params.Symbol).Msg("order construction failed")
		res.Status = StatusNoTrade
		return o.finish(res), nil
	}

	outcome, err := o.exec.Execute(ctx, req)
	if err != nil {
		return res, err
	}
	res.Outcome = &outcome

	if outcome.Accepted {
		res.Status = StatusTradeMade
		metrics.OrdersTotal.WithLabelValues(o.params.Symbol, sig.Kind.String()).Inc()
		return o.finish(res), nil
	}

	res.Status = StatusRejected
	metrics.RejectsTotal.WithLabelValues(o.params.Symbol, outcome.Reason.String()).Inc()
	if outcome.Fatal {
		if outcome.Reason == broker.ReasonAlgoDisabled {
			return o.finish(res), ErrAlgoTradingDisabled
		}
		return o.finish(res), fmt.Errorf("%w: %s", ErrUnknownGatewayCode, outcome.Reason)
	}
	return o.finish(res), nil
}

func (o *Orchestrator) sameDirectionHeld(ctx context.Context, kind SignalKind) (bool, error) {
	positions, err := o.gw.OpenPositions(ctx, o.params.Symbol)
	if err != nil {
		return false, err
	}
	want := broker.SideBuy
	if kind == SignalSell {
		want = broker.SideSell
	}
	for _, p := range positions {
		if p.Side == want {
			return true, nil
		}
	}
	return false, nil
}

// finish emits the cycle's single status line and bumps counters.
func (o *Orchestrator) finish(res CycleResult) CycleResult {
	metrics.CyclesTotal.WithLabelValues(o.params.Symbol, string(res.Status)).Inc()

	ev := o.log.Info().
		Str("symbol", o.params.Symbol).
		Str("status", string(res.Status)).
		Stringer("signal", res.Signal.Kind)
	if res.Lots > 0 {
		ev = ev.Float64("lots", res.Lots).
			Float64("entry", res.Levels.Entry).
			Float64("stop_loss", res.Levels.StopLoss).
			Float64("take_profit", res.Levels.TakeProfit)
	}
	if res.Outcome != nil {
		ev = ev.Stringer("reason", res.Outcome.Reason).Int64("ticket", res.Outcome.Ticket)
	}
	ev.Msg(statusLine(res.Status))
	return res
}

func statusLine(s CycleStatus) string {
	switch s {
	case StatusTradeMade:
		return "trade made"
	case StatusRejected:
		return "order rejected"
	case StatusPositionHeld:
		return "signal suppressed: position already held in this direction"
	case StatusNoTrade:
		return "no trade this cycle"
	default:
		return "no signal"
	}
}
