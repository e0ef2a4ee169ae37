package broker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// State tracks an execution attempt through the two-phase protocol.
type State int

const (
	StateValidating State = iota
	StateValidated
	StateSubmitting
	StateAccepted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateValidated:
		return "validated"
	case StateSubmitting:
		return "submitting"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the terminal result of one execution attempt. It is never
// mutated after Execute returns.
type Outcome struct {
	State    State
	Accepted bool
	Reason   ReasonCode
	Ticket   int64

	// Fatal marks operator-level failures: algo trading disabled at the
	// terminal or an unrecognized gateway code. The cycle loop must stop
	// on a fatal outcome instead of retrying.
	Fatal bool
}

// Executor submits one order per call through the check-then-send
// protocol. The dry-run check costs an extra round trip but guarantees a
// live send is never attempted on a request the broker would reject
// outright. No retry is performed at any stage.
type Executor struct {
	gw  OrderGateway
	log zerolog.Logger
}

func NewExecutor(gw OrderGateway, log zerolog.Logger) *Executor {
	return &Executor{gw: gw, log: log}
}

// Execute validates req, checks it against the gateway, and sends it
// live only if the check succeeded. A non-nil error means the gateway
// transport itself failed; protocol rejects come back in the Outcome.
func (e *Executor) Execute(ctx context.Context, req OrderRequest) (Outcome, error) {
	// Validating: local checks before any gateway traffic.
	if req.Kind != KindBuyStop && req.Kind != KindSellStop {
		e.log.Error().Str("symbol", req.Symbol).Stringer("kind", req.Kind).
			Msg("order rejected: unsupported order kind")
		return Outcome{State: StateRejected, Reason: ReasonLocalReject}, nil
	}
	if req.StopPrice <= 0 {
		e.log.Error().Str("symbol", req.Symbol).Float64("stop_price", req.StopPrice).
			Msg("order rejected: stop price must be positive")
		return Outcome{State: StateRejected, Reason: ReasonLocalReject}, nil
	}

	code, err := e.gw.Check(ctx, req)
	if err != nil {
		return Outcome{State: StateRejected, Fatal: true}, fmt.Errorf("order check for %s: %w", req.Symbol, err)
	}
	switch {
	case code == ReasonCheckOK:
		// Validated; proceed straight to the live send.
	case code == ReasonInvalidPrice:
		e.log.Warn().Str("symbol", req.Symbol).Float64("stop_price", req.StopPrice).
			Stringer("reason", code).Msg("order check rejected")
		return Outcome{State: StateRejected, Reason: code}, nil
	default:
		e.log.Warn().Str("symbol", req.Symbol).Stringer("reason", code).
			Msg("order check rejected")
		return Outcome{State: StateRejected, Reason: code}, nil
	}

	// Submitting: same request, live this time.
	code, ticket, err := e.gw.Send(ctx, req)
	if err != nil {
		return Outcome{State: StateRejected, Fatal: true}, fmt.Errorf("order send for %s: %w", req.Symbol, err)
	}

	switch code {
	case ReasonDone, ReasonPendingAccepted:
		e.log.Info().Str("symbol", req.Symbol).Stringer("kind", req.Kind).
			Float64("volume", req.Volume).Int64("ticket", ticket).
			Msg("order accepted")
		return Outcome{State: StateAccepted, Accepted: true, Reason: code, Ticket: ticket}, nil

	case ReasonAlgoDisabled:
		e.log.Error().Str("symbol", req.Symbol).
			Msg("algo trading is disabled at the gateway terminal; enable it and restart")
		return Outcome{State: StateRejected, Reason: code, Fatal: true}, nil

	case ReasonInvalidPrice:
		e.log.Warn().Str("symbol", req.Symbol).Float64("stop_price", req.StopPrice).
			Stringer("reason", code).Msg("order send rejected")
		return Outcome{State: StateRejected, Reason: code}, nil

	case ReasonInvalidStops:
		e.log.Warn().Str("symbol", req.Symbol).Float64("stop_loss", req.StopLoss).
			Stringer("reason", code).Msg("order send rejected")
		return Outcome{State: StateRejected, Reason: code}, nil

	case ReasonInvalidVolume:
		e.log.Warn().Str("symbol", req.Symbol).Float64("volume", req.Volume).
			Stringer("reason", code).Msg("order send rejected")
		return Outcome{State: StateRejected, Reason: code}, nil

	default:
		e.log.Error().Str("symbol", req.Symbol).Stringer("reason", code).
			Msg("order send failed with unrecognized code")
		return Outcome{State: StateRejected, Reason: code, Fatal: true}, nil
	}
}
