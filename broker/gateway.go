// Package broker defines the order gateway contract and the two-phase
// check-then-send executor that submits validated pending-stop orders
// through it.
package broker

import "context"

// Side is the direction of an open position.
type Side int

const (
	SideBuy Side = iota + 1
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

// Position is one open position as reported by the gateway.
type Position struct {
	Ticket int64
	Symbol string
	Side   Side
	Volume float64
	Entry  float64
}

// Account is the gateway's view of the trading account. The engine
// treats it as read-only input re-queried each cycle.
type Account struct {
	ID       string
	Currency string
	Balance  float64
	Equity   float64
}

// OrderGateway is the broker-side contract. Check performs a dry-run
// validation of the request with no side effects on the broker; Send
// lodges it live and returns a ticket when accepted. The gateway owns
// its own session lifecycle and timeouts; this engine imposes neither.
type OrderGateway interface {
	Check(ctx context.Context, req OrderRequest) (ReasonCode, error)
	Send(ctx context.Context, req OrderRequest) (ReasonCode, int64, error)
	OpenPositions(ctx context.Context, symbol string) ([]Position, error)
	GetAccount(ctx context.Context) (Account, error)
}
