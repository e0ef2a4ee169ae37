// Package sim provides in-memory implementations of the broker gateway
// and candle source contracts for demos, backtests, and tests.
package sim

import (
	"context"
	"sync"

	"github.com/rustyeddy/advisor/broker"
)

// Gateway is a scripted OrderGateway. By default every check succeeds
// and every send is accepted; tests override CheckCode/SendCode to
// exercise the reject paths. All calls are recorded.
type Gateway struct {
	mu sync.Mutex

	account    broker.Account
	positions  []broker.Position
	nextTicket int64

	// CheckCode and SendCode are returned verbatim by Check and Send.
	CheckCode broker.ReasonCode
	SendCode  broker.ReasonCode

	// FillOnAccept appends an open position when a send is accepted,
	// as if the pending stop triggered immediately. Demos use this so
	// the pyramiding guard has something to see.
	FillOnAccept bool

	CheckCalls []broker.OrderRequest
	SendCalls  []broker.OrderRequest
}

func NewGateway(acct broker.Account) *Gateway {
	return &Gateway{
		account:    acct,
		nextTicket: 1000,
		CheckCode:  broker.ReasonCheckOK,
		SendCode:   broker.ReasonDone,
	}
}

func (g *Gateway) Check(ctx context.Context, req broker.OrderRequest) (broker.ReasonCode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.CheckCalls = append(g.CheckCalls, req)
	return g.CheckCode, nil
}

func (g *Gateway) Send(ctx context.Context, req broker.OrderRequest) (broker.ReasonCode, int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.SendCalls = append(g.SendCalls, req)

	if !g.SendCode.Accepted() {
		return g.SendCode, 0, nil
	}

	g.nextTicket++
	ticket := g.nextTicket
	if g.FillOnAccept {
		side := broker.SideBuy
		if req.Kind == broker.KindSellStop {
			side = broker.SideSell
		}
		g.positions = append(g.positions, broker.Position{
			Ticket: ticket,
			Symbol: req.Symbol,
			Side:   side,
			Volume: req.Volume,
			Entry:  req.StopPrice,
		})
	}
	return g.SendCode, ticket, nil
}

func (g *Gateway) OpenPositions(ctx context.Context, symbol string) ([]broker.Position, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]broker.Position, 0, len(g.positions))
	for _, p := range g.positions {
		if p.Symbol == symbol {
			out = append(out, p)
		}
	}
	return out, nil
}

func (g *Gateway) GetAccount(ctx context.Context) (broker.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.account, nil
}

// SetPositions replaces the open position set.
func (g *Gateway) SetPositions(positions []broker.Position) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.positions = positions
}
