// Package strategy detects RSI+MACD entry signals, derives trade levels
// from ATR, and drives the per-cycle decision pipeline.
package strategy

import "fmt"

// SignalKind classifies the detector's verdict for the latest candle.
type SignalKind int

const (
	SignalNone SignalKind = iota
	SignalBuy
	SignalSell
)

func (k SignalKind) String() string {
	switch k {
	case SignalNone:
		return "none"
	case SignalBuy:
		return "buy"
	case SignalSell:
		return "sell"
	default:
		return fmt.Sprintf("SignalKind(%d)", int(k))
	}
}

// Signal is the detector's output for one cycle: at most one non-None
// signal, attributed to the candle index it fired on.
type Signal struct {
	Kind  SignalKind
	Index int
}
