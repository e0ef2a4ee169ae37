package strategy

import (
	"fmt"

	"github.com/rustyeddy/advisor/indicators"
)

// ATR multiples for stop loss and take profit.
const (
	stopLossATRMult   = 1.5
	takeProfitATRMult = 3.0
)

// Levels are the raw entry/stop/target prices for one signal. Prices
// here are unrounded; rounding happens once, at order construction.
//
// Invariant: for a buy, StopLoss < Entry < TakeProfit; for a sell,
// TakeProfit < Entry < StopLoss.
type Levels struct {
	Entry      float64
	StopLoss   float64
	TakeProfit float64
}

// ComputeLevels derives stop loss and take profit from the ATR at the
// signal candle. Entry is that candle's close. An undefined ATR cell
// means the lookback is not yet satisfied and no trade is possible.
func ComputeLevels(sig Signal, frame *indicators.Frame) (Levels, error) {
	if sig.Kind == SignalNone {
		return Levels{}, fmt.Errorf("no levels for a none signal")
	}

	atr, ok := frame.ATR.At(sig.Index)
	if !ok {
		return Levels{}, fmt.Errorf("atr undefined at candle %d: insufficient history", sig.Index)
	}
	if atr <= 0 {
		return Levels{}, fmt.Errorf("atr is %v at candle %d: cannot derive levels", atr, sig.Index)
	}

	entry := frame.Candles[sig.Index].Close
	if sig.Kind == SignalBuy {
		return Levels{
			Entry:      entry,
			StopLoss:   entry - stopLossATRMult*atr,
			TakeProfit: entry + takeProfitATRMult*atr,
		}, nil
	}
	return Levels{
		Entry:      entry,
		StopLoss:   entry + stopLossATRMult*atr,
		TakeProfit: entry - takeProfitATRMult*atr,
	}, nil
}
