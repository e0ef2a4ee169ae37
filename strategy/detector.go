package strategy

import (
	"errors"

	"github.com/rustyeddy/advisor/indicators"
)

// RSI thresholds for the recross entries.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// ErrConflictingSignals reports the contract violation of buy and sell
// conditions holding for the same candle. The detector resolves it by
// emitting None; callers should log it.
var ErrConflictingSignals = errors.New("buy and sell conditions both true for the same candle")

// Detect evaluates the latest candle of the frame and returns at most
// one signal. It is stateless: everything is recomputed from the frame.
//
// Buy fires when RSI recrosses up through 30 while MACD is above its
// signal line with a positive histogram; Sell mirrors it at 70. Any
// undefined indicator cell in the window means no signal is possible.
func Detect(frame *indicators.Frame) (Signal, error) {
	last := frame.Len() - 1
	prev := last - 1
	if prev < 0 {
		return Signal{Kind: SignalNone, Index: last}, nil
	}

	prevRSI, ok1 := frame.RSI.At(prev)
	curRSI, ok2 := frame.RSI.At(last)
	macd, ok3 := frame.MACD.At(last)
	sigLine, ok4 := frame.Signal.At(last)
	hist, ok5 := frame.Histogram.At(last)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return Signal{Kind: SignalNone, Index: last}, nil
	}

	buy := prevRSI < rsiOversold && curRSI > rsiOversold &&
		macd > sigLine && hist > 0
	sell := prevRSI > rsiOverbought && curRSI < rsiOverbought &&
		macd < sigLine && hist < 0

	switch {
	case buy && sell:
		return Signal{Kind: SignalNone, Index: last}, ErrConflictingSignals
	case buy:
		return Signal{Kind: SignalBuy, Index: last}, nil
	case sell:
		return Signal{Kind: SignalSell, Index: last}, nil
	default:
		return Signal{Kind: SignalNone, Index: last}, nil
	}
}
