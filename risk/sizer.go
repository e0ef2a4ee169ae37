// Package risk converts account balance and stop distance into a
// bounded position size.
package risk

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/advisor/market"
)

// MaxLots is the hard cap on position size.
const MaxLots = 9.99

// ErrZeroStopDistance is returned when entry equals stop, which makes
// the pip-value division undefined.
var ErrZeroStopDistance = errors.New("stop distance is zero: entry price equals stop loss")

// Inputs are the sizing parameters for one trade.
type Inputs struct {
	Balance      float64 // account balance in account currency
	RiskFraction float64 // fraction of balance at risk, 0 < f <= 1
	EntryPrice   float64
	StopLoss     float64
	Symbol       string
}

// Result carries the sized position and its intermediates.
type Result struct {
	Lots       float64 // rounded to 2 decimals, capped at MaxLots
	StopPips   float64
	RiskAmount float64 // Balance * RiskFraction
}

// Calculate sizes a position so that hitting the stop loses RiskAmount.
//
// Stop distance is measured in pips from the instrument's pip size. Pip
// value is RiskAmount / stopPips; for JPY-quoted pairs it is additionally
// multiplied by the entry price to convert the quote-currency pip value
// into account-currency terms. The instrument's contract divisor then
// scales pip value to lots.
func Calculate(in Inputs) (Result, error) {
	if in.RiskFraction <= 0 || in.RiskFraction > 1 {
		return Result{}, fmt.Errorf("risk fraction must be in (0, 1], got %v", in.RiskFraction)
	}

	meta, err := market.Instrument(in.Symbol)
	if err != nil {
		return Result{}, err
	}

	stopPips := math.Abs(in.EntryPrice-in.StopLoss) / meta.PipSize
	if stopPips == 0 {
		return Result{}, ErrZeroStopDistance
	}

	riskAmount := in.Balance * in.RiskFraction
	pipValue := riskAmount / stopPips
	if meta.QuoteJPY() {
		pipValue *= in.EntryPrice
	}
	rawLots := pipValue / meta.ContractDivisor

	lots, _ := decimal.NewFromFloat(rawLots).Round(2).Float64()
	if lots > MaxLots {
		lots = MaxLots
	}
	if lots < 0 {
		lots = 0
	}

	return Result{
		Lots:       lots,
		StopPips:   stopPips,
		RiskAmount: riskAmount,
	}, nil
}
