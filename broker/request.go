package broker

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/advisor/market"
)

// OrderKind tags the two supported pending-stop order variants.
type OrderKind int

const (
	// KindBuyStop triggers a buy once price rises to the stop price.
	KindBuyStop OrderKind = iota + 1

	// KindSellStop triggers a sell once price falls to the stop price.
	KindSellStop
)

func (k OrderKind) String() string {
	switch k {
	case KindBuyStop:
		return "BUY_STOP"
	case KindSellStop:
		return "SELL_STOP"
	default:
		return fmt.Sprintf("OrderKind(%d)", int(k))
	}
}

// OrderRequest is a fully-formed pending-stop order. Build one with
// NewOrderRequest, which rounds prices and volume to the symbol's
// precision exactly once; nothing downstream re-rounds.
//
// Wire shape expected by the gateway: symbol, volume in 2-decimal lots,
// order kind, stop price, stop-loss price, take-profit price,
// time-in-force good-till-cancel, fill policy return-on-pending, and a
// free-text comment.
type OrderRequest struct {
	Symbol     string
	Kind       OrderKind
	Volume     float64
	StopPrice  float64
	StopLoss   float64
	TakeProfit float64
	Comment    string
}

// NewOrderRequest validates and constructs a pending-stop order,
// rounding the price fields to the instrument's precision and the
// volume to 2-decimal lots. This is the single rounding boundary of the
// pipeline.
func NewOrderRequest(symbol string, kind OrderKind, volume, stopPrice, stopLoss, takeProfit float64, comment string) (OrderRequest, error) {
	if kind != KindBuyStop && kind != KindSellStop {
		return OrderRequest{}, fmt.Errorf("unsupported order kind %v", kind)
	}

	meta, err := market.Instrument(symbol)
	if err != nil {
		return OrderRequest{}, err
	}

	req := OrderRequest{
		Symbol:     symbol,
		Kind:       kind,
		Volume:     roundTo(volume, 2),
		StopPrice:  roundTo(stopPrice, meta.PricePrecision),
		StopLoss:   roundTo(stopLoss, meta.PricePrecision),
		TakeProfit: roundTo(takeProfit, meta.PricePrecision),
		Comment:    comment,
	}

	if req.StopPrice <= 0 {
		return OrderRequest{}, fmt.Errorf("stop price must be positive for a pending-stop order, got %v", req.StopPrice)
	}
	if req.Volume <= 0 {
		return OrderRequest{}, fmt.Errorf("volume must be positive, got %v", req.Volume)
	}
	return req, nil
}

// roundTo rounds half away from zero at the given decimal precision.
// decimal avoids the float64 representation artifacts that plain
// math.Round(x*10^p)/10^p introduces on prices like 149.70.
func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
