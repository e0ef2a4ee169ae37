package market

import "time"

// Candle represents one OHLCV (Open, High, Low, Close, Volume) bar.
// Candles are immutable once produced by a CandleSource and are ordered
// by time ascending with no duplicate timestamps.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
