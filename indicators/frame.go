package indicators

import "github.com/rustyeddy/advisor/market"

// Config fixes the indicator periods for one strategy instance.
type Config struct {
	RSIPeriod  int `json:"rsi_period" yaml:"rsi_period"`
	MACDFast   int `json:"macd_fast" yaml:"macd_fast"`
	MACDSlow   int `json:"macd_slow" yaml:"macd_slow"`
	MACDSignal int `json:"macd_signal" yaml:"macd_signal"`
	ATRPeriod  int `json:"atr_period" yaml:"atr_period"`
}

// DefaultConfig returns the standard RSI(14) / MACD(12,26,9) / ATR(14)
// parameter set.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:  14,
		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,
		ATRPeriod:  14,
	}
}

// Frame is one cycle's indicator table: every series is aligned 1:1 with
// Candles. A Frame is built once per cycle from the full candle sequence
// and never partially updated.
type Frame struct {
	Candles   []market.Candle
	RSI       Series
	MACD      Series
	Signal    Series
	Histogram Series
	ATR       Series
}

// BuildFrame derives all configured indicators from candles. A sequence
// shorter than any lookback still yields a full-length frame with the
// unavailable range undefined; it never fails and never fabricates
// zeros.
func BuildFrame(candles []market.Candle, cfg Config) *Frame {
	macd := MACD(candles, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	return &Frame{
		Candles:   candles,
		RSI:       RSI(candles, cfg.RSIPeriod),
		MACD:      macd.MACD,
		Signal:    macd.Signal,
		Histogram: macd.Histogram,
		ATR:       ATR(candles, cfg.ATRPeriod),
	}
}

// Len returns the number of candles the frame was built from.
func (f *Frame) Len() int { return len(f.Candles) }
