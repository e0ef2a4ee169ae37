package market

import "fmt"

// InstrumentMeta carries the per-symbol constants the sizing and order
// pipeline depend on. There is deliberately no formula fallback: symbols
// missing from the table must be added explicitly.
type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string

	// PipSize is the price increment of one pip: 0.01 for JPY-quoted
	// pairs, 0.0001 for the rest.
	PipSize float64

	// ContractDivisor scales pip value to lots: 1000 for JPY-quoted
	// pairs, 10 otherwise.
	ContractDivisor float64

	// PricePrecision is the decimal precision orders are rounded to:
	// 3 for JPY-quoted pairs, 4 otherwise.
	PricePrecision int32
}

// QuoteJPY reports whether the instrument is quoted in Japanese yen,
// which changes pip size and pip-value conversion.
func (m InstrumentMeta) QuoteJPY() bool {
	return m.QuoteCurrency == "JPY"
}

var instruments = map[string]InstrumentMeta{
	"EURUSD": {
		Name:            "EURUSD",
		BaseCurrency:    "EUR",
		QuoteCurrency:   "USD",
		PipSize:         0.0001,
		ContractDivisor: 10,
		PricePrecision:  4,
	},
	"GBPUSD": {
		Name:            "GBPUSD",
		BaseCurrency:    "GBP",
		QuoteCurrency:   "USD",
		PipSize:         0.0001,
		ContractDivisor: 10,
		PricePrecision:  4,
	},
	"USDCAD": {
		Name:            "USDCAD",
		BaseCurrency:    "USD",
		QuoteCurrency:   "CAD",
		PipSize:         0.0001,
		ContractDivisor: 10,
		PricePrecision:  4,
	},
	"USDJPY": {
		Name:            "USDJPY",
		BaseCurrency:    "USD",
		QuoteCurrency:   "JPY",
		PipSize:         0.01,
		ContractDivisor: 1000,
		PricePrecision:  3,
	},
	"EURJPY": {
		Name:            "EURJPY",
		BaseCurrency:    "EUR",
		QuoteCurrency:   "JPY",
		PipSize:         0.01,
		ContractDivisor: 1000,
		PricePrecision:  3,
	},
}

// Instrument looks up the metadata for symbol. Broker suffixes such as
// "EURUSD.r" are stripped before the lookup.
func Instrument(symbol string) (InstrumentMeta, error) {
	name := symbol
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			name = name[:i]
			break
		}
	}
	meta, ok := instruments[name]
	if !ok {
		return InstrumentMeta{}, fmt.Errorf("unknown instrument %q: add it to market.RegisterInstrument", symbol)
	}
	return meta, nil
}

// RegisterInstrument adds or replaces a symbol's metadata. Intended for
// callers trading symbols outside the built-in table.
func RegisterInstrument(meta InstrumentMeta) {
	instruments[meta.Name] = meta
}
