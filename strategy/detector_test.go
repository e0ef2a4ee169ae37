package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/advisor/indicators"
	"github.com/rustyeddy/advisor/market"
)

// frameWith builds a two-candle frame with the given indicator cells on
// the last row (and prevRSI on the row before).
func frameWith(prevRSI, curRSI, macd, sigLine, hist float64, defined bool) *indicators.Frame {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	candles := []market.Candle{
		{Time: start, Open: 150, High: 150.5, Low: 149.5, Close: 150, Volume: 100},
		{Time: start.Add(30 * time.Minute), Open: 150, High: 150.6, Low: 149.8, Close: 150.2, Volume: 100},
	}
	def := []bool{defined, defined}
	return &indicators.Frame{
		Candles:   candles,
		RSI:       indicators.FromValues([]float64{prevRSI, curRSI}, def),
		MACD:      indicators.FromValues([]float64{0, macd}, def),
		Signal:    indicators.FromValues([]float64{0, sigLine}, def),
		Histogram: indicators.FromValues([]float64{0, hist}, def),
		ATR:       indicators.FromValues([]float64{0.3, 0.3}, def),
	}
}

func TestDetectBuyOnOversoldRecross(t *testing.T) {
	// RSI 28 -> 32 with MACD above its signal line and a positive
	// histogram is the canonical buy.
	frame := frameWith(28, 32, 0.15, 0.10, 0.05, true)

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalBuy, sig.Kind)
	assert.Equal(t, 1, sig.Index)
}

func TestDetectBuyRequiresPositiveHistogram(t *testing.T) {
	frame := frameWith(28, 32, 0.15, 0.10, -0.05, true)

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, sig.Kind)
}

func TestDetectBuyRequiresRecrossNotLevel(t *testing.T) {
	// RSI already above 30 on the previous candle: no recross, no buy.
	frame := frameWith(31, 35, 0.15, 0.10, 0.05, true)

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, sig.Kind)
}

func TestDetectSellOnOverboughtRecross(t *testing.T) {
	frame := frameWith(74, 66, -0.15, -0.10, -0.05, true)

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalSell, sig.Kind)
}

func TestDetectSellRequiresMACDBelowSignal(t *testing.T) {
	frame := frameWith(74, 66, -0.05, -0.10, -0.05, true)

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, sig.Kind)
}

func TestDetectUndefinedCellsMeanNoSignal(t *testing.T) {
	frame := frameWith(28, 32, 0.15, 0.10, 0.05, false)

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, sig.Kind)
}

func TestDetectSingleCandleFrame(t *testing.T) {
	frame := frameWith(28, 32, 0.15, 0.10, 0.05, true)
	frame.Candles = frame.Candles[:1]

	sig, err := Detect(frame)
	require.NoError(t, err)
	assert.Equal(t, SignalNone, sig.Kind)
}
