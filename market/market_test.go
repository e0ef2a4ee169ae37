package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeframeGatewayCodes(t *testing.T) {
	tests := []struct {
		tf   Timeframe
		code int
	}{
		{M1, 1},
		{M5, 5},
		{M15, 15},
		{M30, 30},
		{H1, 16385},
		{H4, 16388},
		{D1, 16408},
		{W1, 32769},
		{MN1, 49153},
	}
	for _, tt := range tests {
		code, err := tt.tf.GatewayCode()
		require.NoError(t, err)
		assert.Equal(t, tt.code, code)
	}

	_, err := Timeframe("M7").GatewayCode()
	assert.Error(t, err)
	assert.False(t, Timeframe("M7").Valid())
}

func TestInstrumentLookup(t *testing.T) {
	meta, err := Instrument("USDJPY")
	require.NoError(t, err)
	assert.Equal(t, 0.01, meta.PipSize)
	assert.Equal(t, 1000.0, meta.ContractDivisor)
	assert.Equal(t, int32(3), meta.PricePrecision)
	assert.True(t, meta.QuoteJPY())

	meta, err = Instrument("EURUSD")
	require.NoError(t, err)
	assert.Equal(t, 0.0001, meta.PipSize)
	assert.Equal(t, 10.0, meta.ContractDivisor)
	assert.Equal(t, int32(4), meta.PricePrecision)
	assert.False(t, meta.QuoteJPY())
}

func TestInstrumentStripsBrokerSuffix(t *testing.T) {
	meta, err := Instrument("USDJPY.r")
	require.NoError(t, err)
	assert.Equal(t, "USDJPY", meta.Name)
}

func TestInstrumentUnknownIsError(t *testing.T) {
	_, err := Instrument("BTCUSD")
	assert.Error(t, err)
}

func TestRegisterInstrument(t *testing.T) {
	RegisterInstrument(InstrumentMeta{
		Name:            "AUDUSD",
		BaseCurrency:    "AUD",
		QuoteCurrency:   "USD",
		PipSize:         0.0001,
		ContractDivisor: 10,
		PricePrecision:  4,
	})
	meta, err := Instrument("AUDUSD")
	require.NoError(t, err)
	assert.Equal(t, "AUD", meta.BaseCurrency)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "time;open;high;low;close;volume\n" +
		"1704067200;150.00;150.50;149.80;150.20;1200\n" +
		"1704069000;150.20;150.60;150.00;150.40;900\n" +
		"garbage line\n" +
		"1704069000;151.00;151.10;150.90;151.00;100\n" + // duplicate ts, dropped
		"1704070800;150.40;150.70;150.10;150.30;1100\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	candles, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, candles, 3)

	assert.Equal(t, 150.0, candles[0].Open)
	assert.Equal(t, 150.2, candles[0].Close)
	assert.Equal(t, 1200.0, candles[0].Volume)
	assert.True(t, candles[0].Time.Before(candles[1].Time))
	assert.True(t, candles[1].Time.Before(candles[2].Time))
}

func TestLoadCSVDatetimeFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "2025-01-06 00:00:00;1.0850;1.0860;1.0840;1.0855;500\n" +
		"2025-01-06 00:30:00;1.0855;1.0865;1.0850;1.0860;450\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	candles, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, candles, 2)
}

func TestLoadCSVEmptyFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("time;o;h;l;c;v\n"), 0644))

	_, err := LoadCSV(path)
	assert.Error(t, err)
}
