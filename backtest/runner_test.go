package backtest

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/advisor/journal"
	"github.com/rustyeddy/advisor/market"
	"github.com/rustyeddy/advisor/strategy"
)

func flatCandles(n int, price float64) []market.Candle {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	candles := make([]market.Candle, n)
	for i := range candles {
		candles[i] = market.Candle{
			Time:   start.Add(time.Duration(i) * 30 * time.Minute),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 100,
		}
	}
	return candles
}

func TestRunFlatHistoryProducesNoSignals(t *testing.T) {
	params := strategy.DefaultParams()
	params.CandleCount = 100

	sum, err := Run(context.Background(), flatCandles(100, 150.0), params, 100000, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.NotEmpty(t, sum.RunID)
	assert.Equal(t, 99, sum.Cycles, "one cycle per candle after the first")
	assert.Zero(t, sum.Signals)
	assert.Zero(t, sum.Accepted)
	assert.Zero(t, sum.Rejected)
}

func TestRunNeedsAtLeastTwoCandles(t *testing.T) {
	_, err := Run(context.Background(), flatCandles(1, 150.0), strategy.DefaultParams(), 100000, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := Run(ctx, flatCandles(100, 150.0), strategy.DefaultParams(), 100000, nil, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Cycles)
}

func TestRunJournalsSummaryRow(t *testing.T) {
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	outcomesPath := filepath.Join(dir, "outcomes.csv")

	j, err := journal.NewCSV(runsPath, outcomesPath)
	require.NoError(t, err)

	params := strategy.DefaultParams()
	sum, err := Run(context.Background(), flatCandles(60, 150.0), params, 100000, j, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rf, err := os.Open(runsPath)
	require.NoError(t, err)
	defer rf.Close()
	rows, err := csv.NewReader(rf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus the run summary")
	assert.Equal(t, sum.RunID, rows[1][0])
	assert.Equal(t, params.Symbol, rows[1][1])
	assert.Equal(t, "59", rows[1][3])

	of, err := os.Open(outcomesPath)
	require.NoError(t, err)
	defer of.Close()
	rows, err = csv.NewReader(of).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "no signals means no journaled outcomes")
}
