package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateUSDJPYScenario(t *testing.T) {
	// 1% of 100k at a 30-pip stop on USDJPY: pip value 33.33 converted
	// at 150 gives 5000, which is exactly 5.00 lots.
	res, err := Calculate(Inputs{
		Balance:      100000,
		RiskFraction: 0.01,
		EntryPrice:   150.00,
		StopLoss:     149.70,
		Symbol:       "USDJPY",
	})
	require.NoError(t, err)

	assert.InDelta(t, 30.0, res.StopPips, 1e-9)
	assert.Equal(t, 1000.0, res.RiskAmount)
	assert.Equal(t, 5.0, res.Lots)
}

func TestCalculateNonJPYPair(t *testing.T) {
	// 50-pip stop on EURUSD: 1000 / 50 = 20 pip value, / 10 = 2 lots.
	res, err := Calculate(Inputs{
		Balance:      100000,
		RiskFraction: 0.01,
		EntryPrice:   1.1000,
		StopLoss:     1.0950,
		Symbol:       "EURUSD",
	})
	require.NoError(t, err)

	assert.InDelta(t, 50.0, res.StopPips, 1e-9)
	assert.Equal(t, 2.0, res.Lots)
}

func TestCalculateCapsAtMaxLots(t *testing.T) {
	// A 2-pip stop risks far more per pip than 9.99 lots can carry.
	res, err := Calculate(Inputs{
		Balance:      1000000,
		RiskFraction: 0.05,
		EntryPrice:   1.1000,
		StopLoss:     1.0998,
		Symbol:       "EURUSD",
	})
	require.NoError(t, err)
	assert.Equal(t, MaxLots, res.Lots)
}

func TestCalculateZeroStopDistance(t *testing.T) {
	_, err := Calculate(Inputs{
		Balance:      100000,
		RiskFraction: 0.01,
		EntryPrice:   150.00,
		StopLoss:     150.00,
		Symbol:       "USDJPY",
	})
	assert.ErrorIs(t, err, ErrZeroStopDistance)
}

func TestCalculateUnknownSymbol(t *testing.T) {
	_, err := Calculate(Inputs{
		Balance:      100000,
		RiskFraction: 0.01,
		EntryPrice:   1900,
		StopLoss:     1890,
		Symbol:       "XAUUSD",
	})
	assert.Error(t, err, "symbols outside the lookup table must fail, not default")
}

func TestCalculateRiskFractionBounds(t *testing.T) {
	for _, f := range []float64{0, -0.1, 1.01} {
		_, err := Calculate(Inputs{
			Balance:      100000,
			RiskFraction: f,
			EntryPrice:   1.10,
			StopLoss:     1.09,
			Symbol:       "EURUSD",
		})
		assert.Error(t, err, "risk fraction %v", f)
	}
}

func TestCalculateTinyBalanceRoundsToZero(t *testing.T) {
	res, err := Calculate(Inputs{
		Balance:      1,
		RiskFraction: 0.01,
		EntryPrice:   1.1000,
		StopLoss:     1.0950,
		Symbol:       "EURUSD",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Lots)
}
