package broker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/advisor/broker"
)

func TestNewOrderRequestRoundsToSymbolPrecision(t *testing.T) {
	req, err := broker.NewOrderRequest(
		"USDJPY", broker.KindBuyStop,
		1.23456, 150.123456, 149.98765, 151.55555, "test",
	)
	require.NoError(t, err)

	// JPY-quoted pairs round prices to 3 decimals, volume to 2.
	assert.Equal(t, 1.23, req.Volume)
	assert.Equal(t, 150.123, req.StopPrice)
	assert.Equal(t, 149.988, req.StopLoss)
	assert.Equal(t, 151.556, req.TakeProfit)
}

func TestNewOrderRequestFourDecimalPairs(t *testing.T) {
	req, err := broker.NewOrderRequest(
		"EURUSD", broker.KindSellStop,
		0.5, 1.085456, 1.090111, 1.078999, "test",
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0855, req.StopPrice)
	assert.Equal(t, 1.0901, req.StopLoss)
	assert.Equal(t, 1.079, req.TakeProfit)
}

func TestNewOrderRequestRejectsNonPositiveStopPrice(t *testing.T) {
	_, err := broker.NewOrderRequest("EURUSD", broker.KindBuyStop, 1, 0, 1.08, 1.10, "")
	assert.Error(t, err)

	_, err = broker.NewOrderRequest("EURUSD", broker.KindBuyStop, 1, -1.1, 1.08, 1.10, "")
	assert.Error(t, err)
}

func TestNewOrderRequestRejectsBadKind(t *testing.T) {
	_, err := broker.NewOrderRequest("EURUSD", broker.OrderKind(0), 1, 1.09, 1.08, 1.10, "")
	assert.Error(t, err)
}

func TestNewOrderRequestRejectsUnknownSymbol(t *testing.T) {
	_, err := broker.NewOrderRequest("XAUXAG", broker.KindBuyStop, 1, 1.09, 1.08, 1.10, "")
	assert.Error(t, err)
}

func TestNewOrderRequestRejectsZeroVolume(t *testing.T) {
	_, err := broker.NewOrderRequest("EURUSD", broker.KindBuyStop, 0.001, 1.09, 1.08, 1.10, "")
	assert.Error(t, err, "0.001 lots rounds to zero volume")
}

func TestReasonCodeClassification(t *testing.T) {
	assert.True(t, broker.ReasonDone.Accepted())
	assert.True(t, broker.ReasonPendingAccepted.Accepted())
	assert.True(t, broker.ReasonCheckOK.Accepted())
	assert.False(t, broker.ReasonAlgoDisabled.Accepted())

	assert.True(t, broker.ReasonInvalidPrice.Recoverable())
	assert.True(t, broker.ReasonInvalidStops.Recoverable())
	assert.True(t, broker.ReasonInvalidVolume.Recoverable())
	assert.False(t, broker.ReasonAlgoDisabled.Recoverable())
	assert.False(t, broker.ReasonCode(12345).Recoverable())

	assert.Equal(t, "algo-trading-disabled", broker.ReasonAlgoDisabled.String())
	assert.Equal(t, "unknown(12345)", broker.ReasonCode(12345).String())
}
