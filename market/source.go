package market

import (
	"context"
	"fmt"
)

// MaxCandleBatch is the largest number of candles a single Fetch may
// request. Exceeding it is a caller error, never silently truncated.
const MaxCandleBatch = 50000

// ErrOutOfRange is returned when a Fetch asks for more candles than
// MaxCandleBatch.
var ErrOutOfRange = fmt.Errorf("candle count exceeds maximum batch of %d", MaxCandleBatch)

// CandleSource supplies ordered candle history for a symbol/timeframe.
// Implementations must return candles sorted by time ascending with no
// duplicates, and must reject count > MaxCandleBatch with ErrOutOfRange.
type CandleSource interface {
	Fetch(ctx context.Context, symbol string, tf Timeframe, count int) ([]Candle, error)
}
