package sim

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/rustyeddy/advisor/market"
)

// SliceSource serves candles from a fixed in-memory slice. The visible
// window ends at End (exclusive), which backtest drivers advance one
// candle at a time to replay history. With AdvanceOnFetch set the window
// advances itself after every Fetch, as if one bar closed per poll.
type SliceSource struct {
	Candles        []market.Candle
	End            int
	AdvanceOnFetch bool
}

func NewSliceSource(candles []market.Candle) *SliceSource {
	return &SliceSource{Candles: candles, End: len(candles)}
}

func (s *SliceSource) Fetch(ctx context.Context, symbol string, tf market.Timeframe, count int) ([]market.Candle, error) {
	if count > market.MaxCandleBatch {
		return nil, market.ErrOutOfRange
	}
	end := s.End
	if end > len(s.Candles) {
		end = len(s.Candles)
	}
	start := end - count
	if start < 0 {
		start = 0
	}
	if s.AdvanceOnFetch && s.End < len(s.Candles) {
		s.End++
	}
	return s.Candles[start:end], nil
}

// GenerateCandles produces a deterministic random-walk candle series for
// the given seed. Prices stay positive and the OHLC relation holds for
// every bar.
func GenerateCandles(seed int64, n int, startPrice float64, tf market.Timeframe) []market.Candle {
	rng := rand.New(rand.NewSource(seed))
	step := barDuration(tf)
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	candles := make([]market.Candle, n)
	price := startPrice
	for i := range candles {
		drift := rng.NormFloat64() * startPrice * 0.0008
		open := price
		close := math.Max(open+drift, startPrice*0.01)
		high := math.Max(open, close) + math.Abs(rng.NormFloat64())*startPrice*0.0003
		low := math.Min(open, close) - math.Abs(rng.NormFloat64())*startPrice*0.0003
		candles[i] = market.Candle{
			Time:   start.Add(time.Duration(i) * step),
			Open:   open,
			High:   high,
			Low:    math.Max(low, startPrice*0.005),
			Close:  close,
			Volume: 100 + rng.Float64()*900,
		}
		price = close
	}
	return candles
}

func barDuration(tf market.Timeframe) time.Duration {
	switch tf {
	case market.M1:
		return time.Minute
	case market.M5:
		return 5 * time.Minute
	case market.M15:
		return 15 * time.Minute
	case market.M30:
		return 30 * time.Minute
	case market.H1:
		return time.Hour
	case market.H4:
		return 4 * time.Hour
	case market.D1:
		return 24 * time.Hour
	case market.W1:
		return 7 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}
