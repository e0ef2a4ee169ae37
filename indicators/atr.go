package indicators

import (
	"math"

	"github.com/rustyeddy/advisor/market"
)

// ATR computes the Average True Range as a rolling mean over the
// trailing period true ranges. True range needs a previous close, so the
// first period cells are undefined.
func ATR(candles []market.Candle, period int) Series {
	s := newSeries(len(candles))
	if period <= 0 || len(candles) <= period {
		return s
	}

	sum := 0.0
	for i := 1; i < len(candles); i++ {
		sum += trueRange(candles[i], candles[i-1])
		if i > period {
			sum -= trueRange(candles[i-period], candles[i-period-1])
		}
		if i >= period {
			s.set(i, sum/float64(period))
		}
	}
	return s
}

// trueRange is the largest of high-low, |high-prevClose| and
// |low-prevClose|.
func trueRange(current, previous market.Candle) float64 {
	highLow := current.High - current.Low
	highClose := math.Abs(current.High - previous.Close)
	lowClose := math.Abs(current.Low - previous.Close)
	return math.Max(highLow, math.Max(highClose, lowClose))
}
