package indicators

import "github.com/rustyeddy/advisor/market"

// SMA computes a simple moving average of closes over the given period.
// Cells before index period-1 are undefined.
func SMA(candles []market.Candle, period int) Series {
	s := newSeries(len(candles))
	if period <= 0 {
		return s
	}

	sum := 0.0
	for i, c := range candles {
		sum += c.Close
		if i >= period {
			sum -= candles[i-period].Close
		}
		if i >= period-1 {
			s.set(i, sum/float64(period))
		}
	}
	return s
}

// EMA computes an exponential moving average of closes with multiplier
// 2/(period+1). The series is seeded at index period with the simple
// mean of the first period closes and blended recursively from there;
// everything before the seed index is undefined.
func EMA(candles []market.Candle, period int) Series {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return emaScan(closes, period)
}

// emaScan is the shared EMA fold. It carries only the previous EMA value
// forward; no table is mutated in place.
func emaScan(values []float64, period int) Series {
	s := newSeries(len(values))
	if period <= 0 || len(values) <= period {
		return s
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)
	s.set(period, seed)

	mult := 2.0 / float64(period+1)
	prev := seed
	for i := period + 1; i < len(values); i++ {
		ema := values[i]*mult + prev*(1-mult)
		s.set(i, ema)
		prev = ema
	}
	return s
}
