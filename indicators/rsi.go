package indicators

import "github.com/rustyeddy/advisor/market"

// RSI computes the Relative Strength Index over closes using Wilder's
// smoothing. A cell is undefined until period prior closes exist; defined
// values always lie in [0, 100].
func RSI(candles []market.Candle, period int) Series {
	s := newSeries(len(candles))
	if period <= 0 || len(candles) <= period {
		return s
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := candles[i].Close - candles[i-1].Close
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	s.set(period, rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(candles); i++ {
		delta := candles[i].Close - candles[i-1].Close
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		s.set(i, rsiValue(avgGain, avgLoss))
	}
	return s
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
