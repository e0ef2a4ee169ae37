package indicators

import "github.com/rustyeddy/advisor/market"

// MACDResult bundles the MACD line, its signal line, and the histogram
// (MACD minus signal). The three series are aligned with the input
// candles; each cell is defined only where its inputs are.
type MACDResult struct {
	MACD      Series
	Signal    Series
	Histogram Series
}

// MACD computes the Moving Average Convergence-Divergence: fast EMA
// minus slow EMA, a signal-line EMA of that difference, and the
// histogram. The signal line warms up over the defined portion of the
// MACD line, so it becomes defined slowPeriod+signalPeriod candles in.
func MACD(candles []market.Candle, fastPeriod, slowPeriod, signalPeriod int) MACDResult {
	n := len(candles)
	fast := EMA(candles, fastPeriod)
	slow := EMA(candles, slowPeriod)

	macd := newSeries(n)
	first := -1
	for i := 0; i < n; i++ {
		f, okf := fast.At(i)
		s, oks := slow.At(i)
		if !okf || !oks {
			continue
		}
		macd.set(i, f-s)
		if first < 0 {
			first = i
		}
	}

	signal := newSeries(n)
	hist := newSeries(n)
	if first >= 0 {
		compact := macd.values[first:]
		sigCompact := emaScan(compact, signalPeriod)
		for j := 0; j < len(compact); j++ {
			v, ok := sigCompact.At(j)
			if !ok {
				continue
			}
			i := first + j
			signal.set(i, v)
			hist.set(i, macd.values[i]-v)
		}
	}

	return MACDResult{MACD: macd, Signal: signal, Histogram: hist}
}
