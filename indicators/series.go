// Package indicators provides technical analysis indicators computed as
// forward scans over a candle sequence. Every indicator returns a Series
// aligned 1:1 with its input; cells inside the warm-up window are
// explicitly undefined, never zero, so downstream code cannot mistake a
// warm-up cell for a real value.
package indicators

// Series holds per-candle indicator values. Use At or DefinedAt rather
// than reading values positionally; a cell may exist but be undefined.
type Series struct {
	values  []float64
	defined []bool
}

func newSeries(n int) Series {
	return Series{
		values:  make([]float64, n),
		defined: make([]bool, n),
	}
}

// FromValues builds a Series from parallel value/defined slices, for
// callers sourcing indicator values outside this package. The slices
// must be the same length.
func FromValues(values []float64, defined []bool) Series {
	if len(values) != len(defined) {
		panic("indicators: FromValues slices must be the same length")
	}
	return Series{values: values, defined: defined}
}

// Len returns the number of cells, equal to the candle count the series
// was computed from.
func (s Series) Len() int { return len(s.values) }

// At returns the value at index i and whether it is defined. Reading an
// undefined cell yields (0, false); the zero is not a valid value.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s.values) || !s.defined[i] {
		return 0, false
	}
	return s.values[i], true
}

// DefinedAt reports whether the cell at index i holds a computed value.
func (s Series) DefinedAt(i int) bool {
	return i >= 0 && i < len(s.defined) && s.defined[i]
}

func (s *Series) set(i int, v float64) {
	s.values[i] = v
	s.defined[i] = true
}
