package violin

import (
	"math"
	"slices"
)

// DefaultMargin is how far whiskers extend past the sample extremes.
const DefaultMargin = 0.5

// Summary is the five-number summary of a sample.
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes the five-number summary of sample using linear
// interpolation between order statistics. The sample is not modified.
func Summarize(sample []float64) (Summary, error) {
	if len(sample) == 0 {
		return Summary{}, ErrEmptySample
	}
	for _, x := range sample {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Summary{}, ErrNonFinite
		}
	}

	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	return Summary{
		Min:    sorted[0],
		Q1:     Percentile(sorted, 0.25),
		Median: Percentile(sorted, 0.5),
		Q3:     Percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// Percentile returns the p-quantile (0 <= p <= 1) of an ascending sample,
// interpolating linearly between the order statistics around rank (n-1)p.
// p is clamped to [0, 1]. sorted must be non-empty.
func Percentile(sorted []float64, p float64) float64 {
	p = math.Max(0, math.Min(1, p))

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}

// IQR is the interquartile range Q3 - Q1.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// Whiskers returns the whisker end points, Min - margin and Max + margin.
// The margin is a fixed visual extension, not a statistical fence.
func (s Summary) Whiskers(margin float64) (lo, hi float64) {
	return s.Min - margin, s.Max + margin
}

// Ordered reports whether Min <= Q1 <= Median <= Q3 <= Max.
func (s Summary) Ordered() bool {
	return s.Min <= s.Q1 && s.Q1 <= s.Median && s.Median <= s.Q3 && s.Q3 <= s.Max
}
