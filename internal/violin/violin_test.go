package violin

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensitySinglePoint(t *testing.T) {
	d, err := Density([]float64{0}, []float64{-1, 0, 1}, 1)
	require.NoError(t, err)

	e := math.Exp(-0.5)
	assert.InDeltaSlice(t, []float64{e, 1, e}, d, 1e-12)

	const w = 0.2
	assert.InDeltaSlice(t, []float64{w * e, w, w * e}, Rescale(d, w), 1e-12)
}

func TestDensityLengthAndSign(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{1, 2, 15, 200} {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = rng.NormFloat64() * 3
		}
		for _, grid := range [][]float64{
			{0},
			Grid(-4, 4, 100),
			Grid(50, 60, 7),
		} {
			d, err := Density(sample, grid, DefaultBandwidth)
			require.NoError(t, err)
			require.Len(t, d, len(grid))
			for _, v := range d {
				assert.GreaterOrEqual(t, v, 0.0)
			}
		}
	}
}

func TestRescaleMaximum(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	tests := []struct {
		name      string
		n         int
		bandwidth float64
		width     float64
	}{
		{"single point", 1, 0.3, 0.2},
		{"small sample", 12, 0.3, 0.2},
		{"oversmoothed", 100, 0.6, 0.2},
		{"many groups width", 30, 0.3, 0.15},
		{"anatomy width", 200, 0.1, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := make([]float64, tt.n)
			for i := range sample {
				sample[i] = rng.NormFloat64()
			}
			s, err := Estimate(sample, Grid(-4, 4, DefaultGridSize), tt.bandwidth, tt.width)
			require.NoError(t, err)
			assert.InDelta(t, tt.width, s.MaxWidth(), 1e-12)
		})
	}
}

func TestRescaleUnderflow(t *testing.T) {
	d, err := Density([]float64{0}, []float64{1e6, 2e6}, 0.3)
	require.NoError(t, err)

	out := Rescale(d, 0.2)
	assert.Equal(t, []float64{0, 0}, out)
}

func TestRescaleDoesNotMutate(t *testing.T) {
	d := []float64{1, 4, 2}
	Rescale(d, 1)
	assert.Equal(t, []float64{1, 4, 2}, d)
}

func TestDensityPreconditions(t *testing.T) {
	tests := []struct {
		name      string
		sample    []float64
		grid      []float64
		bandwidth float64
		want      error
	}{
		{"empty sample", nil, []float64{0}, 0.3, ErrEmptySample},
		{"empty grid", []float64{1}, nil, 0.3, ErrEmptyGrid},
		{"zero bandwidth", []float64{1}, []float64{0}, 0, ErrBandwidth},
		{"negative bandwidth", []float64{1}, []float64{0}, -1, ErrBandwidth},
		{"nan bandwidth", []float64{1}, []float64{0}, math.NaN(), ErrBandwidth},
		{"nan sample", []float64{math.NaN()}, []float64{0}, 0.3, ErrNonFinite},
		{"inf sample", []float64{math.Inf(1)}, []float64{0}, 0.3, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Density(tt.sample, tt.grid, tt.bandwidth)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGrid(t *testing.T) {
	assert.Nil(t, Grid(0, 1, 0))
	assert.Equal(t, []float64{2}, Grid(2, 5, 1))

	g := Grid(-3, 3, 7)
	assert.InDeltaSlice(t, []float64{-3, -2, -1, 0, 1, 2, 3}, g, 1e-12)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
		want   Summary
	}{
		{"one to five", []float64{1, 2, 3, 4, 5}, Summary{1, 2, 3, 4, 5}},
		{"unordered input", []float64{5, 3, 1, 4, 2}, Summary{1, 2, 3, 4, 5}},
		{"symmetric", []float64{-2, -1, 0, 1, 2}, Summary{-2, -1, 0, 1, 2}},
		{"single value", []float64{7}, Summary{7, 7, 7, 7, 7}},
		{"interpolated", []float64{1, 2, 3, 4}, Summary{1, 1.75, 2.5, 3.25, 4}},
		{"two values", []float64{0, 10}, Summary{0, 2.5, 5, 7.5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.sample)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Min, got.Min, 1e-12)
			assert.InDelta(t, tt.want.Q1, got.Q1, 1e-12)
			assert.InDelta(t, tt.want.Median, got.Median, 1e-12)
			assert.InDelta(t, tt.want.Q3, got.Q3, 1e-12)
			assert.InDelta(t, tt.want.Max, got.Max, 1e-12)
		})
	}
}

func TestSummarizeSymmetry(t *testing.T) {
	got, err := Summarize([]float64{-2, -1, 0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Median)
	assert.InDelta(t, got.Median-got.Q1, got.Q3-got.Median, 1e-12)
}

func TestSummarizeOrdered(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(60)
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = rng.ExpFloat64() - rng.NormFloat64()*4
		}
		s, err := Summarize(sample)
		require.NoError(t, err)
		assert.True(t, s.Ordered(), "trial %d: %+v", trial, s)
	}
}

func TestSummarizeDoesNotMutate(t *testing.T) {
	sample := []float64{3, 1, 2}
	_, err := Summarize(sample)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, sample)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestWhiskers(t *testing.T) {
	s := Summary{Min: -1, Q1: 0, Median: 0.5, Q3: 1, Max: 2}

	lo, hi := s.Whiskers(DefaultMargin)
	assert.Equal(t, -1.5, lo)
	assert.Equal(t, 2.5, hi)

	lo, hi = s.Whiskers(0.8)
	assert.InDelta(t, -1.8, lo, 1e-12)
	assert.InDelta(t, 2.8, hi, 1e-12)
	assert.Equal(t, 1.0, s.IQR())
}

func TestPercentileClamp(t *testing.T) {
	sorted := []float64{1, 2, 3}
	assert.Equal(t, 1.0, Percentile(sorted, -0.5))
	assert.Equal(t, 3.0, Percentile(sorted, 2))
	assert.Equal(t, 3.0, Percentile(sorted, 1))
}
