package violin

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultBandwidth is the kernel width used by every panel unless it
	// illustrates oversmoothing.
	DefaultBandwidth = 0.3

	// DefaultWidth is the half-width a single violin is rescaled to.
	DefaultWidth = 0.2

	// DefaultGridSize is the number of evaluation points per curve.
	DefaultGridSize = 100
)

var (
	ErrEmptySample = errors.New("violin: empty sample")
	ErrEmptyGrid   = errors.New("violin: empty evaluation grid")
	ErrBandwidth   = errors.New("violin: bandwidth must be positive")
	ErrNonFinite   = errors.New("violin: sample contains NaN or Inf")
)

// Shape is a density curve paired with the grid it was evaluated on.
type Shape struct {
	Grid    []float64
	Density []float64
}

// Grid returns n evenly spaced points from lo to hi inclusive.
func Grid(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Density evaluates the unnormalised Gaussian kernel sum of sample at every
// grid point. The result has len(grid) entries, all non-negative.
func Density(sample, grid []float64, bandwidth float64) ([]float64, error) {
	if err := check(sample, grid, bandwidth); err != nil {
		return nil, err
	}

	density := make([]float64, len(grid))
	for i, g := range grid {
		var sum float64
		for _, x := range sample {
			z := (g - x) / bandwidth
			sum += math.Exp(-0.5 * z * z)
		}
		density[i] = sum
	}
	return density, nil
}

// Rescale returns a copy of density divided by its maximum and multiplied by
// width, so the widest point of the drawn violin is exactly width. A curve
// that underflowed to all zeros is returned as zeros.
func Rescale(density []float64, width float64) []float64 {
	out := make([]float64, len(density))
	if len(density) == 0 {
		return out
	}
	copy(out, density)

	peak := floats.Max(out)
	if peak <= 0 {
		for i := range out {
			out[i] = 0
		}
		return out
	}
	floats.Scale(width/peak, out)
	return out
}

// Estimate computes the density of sample over grid and rescales it to width.
func Estimate(sample, grid []float64, bandwidth, width float64) (Shape, error) {
	density, err := Density(sample, grid, bandwidth)
	if err != nil {
		return Shape{}, err
	}

	g := make([]float64, len(grid))
	copy(g, grid)

	return Shape{Grid: g, Density: Rescale(density, width)}, nil
}

// MaxWidth reports the widest half-width of the shape.
func (s Shape) MaxWidth() float64 {
	if len(s.Density) == 0 {
		return 0
	}
	return floats.Max(s.Density)
}

func check(sample, grid []float64, bandwidth float64) error {
	if len(sample) == 0 {
		return ErrEmptySample
	}
	if len(grid) == 0 {
		return ErrEmptyGrid
	}
	if !(bandwidth > 0) || math.IsInf(bandwidth, 1) {
		return ErrBandwidth
	}
	for _, x := range sample {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNonFinite
		}
	}
	return nil
}
