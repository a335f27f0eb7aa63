// Package fit fits a single Gaussian peak to a density curve with
// Levenberg-Marquardt, used to report the dominant mode of a violin.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooFewPoints = errors.New("fit: need at least four points")
	ErrLength       = errors.New("fit: x and y lengths differ")
)

// Peak is A*exp(-(x-Center)^2 / (2*Sigma^2)) + Offset.
type Peak struct {
	Amplitude float64
	Center    float64
	Sigma     float64
	Offset    float64
}

// At evaluates the peak at x.
func (p Peak) At(x float64) float64 {
	return Gaussian(x, p.Amplitude, p.Center, p.Sigma, p.Offset)
}

// FWHM is the full width at half maximum.
func (p Peak) FWHM() float64 {
	return 2 * math.Sqrt(2*math.Ln2) * p.Sigma
}

// Gaussian is the model function.
func Gaussian(
	x, A, mu, sigma, C float64,
) (
	float64,
) {
	z := (x - mu) / sigma
	return A*math.Exp(-0.5*z*z) + C
}

func residuals(
	params, xs, ys []float64,
) (
	[]float64,
) {

	A, mu, sigma, C := params[0], params[1], params[2], params[3]
	r := make([]float64, len(xs))
	for i, x := range xs {
		r[i] = ys[i] - Gaussian(x, A, mu, sigma, C)
	}
	return r
}

// Guess derives starting parameters from the curve: the tallest point for
// the centre and the half-maximum crossings for the width.
func Guess(xs, ys []float64) []float64 {
	lo := floats.Min(ys)
	top := floats.MaxIdx(ys)
	A := ys[top] - lo
	half := lo + A/2

	left, right := top, top
	for left > 0 && ys[left] > half {
		left--
	}
	for right < len(ys)-1 && ys[right] > half {
		right++
	}
	sigma := (xs[right] - xs[left]) / (2 * math.Sqrt(2*math.Ln2))
	if sigma <= 0 {
		sigma = (xs[len(xs)-1] - xs[0]) / 4
	}
	return []float64{A, xs[top], sigma, lo}
}

// Fit fits a Gaussian peak to (xs, ys).
func Fit(xs, ys []float64) (Peak, error) {
	if len(xs) != len(ys) {
		return Peak{}, ErrLength
	}
	if len(xs) < 4 {
		return Peak{}, ErrTooFewPoints
	}

	// Define the residual function
	resFunc := func(dst, params []float64) {
		r := residuals(params, xs, ys)
		copy(dst, r)
	}

	nj := &lm.NumJac{Func: resFunc}

	problem := lm.LMProblem{
		Dim:        4,
		Size:       len(xs),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: Guess(xs, ys),
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	result, err := lm.LM(problem, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		return Peak{}, fmt.Errorf("fit: optimization failed: %w", err)
	}

	x := result.X
	return Peak{
		Amplitude: x[0],
		Center:    x[1],
		Sigma:     math.Abs(x[2]),
		Offset:    x[3],
	}, nil
}
