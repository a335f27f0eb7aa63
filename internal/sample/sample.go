// Package sample synthesises the reproducible data sets drawn in each panel.
//
// Every panel owns a Generator built from the configured base seed and the
// panel's fixed stream number, so panels never share a random stream and a
// figure is byte-for-byte reproducible between runs.
package sample

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws samples from gonum distributions over one PCG stream.
type Generator struct {
	src rand.Source
}

// New returns a Generator seeded with seed on the given stream.
func New(seed, stream uint64) *Generator {
	return &Generator{src: rand.NewPCG(seed, stream)}
}

// Normal draws n values from N(mu, sigma).
func (g *Generator) Normal(mu, sigma float64, n int) []float64 {
	return draw(distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}, n)
}

// LogNormal draws n values whose logarithm is N(mu, sigma).
func (g *Generator) LogNormal(mu, sigma float64, n int) []float64 {
	return draw(distuv.LogNormal{Mu: mu, Sigma: sigma, Src: g.src}, n)
}

// StudentsT draws n values from a standard Student's t with nu degrees of freedom.
func (g *Generator) StudentsT(nu float64, n int) []float64 {
	return draw(distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu, Src: g.src}, n)
}

// Uniform draws n values from U(lo, hi).
func (g *Generator) Uniform(lo, hi float64, n int) []float64 {
	return draw(distuv.Uniform{Min: lo, Max: hi, Src: g.src}, n)
}

// Choice draws n values from values, picking values[i] with probability
// proportional to weights[i].
func (g *Generator) Choice(values, weights []float64, n int) []float64 {
	c := distuv.NewCategorical(weights, g.src)
	out := make([]float64, n)
	for i := range out {
		out[i] = values[int(c.Rand())]
	}
	return out
}

// Jitter returns n horizontal offsets around center drawn from N(center, sigma).
func (g *Generator) Jitter(center, sigma float64, n int) []float64 {
	return g.Normal(center, sigma, n)
}

// Concat joins samples into one new slice.
func Concat(parts ...[]float64) []float64 {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

type rander interface {
	Rand() float64
}

func draw(d rander, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}
