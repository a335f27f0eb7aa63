// Package violin computes the two quantities every violin in this repository
// is drawn from: a Gaussian kernel density curve evaluated on a fixed grid,
// and the five-number summary behind the box-and-whisker overlay.
//
// The density is a shape, not a probability density. Each grid point holds
// the plain sum of unnormalised Gaussian kernels centred on the sample points,
//
//	density[i] = Σ_j exp(-0.5 * ((grid[i] - sample[j]) / bandwidth)^2)
//
// and callers rescale the curve so that its peak equals a fixed display
// half-width (see Rescale). The curve never integrates to one.
//
// Quartiles use linear interpolation between order statistics: for a sorted
// sample of length n the p-th quantile sits at rank h = (n-1)p.
//
//	s, _ := violin.Estimate(sample, violin.Grid(-4, 4, 100), violin.DefaultBandwidth, violin.DefaultWidth)
//	sum, _ := violin.Summarize(sample)
//	lo, hi := sum.Whiskers(violin.DefaultMargin)
package violin
