// Package visuals builds the four violin plot explainer figures.
//
// Each routine synthesises its data, runs the estimator and lays the
// result out as a figure.Figure; Generate renders one routine to disk.
package visuals

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/sample"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

// DefaultSeed is the base seed every panel stream derives from.
const DefaultSeed = 42

// ErrUnknown is returned by Lookup for a name that is not a routine.
var ErrUnknown = errors.New("visuals: unknown routine")

// Options are shared by every routine.
type Options struct {
	Seed uint64
	// Bandwidth is the kernel width of ordinary panels. The oversmoothing
	// pitfall uses twice this value.
	Bandwidth float64
}

// Defaults returns the options the published images are made with.
func Defaults() Options {
	return Options{Seed: DefaultSeed, Bandwidth: violin.DefaultBandwidth}
}

func (o Options) bandwidth() float64 {
	if o.Bandwidth <= 0 {
		return violin.DefaultBandwidth
	}
	return o.Bandwidth
}

// generator returns the random stream owned by one panel.
func (o Options) generator(stream uint64) *sample.Generator {
	return sample.New(o.Seed, stream)
}

// Routine is one named figure builder.
type Routine struct {
	Name  string
	Title string
	Build func(Options) (*figure.Figure, error)
}

// Routines lists every routine in the order they are generated.
func Routines() []Routine {
	return []Routine{
		{Name: "anatomy", Title: "Anatomy", Build: Anatomy},
		{Name: "patterns", Title: "Patterns", Build: Patterns},
		{Name: "pitfalls", Title: "Pitfalls", Build: Pitfalls},
		{Name: "construction", Title: "Construction", Build: Construction},
	}
}

// Names returns the routine names in generation order.
func Names() []string {
	rs := Routines()
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// Lookup finds a routine by case-insensitive name.
func Lookup(name string) (Routine, error) {
	for _, r := range Routines() {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Routine{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// Generate builds r and writes its image into dir at dpi.
func Generate(r Routine, o Options, dir string, dpi int) (string, error) {
	f, err := r.Build(o)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", r.Name, err)
	}
	path, err := figure.Save(f, dir, dpi)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", r.Name, err)
	}
	return path, nil
}
