// Package config loads generator settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/HamletTheHamster/violin-visuals/internal/figure"
	"github.com/HamletTheHamster/violin-visuals/internal/visuals"
	"github.com/HamletTheHamster/violin-visuals/internal/violin"
)

// FileName is the config file looked up in the working directory.
const FileName = "violins.toml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable of a run.
type Config struct {
	Output    string  `toml:"output"`
	DPI       int     `toml:"dpi"`
	Seed      uint64  `toml:"seed"`
	Bandwidth float64 `toml:"bandwidth"`
	GIF       GIF     `toml:"gif"`
}

// GIF configures the animated construction output.
type GIF struct {
	// Delay per frame in 100ths of a second.
	Delay int `toml:"delay"`
}

// Default returns the settings the published images are made with.
func Default() Config {
	return Config{
		Output:    "output",
		DPI:       figure.DPI,
		Seed:      visuals.DefaultSeed,
		Bandwidth: violin.DefaultBandwidth,
		GIF:       GIF{Delay: figure.DefaultDelay},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set, so the default file name can be probed silently.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot produce an image.
func (c Config) Validate() error {
	switch {
	case c.Output == "":
		return fmt.Errorf("%w: output directory is empty", ErrInvalid)
	case c.DPI <= 0:
		return fmt.Errorf("%w: dpi %d must be positive", ErrInvalid, c.DPI)
	case !(c.Bandwidth > 0) || math.IsInf(c.Bandwidth, 1):
		return fmt.Errorf("%w: bandwidth %g must be positive and finite", ErrInvalid, c.Bandwidth)
	case c.GIF.Delay < 0:
		return fmt.Errorf("%w: gif delay %d is negative", ErrInvalid, c.GIF.Delay)
	}
	return nil
}

// Options converts the config into routine options.
func (c Config) Options() visuals.Options {
	return visuals.Options{Seed: c.Seed, Bandwidth: c.Bandwidth}
}
