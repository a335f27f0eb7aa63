// Package cli implements the violins command-line interface.
//
// Running violins without a subcommand, or "violins all", launches one child
// process per image routine and reports each one's output. The routine
// subcommands render a single image in-process:
//
//	violins anatomy --out images --dpi 150
//	violins construction --gif
//	violins describe patterns --csv stats.csv
//
// Gnuplot previews live in the separate violins-preview command, so this
// one runs without gnuplot installed.
//
// Settings come from defaults, then violins.toml (or --config), then flags.
// Diagnostics are logged to stderr with charmbracelet/log; --verbose enables
// debug output.
package cli
