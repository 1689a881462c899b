// Package randomcolor generates random colors for placeholder avatars, chart
// series, tag badges and similar UI needs where any visually distinct color
// will do.
//
// A color is produced from a *palette* (the region of the color space to draw
// from) and rendered in a *format* (hex, rgb() or hsl() notation). The
// generator never returns an error: it always falls back to sensible
// defaults.
//
// # Usage
//
// Import the package:
//
//	import "github.com/murcoder/helperkit/pkg/randomcolor"
//
// Generate a random hex color (e.g. "#3fa7c2"):
//
//	c := randomcolor.Hex()
//
// Customise the output by providing an Options struct:
//
//	c := randomcolor.Generate(&randomcolor.Options{
//	    Palette: randomcolor.Pastel,
//	    Format:  randomcolor.RGB, // "rgb(233, 196, 212)"
//	})
//
// # Options
//
//   - Palette picks the region of the color space (Any, Light, Dark, Pastel).
//   - Format picks the output notation (HexFormat, RGB, HSL).
//
// The package-level random source is guarded by a mutex, so all helpers are
// safe for concurrent use.
package randomcolor
