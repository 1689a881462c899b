package randomcolor

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Format selects the output notation for a generated color.
type Format int

// Output formats.
const (
	HexFormat Format = iota // "#3fa7c2"
	RGB                     // "rgb(63, 167, 194)"
	HSL                     // "hsl(197, 51%, 50%)"
)

// Palette selects the region of the color space to draw from.
type Palette int

// Palettes.
const (
	Any    Palette = iota // uniform over the full 24-bit RGB space
	Light                 // high lightness, readable on dark backgrounds
	Dark                  // low lightness, readable on light backgrounds
	Pastel                // desaturated, high lightness
)

// Options configures color generation. The zero value (and nil) produce a
// uniformly random color in hex notation.
type Options struct {
	Format  Format
	Palette Palette
}

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// Generate returns a random color according to opts. A nil opts is treated
// as the zero Options.
func Generate(opts *Options) string {
	if opts == nil {
		opts = &Options{}
	}

	mu.Lock()
	var h, s, l float64
	switch opts.Palette {
	case Light:
		h, s, l = rnd.Float64()*360, 0.4+rnd.Float64()*0.5, 0.7+rnd.Float64()*0.2
	case Dark:
		h, s, l = rnd.Float64()*360, 0.4+rnd.Float64()*0.5, 0.1+rnd.Float64()*0.2
	case Pastel:
		h, s, l = rnd.Float64()*360, 0.25+rnd.Float64()*0.2, 0.75+rnd.Float64()*0.15
	default:
		// Uniform over all 24-bit colors, like picking three random bytes.
		r8, g8, b8 := uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256))
		mu.Unlock()
		return render(opts.Format, r8, g8, b8)
	}
	mu.Unlock()

	r8, g8, b8 := hslToRGB(h, s, l)
	return render(opts.Format, r8, g8, b8)
}

// Hex returns a uniformly random color in hex notation, e.g. "#a3f21b".
func Hex() string {
	return Generate(nil)
}

func render(f Format, r, g, b uint8) string {
	switch f {
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case HSL:
		h, s, l := rgbToHSL(r, g, b)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
	default:
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
}

// hslToRGB converts h in [0,360), s and l in [0,1] to 8-bit RGB channels.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

// rgbToHSL converts 8-bit RGB channels to h in [0,360), s and l in [0,1].
func rgbToHSL(r8, g8, b8 uint8) (float64, float64, float64) {
	r, g, b := float64(r8)/255, float64(g8)/255, float64(b8)/255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return 0, 0, l // achromatic
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, l
}
