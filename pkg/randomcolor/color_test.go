package randomcolor_test

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murcoder/helperkit/pkg/randomcolor"
)

var (
	hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rgbRe = regexp.MustCompile(`^rgb\((\d{1,3}), (\d{1,3}), (\d{1,3})\)$`)
	hslRe = regexp.MustCompile(`^hsl\((\d{1,3}), (\d{1,3})%, (\d{1,3})%\)$`)
)

func TestHex(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := randomcolor.Hex()
		assert.Regexp(t, hexRe, c)
	}
}

func TestGenerateNilOptions(t *testing.T) {
	assert.Regexp(t, hexRe, randomcolor.Generate(nil))
}

func TestGenerateFormats(t *testing.T) {
	tests := []struct {
		name    string
		format  randomcolor.Format
		pattern *regexp.Regexp
	}{
		{name: "hex", format: randomcolor.HexFormat, pattern: hexRe},
		{name: "rgb", format: randomcolor.RGB, pattern: rgbRe},
		{name: "hsl", format: randomcolor.HSL, pattern: hslRe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				c := randomcolor.Generate(&randomcolor.Options{Format: tt.format})
				assert.Regexp(t, tt.pattern, c)
			}
		})
	}
}

func TestGenerateRGBChannelRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := randomcolor.Generate(&randomcolor.Options{Format: randomcolor.RGB})
		m := rgbRe.FindStringSubmatch(c)
		require.NotNil(t, m, "unexpected rgb format: %s", c)
		for _, ch := range m[1:] {
			v, err := strconv.Atoi(ch)
			require.NoError(t, err)
			assert.LessOrEqual(t, v, 255)
		}
	}
}

// lightness recovers the HSL lightness of a generated hex color.
func lightness(t *testing.T, hex string) float64 {
	t.Helper()

	var r, g, b int
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	require.NoError(t, err)

	max := max(r, g, b)
	min := min(r, g, b)
	return float64(max+min) / 2 / 255
}

func TestGeneratePalettes(t *testing.T) {
	tests := []struct {
		name    string
		palette randomcolor.Palette
		minL    float64
		maxL    float64
	}{
		{name: "light colors stay light", palette: randomcolor.Light, minL: 0.6, maxL: 1.0},
		{name: "dark colors stay dark", palette: randomcolor.Dark, minL: 0.0, maxL: 0.4},
		{name: "pastel colors stay light", palette: randomcolor.Pastel, minL: 0.65, maxL: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				c := randomcolor.Generate(&randomcolor.Options{Palette: tt.palette})
				require.Regexp(t, hexRe, c)

				l := lightness(t, c)
				assert.GreaterOrEqual(t, l, tt.minL, "color %s too dark for palette", c)
				assert.LessOrEqual(t, l, tt.maxL, "color %s too light for palette", c)
			}
		})
	}
}

func TestGenerateConcurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				_ = randomcolor.Hex()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
