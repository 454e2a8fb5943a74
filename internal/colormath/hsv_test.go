package colormath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  HSV
	}{
		{name: "black", color: RGB{}, want: HSV{}},
		{name: "white", color: RGB{R: 255, G: 255, B: 255}, want: HSV{V: 1}},
		{name: "gray", color: RGB{R: 128, G: 128, B: 128}, want: HSV{V: 128.0 / 255}},
		{name: "red", color: RGB{R: 255}, want: HSV{H: 0, S: 1, V: 1}},
		{name: "green", color: RGB{G: 255}, want: HSV{H: 120, S: 1, V: 1}},
		{name: "blue", color: RGB{B: 255}, want: HSV{H: 240, S: 1, V: 1}},
		{name: "magenta", color: RGB{R: 255, B: 255}, want: HSV{H: 300, S: 1, V: 1}},
		{name: "steel", color: RGB{R: 100, G: 150, B: 200}, want: HSV{H: 210, S: 0.5, V: 200.0 / 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.color)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.V, got.V, 1e-9)
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSV
		want RGB
	}{
		{name: "red", in: HSV{H: 0, S: 1, V: 1}, want: RGB{R: 255}},
		{name: "red at 360", in: HSV{H: 360, S: 1, V: 1}, want: RGB{R: 255}},
		{name: "green", in: HSV{H: 120, S: 1, V: 1}, want: RGB{G: 255}},
		{name: "blue", in: HSV{H: 240, S: 1, V: 1}, want: RGB{B: 255}},
		{name: "white", in: HSV{S: 0, V: 1}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", in: HSV{H: 77, S: 0.3, V: 0}, want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HSVToRGB(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHSVToRGB_Invalid(t *testing.T) {
	for _, in := range []HSV{
		{H: -1, S: 0.5, V: 0.5},
		{H: 360.5, S: 0.5, V: 0.5},
		{H: 10, S: 1.5, V: 0.5},
		{H: 10, S: 0.5, V: -0.1},
		{H: math.NaN(), S: 0.5, V: 0.5},
	} {
		_, err := HSVToRGB(in)
		assert.ErrorIs(t, err, ErrInvalidChannel, "input %+v", in)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got, err := HSVToRGB(RGBToHSV(c))
				require.NoError(t, err)
				if !withinOne(c, got) {
					t.Fatalf("round trip of %v gave %v", c, got)
				}
			}
		}
	}
}

func TestHSVToRGB_MatchesUnchecked(t *testing.T) {
	for h := 0.0; h <= 360; h += 7.5 {
		for _, sv := range [][2]float64{{0, 0}, {0.3, 0.6}, {1, 1}, {0.75, 0.25}} {
			c := HSV{H: h, S: sv[0], V: sv[1]}
			got, err := HSVToRGB(c)
			require.NoError(t, err)
			assert.Equal(t, hsvToRGB(c), got, "hsv %+v", c)
		}
	}
	assert.Equal(t, hsvToRGB(HSV{H: 0, S: 1, V: 1}), hsvToRGB(HSV{H: 360, S: 1, V: 1}))
}

func TestTriadic_MatchesCheckedConversion(t *testing.T) {
	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 85 {
			for b := 0; b < 256; b += 17 {
				seed := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				base := RGBToHSV(seed)
				got := Triadic(seed)
				require.Len(t, got, 2)
				for i, shift := range []float64{120, 240} {
					want, err := HSVToRGB(rotateHue(base, shift))
					require.NoError(t, err, "seed %s shift %v", seed, shift)
					assert.Equal(t, want, got[i], "seed %s shift %v", seed, shift)
				}
			}
		}
	}
}

func withinOne(a, b RGB) bool {
	d := func(x, y uint8) int {
		v := int(x) - int(y)
		if v < 0 {
			return -v
		}
		return v
	}
	return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1
}
