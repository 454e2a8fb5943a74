package colormath

import (
	"fmt"
	"math"
)

// CMYK is a subtractive color with every component in [0,1].
type CMYK struct {
	C, M, Y, K float64
}

// RGBToCMYK converts c to CMYK. Pure black is (0, 0, 0, 1).
func RGBToCMYK(c RGB) CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	white := math.Max(r, math.Max(g, b))
	if white == 0 {
		return CMYK{K: 1}
	}
	return CMYK{
		C: (white - r) / white,
		M: (white - g) / white,
		Y: (white - b) / white,
		K: 1 - white,
	}
}

// CMYKToRGB converts c back to RGB, truncating each channel.
func CMYKToRGB(c CMYK) (RGB, error) {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"cyan", c.C}, {"magenta", c.M}, {"yellow", c.Y}, {"black", c.K}} {
		if math.IsNaN(ch.value) || ch.value < 0 || ch.value > 1 {
			return RGB{}, fmt.Errorf("%s %v outside [0,1]: %w", ch.name, ch.value, ErrInvalidChannel)
		}
	}
	white := 1 - c.K
	return RGB{
		R: toChannel((1 - c.C) * white),
		G: toChannel((1 - c.M) * white),
		B: toChannel((1 - c.Y) * white),
	}, nil
}
