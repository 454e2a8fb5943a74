package colormath

import (
	"fmt"
	"math"
)

// Palette defaults.
const (
	DefaultTints         = 20
	DefaultShades        = 20
	DefaultAnalogous     = 3
	DefaultAnalogousStep = 30.0
)

func checkFactor(factor float64) error {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		return fmt.Errorf("factor %v outside [0,1]: %w", factor, ErrInvalidFactor)
	}
	return nil
}

// Tint blends c toward white. Factor 0 returns c, factor 1 returns white.
func Tint(c RGB, factor float64) (RGB, error) {
	if err := checkFactor(factor); err != nil {
		return RGB{}, err
	}
	tint := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*factor)
	}
	return RGB{R: tint(c.R), G: tint(c.G), B: tint(c.B)}, nil
}

// Shade blends c toward black. Factor 0 returns c, factor 1 returns black.
func Shade(c RGB, factor float64) (RGB, error) {
	if err := checkFactor(factor); err != nil {
		return RGB{}, err
	}
	shade := func(v uint8) uint8 {
		return uint8(float64(v) * (1 - factor))
	}
	return RGB{R: shade(c.R), G: shade(c.G), B: shade(c.B)}, nil
}

// MonochromeScheme returns c, then numTints increasingly light tints, then
// numShades increasingly dark shades. Neither pure white nor pure black is
// ever produced for a non-extreme seed.
func MonochromeScheme(c RGB, numTints, numShades int) ([]RGB, error) {
	if numTints < 0 || numShades < 0 {
		return nil, fmt.Errorf("tints %d, shades %d: %w", numTints, numShades, ErrInvalidCount)
	}

	scheme := make([]RGB, 0, 1+numTints+numShades)
	scheme = append(scheme, c)
	for i := 1; i <= numTints; i++ {
		t, err := Tint(c, float64(i)/float64(numTints+1))
		if err != nil {
			return nil, err
		}
		scheme = append(scheme, t)
	}
	for i := 1; i <= numShades; i++ {
		s, err := Shade(c, float64(i)/float64(numShades+1))
		if err != nil {
			return nil, err
		}
		scheme = append(scheme, s)
	}
	return scheme, nil
}

// Complementary inverts every channel. This is the RGB-model complement
// (red pairs with cyan), not the opposite hue on a painter's wheel.
func Complementary(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Analogous returns numColors colors whose hues are spaced angle degrees
// apart. Element i is shifted by angle*(i - numColors/2) using integer
// division, so for an even numColors the spread leans one step toward
// negative shifts. The unshifted element is the seed after an HSV round
// trip, which may differ from c by one unit per channel.
func Analogous(c RGB, numColors int, angle float64) ([]RGB, error) {
	if numColors < 0 {
		return nil, fmt.Errorf("analogous count %d: %w", numColors, ErrInvalidCount)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, fmt.Errorf("analogous angle %v: %w", angle, ErrInvalidFactor)
	}

	base := RGBToHSV(c)
	colors := make([]RGB, 0, numColors)
	for i := 0; i < numColors; i++ {
		shift := angle * float64(i-numColors/2)
		colors = append(colors, hsvToRGB(rotateHue(base, shift)))
	}
	return colors, nil
}

// Triadic returns the two colors 120 and 240 degrees around the hue circle
// from c, keeping saturation and value.
func Triadic(c RGB) []RGB {
	base := RGBToHSV(c)
	colors := make([]RGB, 0, 2)
	for _, shift := range [...]float64{120, 240} {
		colors = append(colors, hsvToRGB(rotateHue(base, shift)))
	}
	return colors
}
