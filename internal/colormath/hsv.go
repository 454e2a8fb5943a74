package colormath

import (
	"fmt"
	"math"
)

// HSV is a color in the hue/saturation/value cylinder.
// H is in degrees [0,360], where 360 is the same hue as 0. S and V are in [0,1].
type HSV struct {
	H, S, V float64
}

// Validate reports whether every component is inside its range.
func (c HSV) Validate() error {
	if math.IsNaN(c.H) || c.H < 0 || c.H > 360 {
		return fmt.Errorf("hue %v outside [0,360]: %w", c.H, ErrInvalidChannel)
	}
	if math.IsNaN(c.S) || c.S < 0 || c.S > 1 {
		return fmt.Errorf("saturation %v outside [0,1]: %w", c.S, ErrInvalidChannel)
	}
	if math.IsNaN(c.V) || c.V < 0 || c.V > 1 {
		return fmt.Errorf("value %v outside [0,1]: %w", c.V, ErrInvalidChannel)
	}
	return nil
}

// RGBToHSV converts c to HSV using the 60 degree sector formula.
// Achromatic colors get hue 0.
func RGBToHSV(c RGB) HSV {
	r, g, b := int(c.R), int(c.G), int(c.B)
	maxc := max(r, g, b)
	minc := min(r, g, b)
	delta := float64(maxc - minc)

	out := HSV{V: float64(maxc) / 255}
	if maxc != 0 {
		out.S = delta / float64(maxc)
	}
	if delta == 0 {
		return out
	}

	var h float64
	switch maxc {
	case r:
		h = float64(g-b) / delta
	case g:
		h = 2 + float64(b-r)/delta
	default:
		h = 4 + float64(r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	out.H = h
	return out
}

// HSVToRGB converts c back to RGB, truncating each scaled channel.
// The result is within one unit per channel of the color c was derived from.
func HSVToRGB(c HSV) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	return hsvToRGB(c), nil
}

// hsvToRGB converts an in-range c. H of 360 lands in sector 0.
func hsvToRGB(c HSV) RGB {
	h := c.H / 60
	sector := math.Floor(h)
	f := h - sector
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = c.V, t, p
	case 1:
		r, g, b = q, c.V, p
	case 2:
		r, g, b = p, c.V, t
	case 3:
		r, g, b = p, q, c.V
	case 4:
		r, g, b = t, p, c.V
	default:
		r, g, b = c.V, p, q
	}
	return RGB{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// toChannel scales a unit value to [0,255] and truncates.
func toChannel(x float64) uint8 {
	v := int(x * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// rotateHue returns c with its hue moved by shift degrees, wrapped into [0,360).
func rotateHue(c HSV, shift float64) HSV {
	h := math.Mod(c.H+shift, 360)
	if h < 0 {
		h += 360
	}
	c.H = h
	return c
}
