// Package colormath provides pure color conversions and palette derivations.
//
// Nothing in this package performs I/O. Every function returns a new value
// and leaves its inputs untouched.
package colormath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidChannel reports a color component outside its valid range.
	ErrInvalidChannel = errors.New("invalid color channel")
	// ErrInvalidHexFormat reports a hex color that is not exactly six hex digits.
	ErrInvalidHexFormat = errors.New("invalid hex color format")
	// ErrInvalidFactor reports a blend factor outside [0,1].
	ErrInvalidFactor = errors.New("invalid blend factor")
	// ErrInvalidCount reports a negative palette size.
	ErrInvalidCount = errors.New("invalid color count")
)

// RGB is a point in the 8-bit RGB color cube.
type RGB struct {
	R, G, B uint8
}

// NewRGB builds an RGB from integer channels, rejecting values outside [0,255].
func NewRGB(r, g, b int) (RGB, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < 0 || ch.value > 255 {
			return RGB{}, fmt.Errorf("%s channel %d outside [0,255]: %w", ch.name, ch.value, ErrInvalidChannel)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseRGB parses a comma separated triple such as "255,165,0".
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("rgb %q: expected r,g,b: %w", s, ErrInvalidChannel)
	}
	var ch [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("rgb %q: channel %q is not an integer: %w", s, part, ErrInvalidChannel)
		}
		ch[i] = v
	}
	return NewRGB(ch[0], ch[1], ch[2])
}

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color as "(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}
