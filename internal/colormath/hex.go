package colormath

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// hexValue maps a single hex digit to its value. Lowercase is accepted.
func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// Hex returns the six digit uppercase hex form of c, without a leading '#'.
func (c RGB) Hex() string {
	return RGBToHex(c)
}

// RGBToHex encodes each channel as two base-16 digits, most significant first.
func RGBToHex(c RGB) string {
	var buf [6]byte
	for i, ch := range [3]uint8{c.R, c.G, c.B} {
		buf[2*i] = hexDigits[ch/16]
		buf[2*i+1] = hexDigits[ch%16]
	}
	return string(buf[:])
}

// IntsToHex is RGBToHex for unchecked integer channels.
func IntsToHex(r, g, b int) (string, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return RGBToHex(c), nil
}

// HexToRGB decodes exactly six hex digits into an RGB, two digits per channel.
func HexToRGB(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex %q has length %d, want 6: %w", s, len(s), ErrInvalidHexFormat)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok := hexValue(s[2*i])
		if !ok {
			return RGB{}, fmt.Errorf("hex %q: bad digit %q: %w", s, s[2*i], ErrInvalidHexFormat)
		}
		lo, ok := hexValue(s[2*i+1])
		if !ok {
			return RGB{}, fmt.Errorf("hex %q: bad digit %q: %w", s, s[2*i+1], ErrInvalidHexFormat)
		}
		ch[i] = uint8(16*hi + lo)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseHexColor accepts an optional leading '#' before the six hex digits.
func ParseHexColor(s string) (RGB, error) {
	return HexToRGB(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}
