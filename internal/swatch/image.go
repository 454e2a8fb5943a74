// Package swatch renders solid-color swatches and palette sheets and writes
// them as PNG files.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"golang.org/x/image/draw"
)

// DefaultSize is the edge length of a square swatch in pixels.
const DefaultSize = 150

// Compression selects the PNG compression level.
type Compression string

const (
	CompressionDefault Compression = "default"
	CompressionSpeed   Compression = "speed"
	CompressionBest    Compression = "best"
	CompressionNone    Compression = "none"
)

// ParseCompression accepts default, speed, best or none. Empty means default.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CompressionDefault, nil
	case CompressionDefault, CompressionSpeed, CompressionBest, CompressionNone:
		return c, nil
	}
	return "", fmt.Errorf("invalid png compression %q: must be default, speed, best or none", s)
}

func (c Compression) level() png.CompressionLevel {
	switch c {
	case CompressionSpeed:
		return png.BestSpeed
	case CompressionBest:
		return png.BestCompression
	case CompressionNone:
		return png.NoCompression
	}
	return png.DefaultCompression
}

// Solid returns a width x height image filled with c.
func Solid(c color.Color, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("swatch size %dx%d must be positive", width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img, nil
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image, comp Compression) error {
	enc := png.Encoder{CompressionLevel: comp.level()}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// EncodeBytes returns img encoded as PNG.
func EncodeBytes(img image.Image, comp Compression) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, comp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile creates the parent directory of path if needed and writes img there.
func WriteFile(path string, img image.Image, comp Compression) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create swatch dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch %s: %w", path, err)
	}
	if err := Encode(file, img, comp); err != nil {
		file.Close()
		return fmt.Errorf("swatch %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close swatch %s: %w", path, err)
	}
	return nil
}

// WriteSolid writes a solid c image of the given size to path.
func WriteSolid(path string, c colormath.RGB, width, height int, comp Compression) error {
	img, err := Solid(c, width, height)
	if err != nil {
		return err
	}
	return WriteFile(path, img, comp)
}

// WriteSolidHex is WriteSolid for a hex color such as "#FF0000" or "FF0000".
func WriteSolidHex(path, hex string, width, height int, comp Compression) error {
	c, err := colormath.ParseHexColor(hex)
	if err != nil {
		return err
	}
	return WriteSolid(path, c, width, height, comp)
}
