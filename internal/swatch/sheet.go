package swatch

import (
	"fmt"
	"image"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/disintegration/gift"
)

// Sheet lays out every color of palette as a cell x cell square, left to
// right and then top to bottom, columns cells per row. columns <= 0 puts the
// whole palette on one row.
func Sheet(palette []colormath.RGB, cell, columns int) (*image.NRGBA, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	if cell <= 0 {
		return nil, fmt.Errorf("cell size must be positive")
	}
	if columns <= 0 || columns > len(palette) {
		columns = len(palette)
	}
	rows := (len(palette) + columns - 1) / columns

	sheet := image.NewNRGBA(image.Rect(0, 0, columns*cell, rows*cell))
	g := gift.New()
	for i, c := range palette {
		tile, err := Solid(c, cell, cell)
		if err != nil {
			return nil, err
		}
		at := image.Pt((i%columns)*cell, (i/columns)*cell)
		g.DrawAt(sheet, tile, at, gift.CopyOperator)
	}
	return sheet, nil
}

// ScaleSheet resizes img by factor using nearest-neighbour sampling, which
// keeps swatch edges hard.
func ScaleSheet(img image.Image, factor float64) (*image.NRGBA, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("scale factor %v must be positive", factor)
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scaled sheet %dx%d would be empty", w, h)
	}

	g := gift.New(gift.Resize(w, h, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst, nil
}
