// Package pipeline turns scheme requests into palettes and writes their
// swatches to a folder or an archive.
package pipeline

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/MeKo-Tech/swatchkit/internal/worker"
)

// Kind names a palette derivation.
type Kind string

const (
	KindMonochrome    Kind = "monochrome"
	KindComplementary Kind = "complementary"
	KindAnalogous     Kind = "analogous"
	KindTriadic       Kind = "triadic"
	KindRainbow       Kind = "rainbow"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindMonochrome, KindComplementary, KindAnalogous, KindTriadic, KindRainbow}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid scheme kind %q", s)
}

// Request describes the palette to derive from Seed.
type Request struct {
	Kind   Kind
	Name   string // defaults to the kind
	Seed   colormath.RGB
	Tints  int
	Shades int
	Count  int
	Angle  float64
}

// DefaultRequest returns a request with the classic defaults for kind.
func DefaultRequest(kind Kind, seed colormath.RGB) Request {
	return Request{
		Kind:   kind,
		Seed:   seed,
		Tints:  colormath.DefaultTints,
		Shades: colormath.DefaultShades,
		Count:  colormath.DefaultAnalogous,
		Angle:  colormath.DefaultAnalogousStep,
	}
}

// Palette is an ordered list of colors with an optional label per color.
type Palette struct {
	Name   string
	Kind   Kind
	Colors []colormath.RGB
	Labels []string
}

// Build derives the palette described by req. Complementary and triadic
// palettes start with the seed.
func Build(req Request) (Palette, error) {
	p := Palette{Name: req.Name, Kind: req.Kind}
	if p.Name == "" {
		p.Name = string(req.Kind)
	}

	switch req.Kind {
	case KindMonochrome:
		colors, err := colormath.MonochromeScheme(req.Seed, req.Tints, req.Shades)
		if err != nil {
			return Palette{}, err
		}
		p.Colors = colors
	case KindComplementary:
		p.Colors = []colormath.RGB{req.Seed, colormath.Complementary(req.Seed)}
	case KindAnalogous:
		colors, err := colormath.Analogous(req.Seed, req.Count, req.Angle)
		if err != nil {
			return Palette{}, err
		}
		p.Colors = colors
	case KindTriadic:
		p.Colors = append([]colormath.RGB{req.Seed}, colormath.Triadic(req.Seed)...)
	case KindRainbow:
		for _, n := range colormath.Rainbow() {
			p.Colors = append(p.Colors, n.Color)
			p.Labels = append(p.Labels, n.Name)
		}
	default:
		return Palette{}, fmt.Errorf("invalid scheme kind %q", req.Kind)
	}
	return p, nil
}

// Filename returns the file name of the swatch at index i: the label with an
// "_image" suffix when labelled, otherwise the 1-based position.
func (p Palette) Filename(i int) string {
	if i < len(p.Labels) && p.Labels[i] != "" {
		return p.Labels[i] + "_image.png"
	}
	return strconv.Itoa(i+1) + ".png"
}

// Tasks returns one task per color, in palette order, rooted at dir/<name>.
func (p Palette) Tasks(dir string) []worker.Task {
	tasks := make([]worker.Task, len(p.Colors))
	for i, c := range p.Colors {
		tasks[i] = worker.Task{
			Palette:  p.Name,
			Position: i + 1,
			Color:    c,
			Path:     filepath.Join(dir, p.Name, p.Filename(i)),
		}
	}
	return tasks
}
