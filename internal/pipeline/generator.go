package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/swatchkit/internal/archive"
	"github.com/MeKo-Tech/swatchkit/internal/swatch"
	"github.com/MeKo-Tech/swatchkit/internal/worker"
)

// GeneratorOptions tunes how swatches are written.
type GeneratorOptions struct {
	// Archive, when set, receives every swatch instead of the filesystem.
	Archive     *archive.Writer
	Compression swatch.Compression
	Force       bool
}

// Generator renders swatches. It implements worker.Renderer.
type Generator struct {
	logger  *slog.Logger
	archive *archive.Writer
	comp    swatch.Compression
	width   int
	height  int
	force   bool
}

var _ worker.Renderer = (*Generator)(nil)

// NewGenerator returns a generator producing width x height swatches.
func NewGenerator(width, height int, logger *slog.Logger, opts GeneratorOptions) (*Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("swatch size %dx%d must be positive", width, height)
	}
	comp := opts.Compression
	if comp == "" {
		comp = swatch.CompressionDefault
	}
	return &Generator{
		logger:  logger,
		archive: opts.Archive,
		comp:    comp,
		width:   width,
		height:  height,
		force:   opts.Force,
	}, nil
}

// Render writes the swatch for task and returns its path. Archived swatches
// are reported as "<archive>#<palette>/<position>".
func (g *Generator) Render(ctx context.Context, task worker.Task) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := swatch.Solid(task.Color, g.width, g.height)
	if err != nil {
		return "", err
	}

	if g.archive != nil {
		data, err := swatch.EncodeBytes(img, g.comp)
		if err != nil {
			return "", err
		}
		if err := g.archive.WriteSwatch(task.Palette, task.Position, task.Color, data); err != nil {
			return "", fmt.Errorf("failed to archive swatch: %w", err)
		}
		path := fmt.Sprintf("%s#%s/%d", g.archive.Path(), task.Palette, task.Position)
		g.log().Debug("Swatch archived", "path", path, "hex", task.Color.Hex())
		return path, nil
	}

	if task.Path == "" {
		return "", fmt.Errorf("task %s/%d has no output path", task.Palette, task.Position)
	}
	if !g.force {
		if _, err := os.Stat(task.Path); err == nil {
			g.log().Debug("Swatch already exists; skipping", "path", task.Path)
			return task.Path, nil
		}
	}
	if err := swatch.WriteFile(task.Path, img, g.comp); err != nil {
		return "", err
	}
	g.log().Debug("Swatch written", "path", task.Path, "hex", task.Color.Hex())
	return task.Path, nil
}

// WriteSheet composes p into one sheet image at dir/<name>_sheet.png.
func (g *Generator) WriteSheet(p Palette, dir string, columns int, scale float64) (string, error) {
	sheet, err := swatch.Sheet(p.Colors, min(g.width, g.height), columns)
	if err != nil {
		return "", err
	}
	img := sheet
	if scale != 0 && scale != 1 {
		if img, err = swatch.ScaleSheet(sheet, scale); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, p.Name+"_sheet.png")
	if err := swatch.WriteFile(path, img, g.comp); err != nil {
		return "", err
	}
	g.log().Info("Sheet written", "path", path, "colors", len(p.Colors))
	return path, nil
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}
