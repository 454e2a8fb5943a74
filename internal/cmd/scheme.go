package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/swatchkit/internal/archive"
	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/MeKo-Tech/swatchkit/internal/pipeline"
	"github.com/MeKo-Tech/swatchkit/internal/swatch"
	"github.com/MeKo-Tech/swatchkit/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Derive a palette from a seed color and write its swatches",
	Long: `Derive a monochrome, complementary, analogous, triadic or rainbow palette
and write one swatch per color, either as <output-dir>/<name>/<n>.png or into
a swatch archive.`,
	RunE: runScheme,
}

func init() {
	rootCmd.AddCommand(schemeCmd)

	bindings := addColorFlags(schemeCmd, "scheme")
	schemeCmd.Flags().StringP("kind", "k", string(pipeline.KindMonochrome), "Scheme kind (monochrome, complementary, analogous, triadic, rainbow)")
	schemeCmd.Flags().String("name", "", "Palette name (default: the kind)")
	schemeCmd.Flags().Int("tints", colormath.DefaultTints, "Number of tints (monochrome)")
	schemeCmd.Flags().Int("shades", colormath.DefaultShades, "Number of shades (monochrome)")
	schemeCmd.Flags().Int("count", colormath.DefaultAnalogous, "Number of colors (analogous)")
	schemeCmd.Flags().Float64("angle", colormath.DefaultAnalogousStep, "Hue step in degrees (analogous)")
	schemeCmd.Flags().Int("size", swatch.DefaultSize, "Swatch size in pixels (square)")
	schemeCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	schemeCmd.Flags().Bool("progress", false, "Show progress bar")
	schemeCmd.Flags().Bool("force", false, "Overwrite swatches that already exist")
	schemeCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")
	schemeCmd.Flags().String("format", "folder", "Output format: folder or archive")
	schemeCmd.Flags().String("output-file", "", "Archive path for the archive format (e.g., palette.swatches)")
	schemeCmd.Flags().Bool("sheet", false, "Also write all swatches as one sheet image")
	schemeCmd.Flags().Int("sheet-columns", 0, "Sheet columns (default: one row)")
	schemeCmd.Flags().Float64("sheet-scale", 1, "Sheet scale factor")

	bindFlags(schemeCmd, append(bindings, []struct{ key, flag string }{
		{"scheme.kind", "kind"},
		{"scheme.name", "name"},
		{"scheme.tints", "tints"},
		{"scheme.shades", "shades"},
		{"scheme.count", "count"},
		{"scheme.angle", "angle"},
		{"scheme.size", "size"},
		{"scheme.workers", "workers"},
		{"scheme.progress", "progress"},
		{"scheme.force", "force"},
		{"scheme.png_compression", "png-compression"},
		{"scheme.format", "format"},
		{"scheme.output_file", "output-file"},
		{"scheme.sheet", "sheet"},
		{"scheme.sheet_columns", "sheet-columns"},
		{"scheme.sheet_scale", "sheet-scale"},
	}...))
}

func runScheme(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	kind, err := pipeline.ParseKind(viper.GetString("scheme.kind"))
	if err != nil {
		return err
	}

	var seed colormath.RGB
	hex, rgb := viper.GetString("scheme.color"), viper.GetString("scheme.rgb")
	if kind != pipeline.KindRainbow || hex != "" || rgb != "" {
		if seed, err = resolveColor(hex, rgb); err != nil {
			return err
		}
	}

	format := viper.GetString("scheme.format")
	if format != "folder" && format != "archive" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'archive'", format)
	}
	outputFile := viper.GetString("scheme.output_file")
	if format == "archive" && outputFile == "" {
		return fmt.Errorf("--output-file is required for archive format")
	}

	comp, err := swatch.ParseCompression(viper.GetString("scheme.png_compression"))
	if err != nil {
		return err
	}

	req := pipeline.DefaultRequest(kind, seed)
	req.Name = viper.GetString("scheme.name")
	req.Tints = viper.GetInt("scheme.tints")
	req.Shades = viper.GetInt("scheme.shades")
	req.Count = viper.GetInt("scheme.count")
	req.Angle = viper.GetFloat64("scheme.angle")

	palette, err := pipeline.Build(req)
	if err != nil {
		return err
	}

	outputDir := viper.GetString("output-dir")
	workers := viper.GetInt("scheme.workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("Writing scheme",
		"kind", kind,
		"seed", seed.Hex(),
		"colors", len(palette.Colors),
		"format", format,
		"workers", workers,
	)

	opts := pipeline.GeneratorOptions{
		Compression: comp,
		Force:       viper.GetBool("scheme.force"),
	}
	var store *archive.Writer
	if format == "archive" {
		store, err = archive.New(outputFile, archive.Metadata{
			Name:        palette.Name,
			Description: fmt.Sprintf("%s scheme of %s", kind, seed.Hex()),
			Kind:        string(kind),
			Seed:        seed.Hex(),
			Version:     "1",
		})
		if err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}
		opts.Archive = store
	}

	size := viper.GetInt("scheme.size")
	gen, err := pipeline.NewGenerator(size, size, logger, opts)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return fmt.Errorf("failed to init generator: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tasks := palette.Tasks(outputDir)
	progress := worker.NewProgress(palette.Name, len(tasks), viper.GetBool("scheme.progress"))
	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   gen,
		OnProgress: progress.Callback(),
	})
	results := pool.Run(ctx, tasks)
	progress.Done()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("Swatch failed", "palette", r.Task.Palette, "position", r.Task.Position, "error", r.Err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Path)
	}
	logger.Info(progress.Summary())

	if store != nil {
		logger.Info("Flushing archive...")
		if err := store.Close(); err != nil {
			return fmt.Errorf("failed to close archive: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d swatches failed", failed, len(tasks))
	}

	if viper.GetBool("scheme.sheet") {
		if _, err := gen.WriteSheet(palette, outputDir, viper.GetInt("scheme.sheet_columns"), viper.GetFloat64("scheme.sheet_scale")); err != nil {
			return err
		}
	}
	return nil
}
