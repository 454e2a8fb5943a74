package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MeKo-Tech/swatchkit/internal/archive"
	"github.com/MeKo-Tech/swatchkit/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Export archived swatches to PNG files",
	Long:  `Export every swatch of a swatch archive to <dir>/<palette>/<position>.png.`,
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("input", "i", "", "Swatch archive to read (required)")
	extractCmd.Flags().String("dir", "", "Target directory (default <output-dir>)")
	extractCmd.Flags().String("palette", "", "Only export this palette")
	extractCmd.Flags().Bool("progress", false, "Show a progress bar per palette")

	bindFlags(extractCmd, []struct{ key, flag string }{
		{"extract.input", "input"},
		{"extract.dir", "dir"},
		{"extract.palette", "palette"},
		{"extract.progress", "progress"},
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	input := viper.GetString("extract.input")
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	dir := viper.GetString("extract.dir")
	if dir == "" {
		dir = viper.GetString("output-dir")
	}

	paths, err := extractArchive(input, dir, viper.GetString("extract.palette"))
	if err != nil {
		return err
	}
	logger.Info("Archive extracted", "input", input, "dir", dir, "count", len(paths))
	return nil
}

func extractArchive(input, dir, only string) ([]string, error) {
	r, err := archive.OpenReader(input)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	palettes := []string{only}
	if only == "" {
		if palettes, err = r.Palettes(); err != nil {
			return nil, err
		}
	}

	var paths []string
	for _, palette := range palettes {
		entries, err := r.List(palette)
		if err != nil {
			return paths, err
		}
		if len(entries) == 0 {
			return paths, fmt.Errorf("palette %q not found in %s", palette, input)
		}
		progress := worker.NewProgress(palette, len(entries), viper.GetBool("extract.progress"))
		progress.SetUnit("files")
		for i, e := range entries {
			data, err := r.ReadSwatch(e.Palette, e.Position)
			if err != nil {
				return paths, err
			}
			path := filepath.Join(dir, e.Palette, strconv.Itoa(e.Position)+".png")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return paths, fmt.Errorf("failed to create output dir: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return paths, fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Debug("Swatch extracted", "path", path, "hex", e.Hex)
			paths = append(paths, path)
			progress.Update(i+1, len(entries), 0)
		}
		progress.Done()
		logger.Debug(progress.Summary())
	}
	return paths, nil
}
