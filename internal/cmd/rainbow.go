package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/MeKo-Tech/swatchkit/internal/pipeline"
	"github.com/MeKo-Tech/swatchkit/internal/swatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rainbowCmd = &cobra.Command{
	Use:   "rainbow",
	Short: "Write the seven rainbow swatches",
	Long:  `Write red, orange, yellow, green, blue, indigo and violet swatches as <dir>/<name>_image.png.`,
	RunE:  runRainbow,
}

func init() {
	rootCmd.AddCommand(rainbowCmd)

	rainbowCmd.Flags().String("dir", "", "Target folder (default <output-dir>/rainbow)")
	rainbowCmd.Flags().Int("size", swatch.DefaultSize, "Swatch size in pixels (square)")
	rainbowCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	bindFlags(rainbowCmd, []struct{ key, flag string }{
		{"rainbow.dir", "dir"},
		{"rainbow.size", "size"},
		{"rainbow.png_compression", "png-compression"},
	})
}

func runRainbow(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	dir := viper.GetString("rainbow.dir")
	if dir == "" {
		dir = filepath.Join(viper.GetString("output-dir"), "rainbow")
	}
	size := viper.GetInt("rainbow.size")
	comp, err := swatch.ParseCompression(viper.GetString("rainbow.png_compression"))
	if err != nil {
		return err
	}

	paths, err := writeRainbow(cmd.Context(), dir, size, comp)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Image saved as %s\n", p)
	}
	logger.Info("Rainbow written", "dir", dir, "count", len(paths))
	return nil
}

// writeRainbow renders the rainbow palette flat into dir, one
// <name>_image.png per color, overwriting earlier files.
func writeRainbow(ctx context.Context, dir string, size int, comp swatch.Compression) ([]string, error) {
	palette, err := pipeline.Build(pipeline.DefaultRequest(pipeline.KindRainbow, colormath.RGB{}))
	if err != nil {
		return nil, err
	}
	gen, err := pipeline.NewGenerator(size, size, logger, pipeline.GeneratorOptions{Compression: comp, Force: true})
	if err != nil {
		return nil, err
	}

	var paths []string
	for i, task := range palette.Tasks(dir) {
		task.Path = filepath.Join(dir, palette.Filename(i))
		path, err := gen.Render(ctx, task)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
