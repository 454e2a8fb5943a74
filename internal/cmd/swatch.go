package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/MeKo-Tech/swatchkit/internal/swatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Write a single solid-color image",
	Long:  `Write one solid-color PNG of the given size. Parent directories are created as needed.`,
	RunE:  runSwatch,
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	bindings := addColorFlags(swatchCmd, "swatch")
	swatchCmd.Flags().Int("width", swatch.DefaultSize, "Image width in pixels")
	swatchCmd.Flags().Int("height", swatch.DefaultSize, "Image height in pixels")
	swatchCmd.Flags().StringP("output", "o", "", "Output file (default <output-dir>/<HEX>.png)")
	swatchCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	bindFlags(swatchCmd, append(bindings, []struct{ key, flag string }{
		{"swatch.width", "width"},
		{"swatch.height", "height"},
		{"swatch.output", "output"},
		{"swatch.png_compression", "png-compression"},
	}...))
}

func runSwatch(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	c, err := resolveColor(viper.GetString("swatch.color"), viper.GetString("swatch.rgb"))
	if err != nil {
		return err
	}
	comp, err := swatch.ParseCompression(viper.GetString("swatch.png_compression"))
	if err != nil {
		return err
	}
	width := viper.GetInt("swatch.width")
	height := viper.GetInt("swatch.height")

	output := viper.GetString("swatch.output")
	if output == "" {
		output = filepath.Join(viper.GetString("output-dir"), c.Hex()+".png")
	}

	if err := swatch.WriteSolid(output, c, width, height, comp); err != nil {
		return err
	}
	logger.Info("Swatch written", "path", output, "hex", c.Hex(), "width", width, "height", height)
	fmt.Fprintf(cmd.OutOrStdout(), "Image saved as %s\n", output)
	return nil
}
