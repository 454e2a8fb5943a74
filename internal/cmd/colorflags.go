package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/spf13/cobra"
)

// addColorFlags registers the mutually exclusive --color and --rgb flags.
func addColorFlags(cmd *cobra.Command, prefix string) []struct{ key, flag string } {
	cmd.Flags().StringP("color", "c", "", "Color as hex, e.g. FF0000 or #FF0000")
	cmd.Flags().String("rgb", "", "Color as r,g,b, e.g. 255,0,0")
	return []struct{ key, flag string }{
		{prefix + ".color", "color"},
		{prefix + ".rgb", "rgb"},
	}
}

// resolveColor parses whichever of hex or rgb is set. Exactly one is required.
func resolveColor(hex, rgb string) (colormath.RGB, error) {
	switch {
	case hex != "" && rgb != "":
		return colormath.RGB{}, fmt.Errorf("--color and --rgb are mutually exclusive")
	case hex != "":
		return colormath.ParseHexColor(hex)
	case rgb != "":
		return colormath.ParseRGB(rgb)
	}
	return colormath.RGB{}, fmt.Errorf("one of --color or --rgb is required")
}
