package cmd

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a color in every supported representation",
	RunE:  runInspect,
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print whether a color is warm or cool",
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(classifyCmd)

	bindFlags(inspectCmd, addColorFlags(inspectCmd, "inspect"))
	bindFlags(classifyCmd, addColorFlags(classifyCmd, "classify"))
}

func runInspect(cmd *cobra.Command, args []string) error {
	c, err := resolveColor(viper.GetString("inspect.color"), viper.GetString("inspect.rgb"))
	if err != nil {
		return err
	}
	writeInspection(cmd.OutOrStdout(), c)
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	c, err := resolveColor(viper.GetString("classify.color"), viper.GetString("classify.rgb"))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "RGB color %s is %s\n", c, colormath.Classify(c))
	return nil
}

func writeInspection(w io.Writer, c colormath.RGB) {
	hsv := colormath.RGBToHSV(c)
	cmyk := colormath.RGBToCMYK(c)
	comp := colormath.Complementary(c)

	fmt.Fprintf(w, "hex:           %s\n", c.Hex())
	fmt.Fprintf(w, "rgb:           %d,%d,%d\n", c.R, c.G, c.B)
	fmt.Fprintf(w, "hsv:           %.1f, %.3f, %.3f\n", hsv.H, hsv.S, hsv.V)
	fmt.Fprintf(w, "cmyk:          %.3f, %.3f, %.3f, %.3f\n", cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	fmt.Fprintf(w, "temperature:   %s (score %.1f)\n", colormath.Classify(c), colormath.WarmthScore(c))
	fmt.Fprintf(w, "complementary: %s\n", comp.Hex())
}
