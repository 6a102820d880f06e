package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thegreatvegan/Qura/internal/molecule"
	"github.com/Thegreatvegan/Qura/internal/raster"
)

// renderConfig resolves render options from flags, QURA_RENDER_* variables
// and an optional config file, in that order of precedence.
var renderConfig *viper.Viper

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the molecule to a PNG or animated GIF",
	Long: `Render the molecule offline. The format follows the --out extension:
.png writes a still at --rx/--ry, .gif writes an auto-rotating loop.`,
	Example: `  qura render --out molecule.gif --width 480 --height 360
  qura render --out poster.png --rx 0.4 --ry 0.8`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

// RenderOptions are the resolved render settings.
type RenderOptions struct {
	Out       string
	Width     int
	Height    int
	Frames    int
	Stride    int
	RotationX float64
	RotationY float64
}

func init() {
	f := renderCmd.Flags()
	f.String("config", "", "render settings file (yaml, json or toml)")
	f.StringP("out", "o", "", "output file, .png or .gif")
	f.Int("width", 400, "image width in pixels")
	f.Int("height", 400, "image height in pixels")
	f.Int("frames", 90, "GIF frame count")
	f.Int("stride", 7, "animation steps per GIF frame")
	f.Float64("rx", 0.35, "PNG rotation about the X axis, radians")
	f.Float64("ry", 0.6, "PNG rotation about the Y axis, radians")

	bindRenderConfig()
}

func bindRenderConfig() {
	renderConfig = viper.New()
	for _, name := range []string{"out", "width", "height", "frames", "stride", "rx", "ry"} {
		_ = renderConfig.BindPFlag(name, renderCmd.Flags().Lookup(name))
	}
	renderConfig.SetEnvPrefix("QURA_RENDER")
	renderConfig.AutomaticEnv()
}

func loadRenderOptions(cmd *cobra.Command) (RenderOptions, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		renderConfig.SetConfigFile(path)
		if err := renderConfig.ReadInConfig(); err != nil {
			return RenderOptions{}, fmt.Errorf("read render config: %w", err)
		}
	}

	opts := RenderOptions{
		Out:       renderConfig.GetString("out"),
		Width:     renderConfig.GetInt("width"),
		Height:    renderConfig.GetInt("height"),
		Frames:    renderConfig.GetInt("frames"),
		Stride:    renderConfig.GetInt("stride"),
		RotationX: renderConfig.GetFloat64("rx"),
		RotationY: renderConfig.GetFloat64("ry"),
	}
	if opts.Out == "" {
		return opts, fmt.Errorf("--out is required")
	}
	return opts, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := loadRenderOptions(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	data, err := Render(ctx, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d bytes)\n", opts.Out, opts.Width, opts.Height, len(data))
	return nil
}

// Render encodes the molecule in the format implied by opts.Out.
func Render(ctx context.Context, opts RenderOptions) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(opts.Out)); ext {
	case ".png":
		var buf bytes.Buffer
		err := raster.EncodePNG(&buf, raster.SnapshotOptions{
			Width:    opts.Width,
			Height:   opts.Height,
			Rotation: molecule.Rotation{X: opts.RotationX, Y: opts.RotationY},
		})
		return buf.Bytes(), err
	case ".gif":
		return raster.RenderGIF(ctx, raster.GIFOptions{
			Width:  opts.Width,
			Height: opts.Height,
			Frames: opts.Frames,
			Stride: opts.Stride,
		})
	default:
		return nil, fmt.Errorf("unsupported output format %q: use .png or .gif", ext)
	}
}
