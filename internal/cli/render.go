package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/ggsurface"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output string // PNG path
	width  int    // canvas width override
	height int    // canvas height override
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <chart.toml>",
		Short: "Render the axes of a chart file to PNG",
		Example: heredoc.Doc(`
			# Render sales.toml to chart.png
			$ ggchart render sales.toml

			# Render at a different size
			$ ggchart render sales.toml -o ~/sales.png --width 1280 --height 720
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "chart.png", "output PNG file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width (overrides the chart file)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height (overrides the chart file)")

	return cmd
}

func runRender(ctx context.Context, path string, opts renderOpts) (err error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	cfg, err := loadConfig(ctx, path)
	if err != nil {
		return err
	}
	cfg.resize(opts.width, opts.height)

	sf := newRasterSurface(cfg)
	defer closeInto(sf, &err)

	c, err := buildChart(sf, cfg)
	if err != nil {
		return err
	}
	if err := c.draw(); err != nil {
		return err
	}
	if err := sf.Err(); err != nil {
		logger.Warn("Some labels were not drawn", "err", err)
	}
	output, err := homedir.Expand(opts.output)
	if err != nil {
		return fmt.Errorf("output path: %w", err)
	}
	if err := sf.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	p.done(fmt.Sprintf("Rendered %d axes to %s", len(c.axes), output))
	return nil
}

// closeInto closes c and joins a close failure into *err.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("close surface: %w", cerr))
	}
}

// newRasterSurface creates the gg surface described by cfg.
func newRasterSurface(cfg chartConfig) *ggsurface.Surface {
	opts := []ggsurface.Option{ggsurface.WithBackground(ggchart.MustParseColor(cfg.Background))}
	if cfg.FontFile != "" && cfg.FontFamily != "" {
		opts = append(opts, ggsurface.WithFontFile(cfg.FontFamily, cfg.FontFile))
	}
	return ggsurface.New(cfg.Width, cfg.Height, opts...)
}

// resize applies non-zero command-line size overrides.
func (c *chartConfig) resize(width, height int) {
	if width > 0 {
		c.Width = width
	}
	if height > 0 {
		c.Height = height
	}
}
