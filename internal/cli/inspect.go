package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

// inspectOpts holds the flags of the inspect command.
type inspectOpts struct {
	commands bool    // also dump every drawing call
	advance  float64 // fixed per-rune advance; 0 measures with the real fonts
}

func newInspectCmd() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <chart.toml>",
		Short: "Print the computed axis layout of a chart file",
		Example: heredoc.Doc(`
			# Lay out with the embedded fonts
			$ ggchart inspect sales.toml

			# Deterministic layout plus every drawing call
			$ ggchart inspect sales.toml --advance 0.5 --commands
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.commands, "commands", false, "list every drawing call")
	cmd.Flags().Float64Var(&opts.advance, "advance", 0, "measure text with a fixed advance per rune (fraction of the font size)")

	return cmd
}

func runInspect(ctx context.Context, w io.Writer, path string, opts inspectOpts) (err error) {
	cfg, err := loadConfig(ctx, path)
	if err != nil {
		return err
	}

	var measurer ggchart.TextMeasurer
	if opts.advance > 0 {
		measurer = recording.FixedAdvance(opts.advance)
	} else {
		sf := newRasterSurface(cfg)
		defer closeInto(sf, &err)
		measurer = sf
	}
	rec := recording.NewRecorder(cfg.Width, cfg.Height, recording.WithMeasurer(measurer))

	c, err := buildChart(rec, cfg)
	if err != nil {
		return err
	}
	if err := c.draw(); err != nil {
		return err
	}

	if err := writeLayout(w, cfg, c); err != nil {
		return err
	}
	if opts.commands {
		fmt.Fprintln(w)
		if _, err := rec.FinishRecording().WriteTo(w); err != nil {
			return err
		}
	}
	loggerFromContext(ctx).Debug("Inspected chart", "file", path, "axes", len(c.axes))
	return nil
}

// writeLayout prints the chart area and a table with one row per axis.
// Styles are resolved against w, so plain writers get plain text.
func writeLayout(w io.Writer, cfg chartConfig, c *chart) error {
	fmt.Fprintf(w, "canvas %dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "chart area %s\n\n", formatRect(c.area))

	rows := make([][]string, 0, len(c.axes))
	for _, a := range c.axes {
		s := a.scale
		p := s.Padding
		rows = append(rows, []string{
			string(a.pos),
			formatRect(s.Box()),
			num(s.Width) + "x" + num(s.Height),
			strconv.Itoa(s.LabelRotation),
			strings.Join([]string{num(p.Left), num(p.Top), num(p.Right), num(p.Bottom)}, "/"),
			strconv.Itoa(s.LabelStride()),
			strings.Join(s.Labels(), ","),
		})
	}

	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle()).
		Headers("AXIS", "BOX", "SIZE", "ROTATION", "PADDING", "STRIDE", "LABELS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatRect(r ggchart.Rect) string {
	return fmt.Sprintf("(%s,%s)-(%s,%s)", num(r.Left), num(r.Top), num(r.Right), num(r.Bottom))
}

// num formats v with at most one decimal.
func num(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		return "0"
	}
	return s
}
