package cli

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/ticks"
)

const (
	defaultWidth      = 640       // canvas width in pixels
	defaultHeight     = 360       // canvas height in pixels
	defaultPadding    = 10        // blank border around the chart
	defaultBackground = "#ffffff" // canvas background

	axisCategory = "category" // labels ticked in order
	axisLinear   = "linear"   // nice numeric ticks between min and max
)

var (
	errNoAxes          = errors.New("chart has no axes")
	errUnknownAxisType = errors.New("unknown axis type")
	errInvalidBound    = errors.New("axis bound is not a finite number")
	errInvalidSize     = errors.New("invalid canvas size")
)

// chartConfig is the TOML chart file.
//
//	width = 640
//	height = 360
//
//	[[axes]]
//	position = "bottom"
//	type = "category"
//	labels = ["Jan", "Feb", "Mar"]
//
//	[[axes]]
//	position = "left"
//	type = "linear"
//	min = 0
//	max = 120
//	locale = "de"
//	title.text = "Revenue"
type chartConfig struct {
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	Padding    *float64     `toml:"padding"`
	Background string       `toml:"background"`
	FontFamily string       `toml:"font_family"` // default family for every axis
	FontFile   string       `toml:"font_file"`   // TrueType file used for FontFamily
	Axes       []axisConfig `toml:"axes"`
}

type axisConfig struct {
	Position    string      `toml:"position"`
	Type        string      `toml:"type"`
	Hidden      bool        `toml:"hidden"`
	Labels      []string    `toml:"labels"`
	Min         float64     `toml:"min"`
	Max         float64     `toml:"max"`
	BeginAtZero bool        `toml:"begin_at_zero"`
	MaxTicks    int         `toml:"max_ticks"`
	Locale      string      `toml:"locale"`
	Title       titleConfig `toml:"title"`
	GridLines   gridConfig  `toml:"gridlines"`
	Ticks       tickConfig  `toml:"ticks"`
}

type fontConfig struct {
	Size   float64 `toml:"size"`
	Style  string  `toml:"style"`
	Family string  `toml:"family"`
}

type titleConfig struct {
	Text  string     `toml:"text"`
	Color string     `toml:"color"`
	Font  fontConfig `toml:"font"`
}

type gridConfig struct {
	Show            *bool   `toml:"show"`
	Color           string  `toml:"color"`
	LineWidth       float64 `toml:"line_width"`
	DrawOnChartArea *bool   `toml:"draw_on_chart_area"`
	DrawTicks       *bool   `toml:"draw_ticks"`
	ZeroLineColor   string  `toml:"zero_line_color"`
	ZeroLineWidth   float64 `toml:"zero_line_width"`
	Offset          bool    `toml:"offset"`
}

type tickConfig struct {
	Show        *bool      `toml:"show"`
	MinRotation *int       `toml:"min_rotation"`
	MaxRotation *int       `toml:"max_rotation"`
	Template    string     `toml:"template"`
	Color       string     `toml:"color"`
	Font        fontConfig `toml:"font"`
}

// loadConfig reads and validates the chart file at path. Unknown keys are
// logged and ignored.
func loadConfig(ctx context.Context, path string) (chartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chartConfig{}, fmt.Errorf("read chart file: %w", err)
	}
	cfg, undecoded, err := parseConfig(data)
	if err != nil {
		return chartConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.FontFile, err = homedir.Expand(cfg.FontFile); err != nil {
		return chartConfig{}, fmt.Errorf("%s: font_file: %w", path, err)
	}
	logger := loggerFromContext(ctx)
	for _, key := range undecoded {
		logger.Warn("Ignoring unknown key", "file", path, "key", key)
	}
	return cfg, nil
}

// parseConfig decodes a chart file, applies defaults and validates it.
// It also returns the keys it did not understand.
func parseConfig(data []byte) (chartConfig, []string, error) {
	var cfg chartConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return chartConfig{}, nil, fmt.Errorf("parse chart file: %w", err)
	}
	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}

	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Padding == nil {
		p := float64(defaultPadding)
		cfg.Padding = &p
	}
	if cfg.Background == "" {
		cfg.Background = defaultBackground
	}
	if err := cfg.validate(); err != nil {
		return chartConfig{}, nil, err
	}
	return cfg, undecoded, nil
}

func (c chartConfig) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", errInvalidSize, c.Width, c.Height)
	}
	if len(c.Axes) == 0 {
		return errNoAxes
	}
	if _, err := ggchart.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for i, a := range c.Axes {
		if _, err := a.options(c.FontFamily); err != nil {
			return fmt.Errorf("axes[%d]: %w", i, err)
		}
		if _, err := a.variant(); err != nil {
			return fmt.Errorf("axes[%d]: %w", i, err)
		}
	}
	return nil
}

// options converts the axis table into scale options on top of the defaults.
func (a axisConfig) options(family string) (ggchart.Options, error) {
	o := ggchart.DefaultOptions()
	o.Display = !a.Hidden

	if a.Position != "" {
		pos, err := ggchart.ParsePosition(a.Position)
		if err != nil {
			return o, err
		}
		o.Position = pos
	}

	if family != "" {
		o.Ticks.Font.Family = family
		o.ScaleLabel.Font.Family = family
	}

	g := &o.GridLines
	setBool(&g.Show, a.GridLines.Show)
	setBool(&g.DrawOnChartArea, a.GridLines.DrawOnChartArea)
	setBool(&g.DrawTicks, a.GridLines.DrawTicks)
	setFloat(&g.LineWidth, a.GridLines.LineWidth)
	setFloat(&g.ZeroLineWidth, a.GridLines.ZeroLineWidth)
	g.OffsetGridLines = a.GridLines.Offset
	if err := setColor(&g.Color, a.GridLines.Color); err != nil {
		return o, fmt.Errorf("gridlines.color: %w", err)
	}
	if err := setColor(&g.ZeroLineColor, a.GridLines.ZeroLineColor); err != nil {
		return o, fmt.Errorf("gridlines.zero_line_color: %w", err)
	}

	t := &o.Ticks
	setBool(&t.Show, a.Ticks.Show)
	if a.Ticks.MinRotation != nil {
		t.MinRotation = *a.Ticks.MinRotation
	}
	if a.Ticks.MaxRotation != nil {
		t.MaxRotation = *a.Ticks.MaxRotation
	}
	if a.Ticks.Template != "" {
		t.Template = a.Ticks.Template
	}
	a.Ticks.Font.apply(&t.Font)
	if err := setColor(&t.Color, a.Ticks.Color); err != nil {
		return o, fmt.Errorf("ticks.color: %w", err)
	}
	if a.Locale != "" {
		tag, err := language.Parse(a.Locale)
		if err != nil {
			return o, fmt.Errorf("locale: %w", err)
		}
		t.Callback = ticks.LocaleFormatter(tag)
	}

	l := &o.ScaleLabel
	l.Show = a.Title.Text != ""
	l.LabelString = a.Title.Text
	a.Title.Font.apply(&l.Font)
	if err := setColor(&l.Color, a.Title.Color); err != nil {
		return o, fmt.Errorf("title.color: %w", err)
	}
	return o, nil
}

// variant returns the tick source of the axis.
func (a axisConfig) variant() (ggchart.Variant, error) {
	switch strings.ToLower(a.Type) {
	case "", axisCategory:
		return ticks.NewCategory(a.Labels...), nil
	case axisLinear:
		for name, v := range map[string]float64{"min": a.Min, "max": a.Max} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s = %g", errInvalidBound, name, v)
			}
		}
		var opts []ticks.LinearOption
		if a.BeginAtZero {
			opts = append(opts, ticks.WithBeginAtZero())
		}
		if a.MaxTicks > 0 {
			opts = append(opts, ticks.WithMaxTicks(a.MaxTicks))
		}
		return ticks.NewLinear(a.Min, a.Max, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownAxisType, a.Type)
}

func (f fontConfig) apply(dst *ggchart.Font) {
	setFloat(&dst.Size, f.Size)
	if f.Style != "" {
		dst.Style = f.Style
	}
	if f.Family != "" {
		dst.Family = f.Family
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setColor(dst *color.Color, s string) error {
	if s == "" {
		return nil
	}
	c, err := ggchart.ParseColor(s)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}
