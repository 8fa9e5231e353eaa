package ggchart

import "image/color"

// Options is the configuration consumed by a Scale.
//
// Options is a plain value: DefaultOptions returns a fresh copy with the
// documented defaults, callers adjust fields, and New stores its own copy.
// Nothing in ggchart mutates a shared default.
type Options struct {
	// Display toggles the whole axis. Default: true.
	Display bool

	// Position selects the chart side. Top and bottom axes are horizontal.
	// Default: PositionBottom.
	Position Position

	GridLines  GridLineOptions
	ScaleLabel ScaleLabelOptions
	Ticks      TickOptions
}

// GridLineOptions configures gridlines and tick marks.
type GridLineOptions struct {
	// Show draws gridlines. Default: true.
	Show bool

	// Color of regular gridlines. Default: rgba(0, 0, 0, 0.1).
	Color color.Color

	// LineWidth of regular gridlines. Default: 1.
	LineWidth float64

	// DrawOnChartArea extends gridlines across the chart area. Default: true.
	DrawOnChartArea bool

	// DrawTicks draws the short tick mark next to the axis. Default: true.
	DrawTicks bool

	// ZeroLineWidth is the width of the gridline at the zero line index. Default: 1.
	ZeroLineWidth float64

	// ZeroLineColor is the color of the gridline at the zero line index.
	// Default: rgba(0, 0, 0, 0.25).
	ZeroLineColor color.Color

	// OffsetGridLines shifts labels half a tick so they sit between
	// gridlines, as bar charts do. Default: false.
	OffsetGridLines bool
}

// ScaleLabelOptions configures the axis title.
type ScaleLabelOptions struct {
	// Show draws the title. Default: false.
	Show bool

	// LabelString is the title text.
	LabelString string

	// Font of the title. Default: 12px normal "Helvetica Neue".
	Font Font

	// Color of the title. Default: #666.
	Color color.Color
}

// TickOptions configures tick labels.
type TickOptions struct {
	// Show draws tick labels. Default: true.
	Show bool

	// MinRotation is accepted for configuration compatibility. The rotation
	// search always starts from zero degrees. Default: 20.
	MinRotation int

	// MaxRotation bounds the label rotation search in degrees. Default: 90.
	MaxRotation int

	// Template formats raw tick values when Callback is nil. The placeholder
	// <%=value%> is replaced by the value. Default: "<%=value%>".
	Template string

	// Font of tick labels. Default: 12px normal "Helvetica Neue".
	Font Font

	// Color of tick labels. Default: #666.
	Color color.Color

	// Callback, when set, formats every tick and Template is ignored.
	Callback TickFormatter
}

// Default option values.
const (
	DefaultFontSize    = 12
	DefaultFontFamily  = "Helvetica Neue"
	DefaultMinRotation = 20
	DefaultMaxRotation = 90
	DefaultTemplate    = "<%=value%>"
)

// DefaultOptions returns the default scale configuration.
func DefaultOptions() Options {
	font := Font{Size: DefaultFontSize, Style: FontStyleNormal, Family: DefaultFontFamily}
	fontColor := MustParseColor("#666")
	return Options{
		Display:  true,
		Position: PositionBottom,
		GridLines: GridLineOptions{
			Show:            true,
			Color:           MustParseColor("rgba(0, 0, 0, 0.1)"),
			LineWidth:       1,
			DrawOnChartArea: true,
			DrawTicks:       true,
			ZeroLineWidth:   1,
			ZeroLineColor:   MustParseColor("rgba(0, 0, 0, 0.25)"),
		},
		ScaleLabel: ScaleLabelOptions{
			Font:  font,
			Color: fontColor,
		},
		Ticks: TickOptions{
			Show:        true,
			MinRotation: DefaultMinRotation,
			MaxRotation: DefaultMaxRotation,
			Template:    DefaultTemplate,
			Font:        font,
			Color:       fontColor,
		},
	}
}

// ScaleOption configures a Scale during creation.
//
// Example:
//
//	s, err := ggchart.New(dc, opts,
//	    ggchart.WithVariant(ticks.NewCategory(labels)),
//	    ggchart.After(ggchart.StageFit, func(s *ggchart.Scale) { s.MinSize.Height += 4 }),
//	)
type ScaleOption func(*Scale)

// WithVariant attaches the concrete axis type that builds ticks and maps values.
func WithVariant(v Variant) ScaleOption {
	return func(s *Scale) {
		s.variant = v
	}
}

// Before registers fn to run before stage on every Update.
// Hooks run in registration order.
func Before(stage Stage, fn StageFunc) ScaleOption {
	return func(s *Scale) {
		s.lifecycle.before[stage] = append(s.lifecycle.before[stage], fn)
	}
}

// After registers fn to run after stage on every Update.
// Hooks run in registration order.
func After(stage Stage, fn StageFunc) ScaleOption {
	return func(s *Scale) {
		s.lifecycle.after[stage] = append(s.lifecycle.after[stage], fn)
	}
}

// OverrideStage replaces the body of stage. The Before and After hooks of
// the stage still run around fn. StageUpdate cannot be overridden.
func OverrideStage(stage Stage, fn StageFunc) ScaleOption {
	return func(s *Scale) {
		if stage == StageUpdate {
			return
		}
		s.lifecycle.run[stage] = fn
	}
}

// WithReservedLeftWidth sets the width already reserved by a vertical axis on
// the left. Rotated labels only widen the left padding beyond it.
func WithReservedLeftWidth(w float64) ScaleOption {
	return func(s *Scale) {
		s.ReservedLeftWidth = w
	}
}
