package ggchart

import (
	"github.com/bits-and-blooms/bitset"
)

// Variant is a concrete axis type (category, linear, time, ...).
// It decides which values are ticked and how data values map to pixels;
// Scale handles everything else.
type Variant interface {
	// BuildTicks returns the raw tick values for the current layout pass.
	// It may read the scale's bounds and set ZeroLineIndex.
	BuildTicks(s *Scale) []any

	// PixelForValue maps a data value (or its index in the dataset) to a
	// pixel coordinate along the axis.
	PixelForValue(s *Scale, value any, index int) float64
}

// Scale is the layout state of one chart axis.
//
// The exported geometry fields are recomputed by every Update. Left, Top,
// Right and Bottom are assigned by the chart layout through Place. Draw
// reads the state without changing it.
//
// A Scale is not safe for concurrent use.
type Scale struct {
	ctx       Surface
	opts      Options
	variant   Variant
	lifecycle lifecycle

	// Layout input of the current pass.
	MaxWidth, MaxHeight float64
	Margins             Margins

	// Box assigned by the chart layout.
	Left, Top, Right, Bottom float64

	// Final size, equal to MinSize after Fit.
	Width, Height float64
	MinSize       Size
	Padding       Padding

	// LabelRotation is the tick label rotation in degrees,
	// within [0, Options.Ticks.MaxRotation].
	LabelRotation int

	// LabelWidth is the horizontal extent of the longest label at LabelRotation.
	LabelWidth float64

	// ZeroLineIndex is the tick drawn with the zero-line style. Default 0.
	ZeroLineIndex int

	// ReservedLeftWidth is the width already reserved on the left by a
	// vertical axis; rotated first labels only push the left padding past it.
	ReservedLeftWidth float64

	source []any
	values []any
	labels []string
	blank  bitset.BitSet
}

// New creates a Scale drawing on ctx with a copy of opts.
func New(ctx Surface, opts Options, scaleOpts ...ScaleOption) (*Scale, error) {
	if ctx == nil {
		return nil, ErrNilSurface
	}
	s := &Scale{
		ctx:  ctx,
		opts: opts,
	}
	for _, o := range scaleOpts {
		o(s)
	}
	return s, nil
}

// Options returns the configuration of s.
func (s *Scale) Options() Options {
	return s.opts
}

// Surface returns the surface s measures and draws with.
func (s *Scale) Surface() Surface {
	return s.ctx
}

// IsHorizontal reports whether the axis is at the top or bottom of the chart.
func (s *Scale) IsHorizontal() bool {
	return s.opts.Position.Horizontal()
}

// SetTicks replaces the raw tick values. Labels from a previous pass are
// discarded. It is the tick source when no Variant is attached.
func (s *Scale) SetTicks(values []any) {
	s.source = values
	s.values = values
	s.labels = nil
	s.blank.ClearAll()
}

// Ticks returns the raw tick values, or nil once they have been converted
// to labels.
func (s *Scale) Ticks() []any {
	return s.values
}

// Labels returns the formatted tick labels in tick order.
func (s *Scale) Labels() []string {
	return s.labels
}

// TickCount returns the number of ticks in whichever form they currently are.
func (s *Scale) TickCount() int {
	if s.labels != nil {
		return len(s.labels)
	}
	return len(s.values)
}

// IsBlank reports whether the label at index was suppressed by the tick
// formatter. Blank ticks keep their slot but are never drawn.
func (s *Scale) IsBlank(index int) bool {
	return index < 0 || s.blank.Test(uint(index))
}

// Place assigns the axis box computed by the chart layout.
func (s *Scale) Place(box Rect) {
	s.Left, s.Top, s.Right, s.Bottom = box.Left, box.Top, box.Right, box.Bottom
}

// Box returns the box assigned by Place.
func (s *Scale) Box() Rect {
	return Rect{Left: s.Left, Top: s.Top, Right: s.Right, Bottom: s.Bottom}
}

// PixelForValue maps a data value to a pixel through the attached Variant.
// Without a Variant the value is placed at the pixel of its index.
func (s *Scale) PixelForValue(value any, index int) float64 {
	if s.variant != nil {
		return s.variant.PixelForValue(s, value, index)
	}
	return s.PixelForTick(index, s.opts.GridLines.OffsetGridLines)
}

// labelWidth measures the label at index, treating blank labels as empty.
func (s *Scale) labelWidth(f Font, index int) float64 {
	if index < 0 || index >= len(s.labels) || s.IsBlank(index) {
		return 0
	}
	return s.ctx.MeasureText(f, s.labels[index])
}

// edgeLabelWidths returns the widths of the first and last labels.
func (s *Scale) edgeLabelWidths(f Font) (first, last float64) {
	n := len(s.labels)
	if n == 0 {
		return 0, 0
	}
	return s.labelWidth(f, 0), s.labelWidth(f, n-1)
}

// longestLabelWidth returns the widest label.
func (s *Scale) longestLabelWidth(f Font) float64 {
	longest := 0.0
	for i := range s.labels {
		if w := s.labelWidth(f, i); w > longest {
			longest = w
		}
	}
	return longest
}
