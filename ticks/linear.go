package ticks

import (
	"log/slog"
	"math"
	"slices"

	"github.com/gogpu/ggchart"
)

const (
	// maxLinearTicks caps the number of generated ticks.
	maxLinearTicks = 11

	// horizontalTickSpacing is the minimum room per tick on horizontal axes.
	horizontalTickSpacing = 50
)

// LinearOption configures a Linear variant.
type LinearOption func(*Linear)

// WithBeginAtZero extends the range to include zero.
func WithBeginAtZero() LinearOption {
	return func(l *Linear) { l.beginAtZero = true }
}

// WithMaxTicks caps the tick count below the default of 11. Values below 2
// are raised to 2.
func WithMaxTicks(n int) LinearOption {
	return func(l *Linear) { l.maxTicks = max(n, 2) }
}

// Linear ticks a numeric range with nice values.
//
// Horizontal axes list ticks left to right in ascending order. Vertical axes
// list them top to bottom in descending order, so the largest value is at
// Top. The tick whose value is zero is drawn as the zero line; without one,
// ZeroLineIndex is set to -1.
type Linear struct {
	min, max    float64
	beginAtZero bool
	maxTicks    int

	// start and end are the outermost tick values of the last BuildTicks.
	start, end float64
}

// NewLinear returns a variant spanning [min, max]. The bounds are swapped if
// given in reverse.
func NewLinear(min, max float64, opts ...LinearOption) *Linear {
	if min > max {
		min, max = max, min
	}
	l := &Linear{min: min, max: max, maxTicks: maxLinearTicks}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Range returns the outermost tick values of the last layout pass.
func (l *Linear) Range() (start, end float64) { return l.start, l.end }

// bounds returns the data range to tick, widened when empty.
func (l *Linear) bounds() (lo, hi float64) {
	lo, hi = l.min, l.max
	if l.beginAtZero {
		lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	}
	if lo == hi {
		if lo == 0 {
			return 0, 1
		}
		return lo - 1, hi + 1
	}
	return lo, hi
}

// tickLimit derives the tick budget from the axis length.
func (l *Linear) tickLimit(s *ggchart.Scale) int {
	var n int
	if s.IsHorizontal() {
		n = int(math.Ceil(s.Width / horizontalTickSpacing))
	} else {
		n = int(math.Ceil(s.Height / (2 * s.Options().Ticks.Font.Size)))
	}
	return min(max(n, 2), l.maxTicks)
}

// BuildTicks implements ggchart.Variant.
func (l *Linear) BuildTicks(s *ggchart.Scale) []any {
	lo, hi := l.bounds()
	values := niceTicks(lo, hi, l.tickLimit(s))
	l.start, l.end = values[0], values[len(values)-1]

	if !s.IsHorizontal() {
		slices.Reverse(values)
	}
	s.ZeroLineIndex = slices.Index(values, 0)

	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	ggchart.Logger().Debug("ticks: linear ticks built",
		slog.Float64("start", l.start),
		slog.Float64("end", l.end),
		slog.Int("count", len(out)))
	return out
}

// PixelForValue implements ggchart.Variant. Values that are not numeric
// map to the tick at index.
func (l *Linear) PixelForValue(s *ggchart.Scale, value any, index int) float64 {
	v, ok := toFloat(value)
	if !ok || l.end == l.start {
		return s.PixelForTick(index, false)
	}
	decimal := (v - l.start) / (l.end - l.start)
	if s.IsHorizontal() {
		return s.PixelForDecimal(decimal, false)
	}
	inner := s.Height - (s.Padding.Top + s.Padding.Bottom)
	return s.Top + (1-decimal)*inner
}

// toFloat converts the numeric kinds chart data commonly uses.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

var _ ggchart.Variant = (*Linear)(nil)
