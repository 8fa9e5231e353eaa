package ggchart

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"testing"
)

// drawableScale returns a scale with converted labels and a fixed box,
// bypassing Update so each test controls the geometry directly.
func drawableScale(t *testing.T, opts Options, ticks []any, width, height float64) *Scale {
	t.Helper()
	s := newTestScale(t, opts)
	s.SetTicks(ticks)
	s.ConvertTicksToLabels()
	s.Width, s.Height = width, height
	s.Place(Rect{Left: 0, Top: 100, Right: width, Bottom: 100 + height})
	return s
}

func intLabels(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestDrawLabelStride(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), intLabels(50), 200, 40)

	if got := s.LabelStride(); got != 5 {
		t.Fatalf("LabelStride() = %d, want 5", got)
	}
	if err := s.Draw(Rect{Top: 0, Bottom: 100, Right: 200}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	sf := surfaceOf(s)
	var want []string
	for i := 0; i < 50; i += 5 {
		want = append(want, fmt.Sprint(i))
	}
	if got := sf.texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("drawn labels = %v, want %v", got, want)
	}
	if sf.strokes != 10 {
		t.Errorf("strokes = %d, want 10", sf.strokes)
	}
}

func TestDrawNoStrideWhenLabelsFit(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), intLabels(5), 500, 40)
	if got := s.LabelStride(); got != 1 {
		t.Errorf("LabelStride() = %d, want 1", got)
	}
	v := drawableScale(t, optionsAt(PositionLeft), intLabels(500), 40, 100)
	if got := v.LabelStride(); got != 1 {
		t.Errorf("vertical LabelStride() = %d, want 1", got)
	}
}

func TestDrawHidden(t *testing.T) {
	opts := optionsAt(PositionBottom)
	opts.Display = false
	s := drawableScale(t, opts, intLabels(3), 300, 40)
	if err := s.Draw(Rect{}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := len(surfaceOf(s).calls); n != 0 {
		t.Errorf("hidden scale issued %d surface calls", n)
	}
}

func TestDrawRestoresState(t *testing.T) {
	opts := optionsAt(PositionBottom)
	opts.ScaleLabel.Show = true
	opts.ScaleLabel.LabelString = "Month"
	s := drawableScale(t, opts, intLabels(4), 400, 60)
	s.LabelRotation = 30

	if err := s.Draw(Rect{Bottom: 100, Right: 400}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	sf := surfaceOf(s)
	if sf.depth != 0 {
		t.Errorf("save depth after Draw = %d, want 0", sf.depth)
	}
	if sf.count("save") != sf.count("restore") {
		t.Errorf("save/restore mismatch: %d/%d", sf.count("save"), sf.count("restore"))
	}
	if sf.maxDepth < 2 {
		t.Errorf("labels should be drawn in a nested scope, max depth %d", sf.maxDepth)
	}
}

func TestDrawRotatedLabels(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), intLabels(3), 300, 60)
	s.LabelRotation = 45
	if err := s.Draw(Rect{Bottom: 100, Right: 300}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	sf := surfaceOf(s)
	for _, want := range []string{"align right", "baseline middle", "rotate -0.7854", "translate 0 112"} {
		if !slices.Contains(sf.calls, want) {
			t.Errorf("missing call %q in %v", want, sf.calls)
		}
	}
}

func TestDrawUnrotatedLabels(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), intLabels(3), 300, 60)
	if err := s.Draw(Rect{Bottom: 100, Right: 300}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	sf := surfaceOf(s)
	for _, want := range []string{"align center", "baseline top", "translate 0 108"} {
		if !slices.Contains(sf.calls, want) {
			t.Errorf("missing call %q", want)
		}
	}
	if sf.count("rotate") != 0 {
		t.Error("unrotated labels should not rotate the surface")
	}
}

func TestDrawGridLineGeometry(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), intLabels(3), 300, 60)
	if err := s.Draw(Rect{Top: 10, Bottom: 100, Right: 300}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	sf := surfaceOf(s)
	// First gridline at x=0 shifted by half a pixel for the 1px line:
	// tick mark from Top to Top+10, then across the chart area.
	want := []string{"move 0.5 100", "line 0.5 110", "move 0.5 10", "line 0.5 100"}
	idx := slices.Index(sf.calls, want[0])
	if idx < 0 || !reflect.DeepEqual(sf.calls[idx:idx+4], want) {
		t.Errorf("gridline path = %v, want %v", sf.calls, want)
	}
}

func TestDrawGridLineToggles(t *testing.T) {
	tests := []struct {
		name            string
		drawTicks, area bool
		wantMoves       int
	}{
		{"both", true, true, 6},
		{"ticks only", true, false, 3},
		{"area only", false, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := optionsAt(PositionLeft)
			opts.GridLines.DrawTicks = tt.drawTicks
			opts.GridLines.DrawOnChartArea = tt.area
			s := drawableScale(t, opts, intLabels(3), 40, 200)
			if err := s.Draw(Rect{Left: 40, Right: 300}); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			if got := surfaceOf(s).count("move"); got != tt.wantMoves {
				t.Errorf("moves = %d, want %d", got, tt.wantMoves)
			}
		})
	}
}

func TestDrawZeroLineStyleChurn(t *testing.T) {
	tests := []struct {
		zero int
		want int
	}{
		{zero: 0, want: 2},
		{zero: 2, want: 3},
	}
	for _, tt := range tests {
		s := drawableScale(t, optionsAt(PositionBottom), intLabels(5), 500, 40)
		s.ZeroLineIndex = tt.zero
		if err := s.Draw(Rect{Bottom: 100, Right: 500}); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		if got := surfaceOf(s).count("stroke-color"); got != tt.want {
			t.Errorf("zero line %d: stroke color set %d times, want %d", tt.zero, got, tt.want)
		}
	}
}

func TestDrawVerticalTitleRotation(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{PositionLeft, "rotate -1.5708"},
		{PositionRight, "rotate 1.5708"},
	}
	for _, tt := range tests {
		opts := optionsAt(tt.pos)
		opts.ScaleLabel.Show = true
		opts.ScaleLabel.LabelString = "Value"
		s := drawableScale(t, opts, intLabels(3), 40, 200)
		if err := s.Draw(Rect{Right: 300, Bottom: 300}); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		sf := surfaceOf(s)
		if !slices.Contains(sf.calls, tt.want) {
			t.Errorf("%s title: missing %q", tt.pos, tt.want)
		}
		if texts := sf.texts(); texts[len(texts)-1] != "Value" {
			t.Errorf("%s title: last text = %q, want Value", tt.pos, texts[len(texts)-1])
		}
	}
}

func TestDrawStrokeError(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), intLabels(3), 300, 40)
	boom := errors.New("raster failed")
	surfaceOf(s).strokeErr = boom

	err := s.Draw(Rect{Bottom: 100, Right: 300})
	var se *StrokeError
	if !errors.As(err, &se) || se.Index != 0 {
		t.Fatalf("Draw() error = %v, want *StrokeError for tick 0", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("StrokeError should wrap the surface error")
	}
	if surfaceOf(s).depth != 0 {
		t.Errorf("surface state leaked after failed Draw")
	}
}

func TestDrawSkipsBlankLabels(t *testing.T) {
	opts := optionsAt(PositionLeft)
	opts.Ticks.Callback = func(v any, i int, _ []any) (string, bool) {
		return FormatValue(v), i != 1
	}
	s := drawableScale(t, opts, intLabels(3), 40, 200)
	if err := s.Draw(Rect{Right: 300}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	sf := surfaceOf(s)
	if got := sf.texts(); !reflect.DeepEqual(got, []string{"0", "2"}) {
		t.Errorf("drawn labels = %v, want [0 2]", got)
	}
	if sf.strokes != 2 {
		t.Errorf("strokes = %d, want 2", sf.strokes)
	}
}

func TestDrawEmptyTicks(t *testing.T) {
	s := drawableScale(t, optionsAt(PositionBottom), nil, 300, 40)
	if err := s.Draw(Rect{Bottom: 100, Right: 300}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	sf := surfaceOf(s)
	if sf.strokes != 0 || len(sf.texts()) != 0 {
		t.Errorf("empty scale drew %d strokes and %d labels", sf.strokes, len(sf.texts()))
	}
}
