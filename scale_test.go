package ggchart

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func newTestScale(t *testing.T, opts Options, scaleOpts ...ScaleOption) *Scale {
	t.Helper()
	s, err := New(&fakeSurface{}, opts, scaleOpts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func surfaceOf(s *Scale) *fakeSurface {
	return s.Surface().(*fakeSurface)
}

func numbers(vs ...float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// fixedLabels returns n distinct labels of exactly chars runes.
func fixedLabels(n, chars int) []any {
	out := make([]any, n)
	for i := range out {
		l := fmt.Sprintf("%0*d", chars, i)
		out[i] = l
	}
	return out
}

func optionsAt(p Position) Options {
	o := DefaultOptions()
	o.Position = p
	return o
}

type stubVariant struct {
	ticks []any
	zero  int
	calls int
}

func (v *stubVariant) BuildTicks(s *Scale) []any {
	v.calls++
	s.ZeroLineIndex = v.zero
	return v.ticks
}

func (v *stubVariant) PixelForValue(s *Scale, value any, index int) float64 {
	return s.PixelForDecimal(value.(float64), false)
}

func TestNewNilSurface(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	if !errors.Is(err, ErrNilSurface) {
		t.Fatalf("New(nil) error = %v, want ErrNilSurface", err)
	}
}

func TestStageNames(t *testing.T) {
	want := []string{"setDimensions", "buildTicks", "convertTicksToLabels", "calculateTickRotation", "fit"}
	var got []string
	for _, st := range Stages() {
		got = append(got, st.String())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Stages() = %v, want %v", got, want)
	}
	if StageUpdate.String() != "update" || Stage(200).String() != "unknown" {
		t.Errorf("unexpected stage names %q %q", StageUpdate, Stage(200))
	}
}

func TestUpdateHookOrder(t *testing.T) {
	var order []string
	var opts []ScaleOption
	record := func(tag string) StageFunc {
		return func(*Scale) { order = append(order, tag) }
	}
	for _, st := range append([]Stage{StageUpdate}, Stages()...) {
		opts = append(opts, Before(st, record("before "+st.String())), After(st, record("after "+st.String())))
	}

	s := newTestScale(t, DefaultOptions(), opts...)
	s.SetTicks(numbers(1, 2, 3))
	s.Update(200, 100, nil)

	want := []string{
		"before update",
		"before setDimensions", "after setDimensions",
		"before buildTicks", "after buildTicks",
		"before convertTicksToLabels", "after convertTicksToLabels",
		"before calculateTickRotation", "after calculateTickRotation",
		"before fit", "after fit",
		"after update",
	}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("hook order =\n%v\nwant\n%v", order, want)
	}
}

func TestOverrideStage(t *testing.T) {
	var afterRan bool
	s := newTestScale(t, DefaultOptions(),
		OverrideStage(StageFit, func(s *Scale) { s.MinSize = Size{Width: 1, Height: 2} }),
		After(StageFit, func(*Scale) { afterRan = true }),
		OverrideStage(StageUpdate, func(*Scale) { t.Error("StageUpdate override must be ignored") }),
	)
	s.SetTicks(numbers(1, 2))

	got := s.Update(300, 100, nil)
	if got != (Size{Width: 1, Height: 2}) {
		t.Errorf("Update() = %+v, want overridden size", got)
	}
	if !afterRan {
		t.Error("After(StageFit) hook did not run around the override")
	}
}

func TestUpdateSetsUnconstrainedDimension(t *testing.T) {
	h := newTestScale(t, optionsAt(PositionTop))
	h.SetTicks(numbers(1))
	h.Update(320, 90, nil)
	if h.Width != 320 {
		t.Errorf("horizontal Width = %g, want 320", h.Width)
	}

	v := newTestScale(t, optionsAt(PositionRight))
	v.SetTicks(numbers(1))
	v.Update(80, 240, nil)
	if v.Height != 240 {
		t.Errorf("vertical Height = %g, want 240", v.Height)
	}
}

func TestUpdateUsesVariant(t *testing.T) {
	v := &stubVariant{ticks: numbers(-10, 0, 10), zero: 1}
	s := newTestScale(t, optionsAt(PositionLeft), WithVariant(v))

	s.Update(100, 200, nil)
	if v.calls != 1 {
		t.Fatalf("BuildTicks called %d times, want 1", v.calls)
	}
	if got := s.Labels(); !reflect.DeepEqual(got, []string{"-10", "0", "10"}) {
		t.Errorf("Labels() = %v", got)
	}
	if s.ZeroLineIndex != 1 {
		t.Errorf("ZeroLineIndex = %d, want 1", s.ZeroLineIndex)
	}
	if got, want := s.PixelForValue(0.5, 0), s.PixelForDecimal(0.5, false); got != want {
		t.Errorf("PixelForValue() = %g, want %g", got, want)
	}
}

func TestUpdateRepeatsWithoutVariant(t *testing.T) {
	calls := 0
	opts := DefaultOptions()
	opts.Ticks.Callback = func(v any, _ int, _ []any) (string, bool) {
		calls++
		return fmt.Sprintf("%v%%", v), true
	}
	s := newTestScale(t, opts)
	s.SetTicks(numbers(10, 20))

	first := s.Update(300, 100, nil)
	second := s.Update(300, 100, nil)
	if first != second {
		t.Errorf("second pass size %+v differs from first %+v", second, first)
	}
	if calls != 4 {
		t.Errorf("callback calls = %d, want 4 (raw values reused each pass)", calls)
	}
	if got := s.Labels(); !reflect.DeepEqual(got, []string{"10%", "20%"}) {
		t.Errorf("Labels() = %v", got)
	}
}

func TestPixelForValueWithoutVariant(t *testing.T) {
	s := newTestScale(t, DefaultOptions())
	s.SetTicks(numbers(1, 2, 3))
	s.Update(300, 100, nil)
	if got, want := s.PixelForValue(2.0, 1), s.PixelForTick(1, false); got != want {
		t.Errorf("PixelForValue() = %g, want %g", got, want)
	}
}

func TestPlaceAndBox(t *testing.T) {
	s := newTestScale(t, DefaultOptions())
	box := Rect{Left: 1, Top: 2, Right: 30, Bottom: 40}
	s.Place(box)
	if s.Box() != box {
		t.Errorf("Box() = %+v, want %+v", s.Box(), box)
	}
	if box.Width() != 29 || box.Height() != 38 {
		t.Errorf("Rect size = %gx%g", box.Width(), box.Height())
	}
}
