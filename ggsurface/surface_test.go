package ggsurface

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggchart"
)

var testFont = ggchart.Font{Size: 12, Family: "Helvetica Neue"}

func TestMeasureText(t *testing.T) {
	s := New(100, 100)
	defer s.Close()

	if got := s.MeasureText(testFont, ""); got != 0 {
		t.Errorf("MeasureText(\"\") = %g, want 0", got)
	}
	w12 := s.MeasureText(testFont, "1234")
	if w12 <= 0 {
		t.Fatalf("MeasureText() = %g, want > 0", w12)
	}
	big := testFont
	big.Size = 24
	if w24 := s.MeasureText(big, "1234"); w24 <= w12 {
		t.Errorf("24px width %g not larger than 12px width %g", w24, w12)
	}
	if s.MeasureText(testFont, "12345678") <= w12 {
		t.Error("longer text should measure wider")
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestMonoFamilyIsFixedWidth(t *testing.T) {
	s := New(10, 10)
	defer s.Close()

	mono := ggchart.Font{Size: 12, Family: "Go Mono"}
	if a, b := s.MeasureText(mono, "iiii"), s.MeasureText(mono, "MMMM"); a != b {
		t.Errorf("mono widths differ: %g vs %g", a, b)
	}
}

func TestFontVariants(t *testing.T) {
	tests := []struct {
		style string
		want  variant
	}{
		{ggchart.FontStyleNormal, regular},
		{"", regular},
		{ggchart.FontStyleBold, bold},
		{ggchart.FontStyleItalic, italic},
		{ggchart.FontStyleBoldItalic, boldItalic},
	}
	for _, tt := range tests {
		if got := variantOf(ggchart.Font{Style: tt.style}); got != tt.want {
			t.Errorf("variantOf(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}

func TestFontFaceCached(t *testing.T) {
	c := newFontCache()
	a, err := c.face(testFont)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.face(testFont)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("face not cached")
	}
	if len(c.sources) != 1 {
		t.Errorf("sources = %d, want 1", len(c.sources))
	}
	if err := c.close(); err != nil {
		t.Errorf("close() = %v", err)
	}
}

func TestMissingFontFile(t *testing.T) {
	s := New(10, 10, WithFontFile("Custom", filepath.Join(t.TempDir(), "missing.ttf")))
	defer s.Close()

	if got := s.MeasureText(ggchart.Font{Size: 12, Family: "custom"}, "abc"); got != 0 {
		t.Errorf("MeasureText() = %g, want 0 for a missing font", got)
	}
	s.SetFont(ggchart.Font{Size: 12, Family: "Custom"})
	s.FillText("abc", 1, 1)
	if !errors.Is(s.Err(), ErrFontLoad) {
		t.Errorf("Err() = %v, want ErrFontLoad", s.Err())
	}
}

func TestSaveRestore(t *testing.T) {
	s := New(10, 10)
	defer s.Close()

	s.SetLineWidth(3)
	s.SetTextAlign(ggchart.AlignRight)
	s.Save()
	s.SetLineWidth(7)
	s.SetTextAlign(ggchart.AlignCenter)
	s.Translate(5, 5)
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}
	s.Restore()
	s.Restore() // unbalanced, ignored

	if s.state.lineWidth != 3 || s.state.align != ggchart.AlignRight {
		t.Errorf("state after Restore = %+v", s.state)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
}

func TestStrokeDrawsWithStrokeColor(t *testing.T) {
	s := New(100, 40, WithBackground(color.White))
	defer s.Close()

	s.SetFillColor(color.White)
	s.SetStrokeColor(color.Black)
	s.SetLineWidth(4)
	s.BeginPath()
	s.MoveTo(0, 20)
	s.LineTo(100, 20)
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}

	r, _, _, _ := s.Image().At(50, 20).RGBA()
	if r > 0x8000 {
		t.Errorf("pixel on the line is too light: r=%#x", r)
	}
	r, _, _, _ = s.Image().At(50, 2).RGBA()
	if r < 0xf000 {
		t.Errorf("background pixel was painted: r=%#x", r)
	}
}

func TestAnchorOffset(t *testing.T) {
	c := newFontCache()
	defer c.close()
	face, err := c.face(testFont)
	if err != nil {
		t.Fatal(err)
	}
	w := face.Advance("label")
	m := face.Metrics()

	tests := []struct {
		align          ggchart.TextAlign
		baseline       ggchart.TextBaseline
		wantDX, wantDY float64
	}{
		{ggchart.AlignLeft, ggchart.BaselineAlphabetic, 0, 0},
		{ggchart.AlignCenter, ggchart.BaselineTop, -w / 2, m.Ascent},
		{ggchart.AlignRight, ggchart.BaselineMiddle, -w, (m.Ascent - m.Descent) / 2},
		{ggchart.AlignLeft, ggchart.BaselineBottom, 0, -m.Descent},
	}
	for _, tt := range tests {
		dx, dy := anchorOffset(face, "label", tt.align, tt.baseline)
		if dx != tt.wantDX || dy != tt.wantDY {
			t.Errorf("%v/%v: offset = (%g, %g), want (%g, %g)", tt.align, tt.baseline, dx, dy, tt.wantDX, tt.wantDY)
		}
	}
}

func TestDrawAxisToPNG(t *testing.T) {
	s := New(320, 80, WithBackground(color.White))
	defer s.Close()

	axis, err := ggchart.New(s, ggchart.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	axis.SetTicks([]any{"Jan", "Feb", "Mar", "Apr"})
	size := axis.Update(320, 80, nil)
	axis.Place(ggchart.Rect{Left: 0, Top: 0, Right: size.Width, Bottom: size.Height})
	if err := axis.Draw(ggchart.Rect{Right: 320}); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() after Draw = %d", s.Depth())
	}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 80 {
		t.Errorf("image size = %v", b)
	}

	path := filepath.Join(t.TempDir(), "axis.png")
	if err := s.SavePNG(path); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
}
