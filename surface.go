package ggchart

import "image/color"

// TextAlign is the horizontal anchor of drawn text relative to its point.
type TextAlign uint8

// Text alignments.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// String returns the CSS name of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unknown"
}

// TextBaseline is the vertical anchor of drawn text relative to its point.
type TextBaseline uint8

// Text baselines.
const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// String returns the CSS name of the baseline.
func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineTop:
		return "top"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	}
	return "unknown"
}

// TextMeasurer measures the advance width of a string in a given font.
// An empty string measures 0.
type TextMeasurer interface {
	MeasureText(f Font, s string) float64
}

// Surface is the immediate-mode drawing target a Scale renders onto.
//
// Its state (font, colors, line width, text anchors and transform) persists
// across calls. Save pushes all of it and Restore pops it; Scale never
// leaves a temporary transform or style applied after Draw returns.
//
// The ggsurface package adapts a gg.Context and the recording package
// captures commands for inspection.
type Surface interface {
	TextMeasurer

	SetFont(f Font)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)

	// FillText draws s at (x, y) with the current font, fill color and anchors.
	FillText(s string, x, y float64)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke strokes the current path with the stroke color and line width.
	Stroke() error

	Save()
	Restore()
	Translate(x, y float64)
	// Rotate rotates the current transform by angle radians.
	Rotate(angle float64)
}

// withState runs fn between Save and Restore. Restore runs on every exit
// path, including a panic inside fn.
func withState(sf Surface, fn func() error) error {
	sf.Save()
	defer sf.Restore()
	return fn()
}
