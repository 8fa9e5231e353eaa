package ggsurface

import (
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggchart"
)

// Option configures a Surface during creation.
type Option func(*Surface)

// WithBackground clears the canvas to c before any drawing.
func WithBackground(c color.Color) Option {
	return func(s *Surface) {
		s.background = c
	}
}

// WithFontFile makes family resolve to the TrueType file at path for every
// style. The file is read on first use.
func WithFontFile(family, path string) Option {
	return func(s *Surface) {
		s.fonts.register(family, path)
	}
}

// Surface draws ggchart scales onto a gg.Context.
//
// Surface is not safe for concurrent use.
type Surface struct {
	dc         *gg.Context
	fonts      *fontCache
	background color.Color

	state state
	stack []state

	// err is the first font error met while drawing.
	err error
}

// state is the style saved by Save. The transform is saved by gg itself.
type state struct {
	font        ggchart.Font
	fillColor   color.Color
	strokeColor color.Color
	lineWidth   float64
	align       ggchart.TextAlign
	baseline    ggchart.TextBaseline
}

// New creates a width x height surface backed by a software gg.Context.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		dc:    gg.NewContext(width, height),
		fonts: newFontCache(),
		state: state{
			fillColor:   color.Black,
			strokeColor: color.Black,
			lineWidth:   1,
			align:       ggchart.AlignLeft,
			baseline:    ggchart.BaselineAlphabetic,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.background != nil {
		s.Clear(s.background)
	}
	return s
}

// Context returns the underlying gg.Context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Width returns the canvas width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the canvas height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered image to path.
func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// EncodePNG writes the rendered image as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// Clear fills the whole canvas with c.
func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// Err returns the first font error met by MeasureText or FillText.
// Text whose font fails to load is measured as zero width and not drawn.
func (s *Surface) Err() error { return s.err }

// Close releases the fonts and the gg.Context.
func (s *Surface) Close() error {
	ferr := s.fonts.close()
	if err := s.dc.Close(); err != nil {
		return err
	}
	return ferr
}

// Depth returns the number of unmatched Save calls.
func (s *Surface) Depth() int { return len(s.stack) }

func (s *Surface) face(f ggchart.Font) text.Face {
	face, err := s.fonts.face(f)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		ggchart.Logger().Warn("ggsurface: font unavailable", slog.String("font", f.String()), slog.Any("err", err))
		return nil
	}
	return face
}

// MeasureText implements ggchart.TextMeasurer.
func (s *Surface) MeasureText(f ggchart.Font, str string) float64 {
	if str == "" {
		return 0
	}
	face := s.face(f)
	if face == nil {
		return 0
	}
	return face.Advance(str)
}

// SetFont sets the font used by FillText.
func (s *Surface) SetFont(f ggchart.Font) { s.state.font = f }

// SetFillColor sets the text color.
func (s *Surface) SetFillColor(c color.Color) { s.state.fillColor = c }

// SetStrokeColor sets the stroke color.
func (s *Surface) SetStrokeColor(c color.Color) { s.state.strokeColor = c }

// SetLineWidth sets the stroke width.
func (s *Surface) SetLineWidth(w float64) { s.state.lineWidth = w }

// SetTextAlign sets the horizontal text anchor.
func (s *Surface) SetTextAlign(a ggchart.TextAlign) { s.state.align = a }

// SetTextBaseline sets the vertical text anchor.
func (s *Surface) SetTextBaseline(b ggchart.TextBaseline) { s.state.baseline = b }

// FillText draws str anchored at (x, y) with the current font, fill color
// and anchors. The current transform applies.
func (s *Surface) FillText(str string, x, y float64) {
	if str == "" || s.state.fillColor == nil {
		return
	}
	face := s.face(s.state.font)
	if face == nil {
		return
	}
	dx, dy := anchorOffset(face, str, s.state.align, s.state.baseline)
	s.dc.SetFont(face)
	s.dc.SetColor(s.state.fillColor)
	s.dc.DrawString(str, x+dx, y+dy)
}

// anchorOffset returns the shift from the anchor point to the start of the
// baseline for the given alignment.
func anchorOffset(face text.Face, str string, align ggchart.TextAlign, baseline ggchart.TextBaseline) (dx, dy float64) {
	switch align {
	case ggchart.AlignCenter:
		dx = -face.Advance(str) / 2
	case ggchart.AlignRight:
		dx = -face.Advance(str)
	}
	m := face.Metrics()
	switch baseline {
	case ggchart.BaselineTop:
		dy = m.Ascent
	case ggchart.BaselineMiddle:
		dy = (m.Ascent - m.Descent) / 2
	case ggchart.BaselineBottom:
		dy = -m.Descent
	}
	return dx, dy
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() { s.dc.ClearPath() }

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo adds a line to (x, y).
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// Stroke strokes and clears the current path with the stroke color and
// line width.
func (s *Surface) Stroke() error {
	if s.state.strokeColor == nil {
		s.dc.ClearPath()
		return nil
	}
	s.dc.SetColor(s.state.strokeColor)
	s.dc.SetLineWidth(s.state.lineWidth)
	return s.dc.Stroke()
}

// Save pushes the style and the gg transform.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
	s.dc.Push()
}

// Restore pops the state pushed by the matching Save. Without one it is a
// no-op.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.dc.Pop()
}

// Translate moves the origin.
func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }

// Rotate rotates the transform by angle radians.
func (s *Surface) Rotate(angle float64) { s.dc.Rotate(angle) }

var _ ggchart.Surface = (*Surface)(nil)
