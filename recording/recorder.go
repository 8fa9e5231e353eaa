package recording

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// MeasureFunc adapts a function to ggchart.TextMeasurer.
type MeasureFunc func(font ggchart.Font, s string) float64

// MeasureText implements ggchart.TextMeasurer.
func (f MeasureFunc) MeasureText(font ggchart.Font, s string) float64 {
	return f(font, s)
}

// FixedAdvance returns a measurer that advances every rune by ratio times
// the font size.
func FixedAdvance(ratio float64) ggchart.TextMeasurer {
	return MeasureFunc(func(font ggchart.Font, s string) float64 {
		return float64(utf8.RuneCountInString(s)) * font.Size * ratio
	})
}

// DefaultAdvance is the per-rune advance, as a fraction of the font size,
// used when no measurer is configured.
const DefaultAdvance = 0.5

// Option configures a Recorder.
type Option func(*Recorder)

// WithMeasurer makes the Recorder measure text with m. Use the raster
// surface as m to record exactly the layout it would produce.
func WithMeasurer(m ggchart.TextMeasurer) Option {
	return func(r *Recorder) {
		if m != nil {
			r.measurer = m
		}
	}
}

// Recorder captures ggchart.Surface calls as commands.
// Use FinishRecording to obtain an immutable Recording.
type Recorder struct {
	width, height int
	commands      []Command
	measurer      ggchart.TextMeasurer

	// Current path being built
	path []Segment
	pen  gg.Point
	open bool

	state      recorderState
	stateStack []recorderState
}

// recorderState stores the graphics state for Save/Restore.
type recorderState struct {
	transform   gg.Matrix
	font        ggchart.Font
	fillColor   color.Color
	strokeColor color.Color
	lineWidth   float64
	align       ggchart.TextAlign
	baseline    ggchart.TextBaseline
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with black fill and stroke, a 1px line width,
// left/alphabetic text anchoring and the identity transform.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 256),
		measurer:   FixedAdvance(DefaultAdvance),
		stateStack: make([]recorderState, 0, 8),
		state: recorderState{
			transform:   gg.Identity(),
			fillColor:   color.Black,
			strokeColor: color.Black,
			lineWidth:   1,
			align:       ggchart.AlignLeft,
			baseline:    ggchart.BaselineAlphabetic,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stateStack) }

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() gg.Matrix { return r.state.transform }

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// MeasureText implements ggchart.TextMeasurer.
func (r *Recorder) MeasureText(font ggchart.Font, s string) float64 {
	return r.measurer.MeasureText(font, s)
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save saves the current graphics state to the stack.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.state)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved graphics state.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.state = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.commands = append(r.commands, RestoreCommand{})
}

// Translate applies a translation to the transformation matrix.
func (r *Recorder) Translate(x, y float64) {
	r.state.transform = r.state.transform.Multiply(gg.Translate(x, y))
	r.commands = append(r.commands, TranslateCommand{X: x, Y: y})
}

// Rotate applies a rotation (angle in radians).
func (r *Recorder) Rotate(angle float64) {
	r.state.transform = r.state.transform.Multiply(gg.Rotate(angle))
	r.commands = append(r.commands, RotateCommand{Angle: angle})
}

// --------------------------------------------------------------------------
// Style
// --------------------------------------------------------------------------

// SetFont sets the font used by FillText.
func (r *Recorder) SetFont(font ggchart.Font) {
	r.state.font = font
	r.commands = append(r.commands, SetFontCommand{Font: font})
}

// SetFillColor sets the text color.
func (r *Recorder) SetFillColor(c color.Color) {
	r.state.fillColor = c
	r.commands = append(r.commands, SetFillColorCommand{Color: c})
}

// SetStrokeColor sets the stroke color.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.state.strokeColor = c
	r.commands = append(r.commands, SetStrokeColorCommand{Color: c})
}

// SetLineWidth sets the stroke line width.
func (r *Recorder) SetLineWidth(width float64) {
	r.state.lineWidth = width
	r.commands = append(r.commands, SetLineWidthCommand{Width: width})
}

// SetTextAlign sets the horizontal text anchor.
func (r *Recorder) SetTextAlign(a ggchart.TextAlign) {
	r.state.align = a
	r.commands = append(r.commands, SetTextAlignCommand{Align: a})
}

// SetTextBaseline sets the vertical text anchor.
func (r *Recorder) SetTextBaseline(b ggchart.TextBaseline) {
	r.state.baseline = b
	r.commands = append(r.commands, SetTextBaselineCommand{Baseline: b})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// BeginPath discards the current path.
func (r *Recorder) BeginPath() {
	r.path = r.path[:0]
	r.open = false
}

// MoveTo starts a new subpath at (x, y).
func (r *Recorder) MoveTo(x, y float64) {
	r.pen = gg.Pt(x, y)
	r.open = true
}

// LineTo adds a segment from the current point to (x, y). Without a
// current point it behaves like MoveTo.
func (r *Recorder) LineTo(x, y float64) {
	p := gg.Pt(x, y)
	if r.open {
		r.path = append(r.path, Segment{From: r.pen, To: p})
	}
	r.pen = p
	r.open = true
}

// Stroke records the current path and clears it. Stroking an empty path
// records nothing.
func (r *Recorder) Stroke() error {
	if len(r.path) == 0 {
		r.BeginPath()
		return nil
	}
	m := r.state.transform
	user := make([]Segment, len(r.path))
	device := make([]Segment, len(r.path))
	copy(user, r.path)
	for i, seg := range r.path {
		device[i] = Segment{From: m.TransformPoint(seg.From), To: m.TransformPoint(seg.To)}
	}
	r.commands = append(r.commands, StrokePathCommand{
		Segments: user,
		Device:   device,
		Color:    r.state.strokeColor,
		Width:    r.state.lineWidth,
	})
	r.BeginPath()
	return nil
}

// FillText records text anchored at (x, y) with the current style.
func (r *Recorder) FillText(s string, x, y float64) {
	m := r.state.transform
	r.commands = append(r.commands, FillTextCommand{
		Text:     s,
		X:        x,
		Y:        y,
		Anchor:   m.TransformPoint(gg.Pt(x, y)),
		Angle:    math.Atan2(m.D, m.A),
		Width:    r.measurer.MeasureText(r.state.font, s),
		Font:     r.state.font,
		Color:    r.state.fillColor,
		Align:    r.state.align,
		Baseline: r.state.baseline,
	})
}

var _ ggchart.Surface = (*Recorder)(nil)
