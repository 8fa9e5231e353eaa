package recording

import (
	"errors"

	"github.com/gogpu/ggchart"
)

// ErrNilSurface is returned by Playback when no destination is given.
var ErrNilSurface = errors.New("recording: nil surface")

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands in call order.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command { return r.commands }

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Texts returns every FillText command in call order.
func (r *Recording) Texts() []FillTextCommand {
	var out []FillTextCommand
	for _, c := range r.commands {
		if t, ok := c.(FillTextCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Strokes returns every StrokePath command in call order.
func (r *Recording) Strokes() []StrokePathCommand {
	var out []StrokePathCommand
	for _, c := range r.commands {
		if s, ok := c.(StrokePathCommand); ok {
			out = append(out, s)
		}
	}
	return out
}

// Playback replays the recording onto dst call by call. Replay stops at
// the first failing stroke and returns its error.
func (r *Recording) Playback(dst ggchart.Surface) error {
	if dst == nil {
		return ErrNilSurface
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			dst.Save()
		case RestoreCommand:
			dst.Restore()
		case TranslateCommand:
			dst.Translate(c.X, c.Y)
		case RotateCommand:
			dst.Rotate(c.Angle)
		case SetFontCommand:
			dst.SetFont(c.Font)
		case SetFillColorCommand:
			dst.SetFillColor(c.Color)
		case SetStrokeColorCommand:
			dst.SetStrokeColor(c.Color)
		case SetLineWidthCommand:
			dst.SetLineWidth(c.Width)
		case SetTextAlignCommand:
			dst.SetTextAlign(c.Align)
		case SetTextBaselineCommand:
			dst.SetTextBaseline(c.Baseline)
		case StrokePathCommand:
			dst.BeginPath()
			for _, seg := range c.Segments {
				dst.MoveTo(seg.From.X, seg.From.Y)
				dst.LineTo(seg.To.X, seg.To.Y)
			}
			if err := dst.Stroke(); err != nil {
				return err
			}
		case FillTextCommand:
			dst.FillText(c.Text, c.X, c.Y)
		}
	}
	return nil
}
