package recording

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current state
	CmdRestore                      // Restore previous state
	CmdTranslate                    // Translate the transform
	CmdRotate                       // Rotate the transform

	// Style commands
	CmdSetFont         // Set text font
	CmdSetFillColor    // Set text fill color
	CmdSetStrokeColor  // Set stroke color
	CmdSetLineWidth    // Set stroke line width
	CmdSetTextAlign    // Set horizontal text anchor
	CmdSetTextBaseline // Set vertical text anchor

	// Drawing commands
	CmdStrokePath // Stroke a path of line segments
	CmdFillText   // Fill text
)

var commandTypeNames = [...]string{
	CmdSave:            "Save",
	CmdRestore:         "Restore",
	CmdTranslate:       "Translate",
	CmdRotate:          "Rotate",
	CmdSetFont:         "SetFont",
	CmdSetFillColor:    "SetFillColor",
	CmdSetStrokeColor:  "SetStrokeColor",
	CmdSetLineWidth:    "SetLineWidth",
	CmdSetTextAlign:    "SetTextAlign",
	CmdSetTextBaseline: "SetTextBaseline",
	CmdStrokePath:      "StrokePath",
	CmdFillText:        "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current graphics state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved graphics state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the origin by (X, Y) in user space.
type TranslateCommand struct {
	X, Y float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand rotates the user space by Angle radians.
type RotateCommand struct {
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFontCommand sets the text font.
type SetFontCommand struct {
	Font ggchart.Font
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// SetFillColorCommand sets the color used by FillText.
type SetFillColorCommand struct {
	Color color.Color
}

// Type implements Command.
func (SetFillColorCommand) Type() CommandType { return CmdSetFillColor }

// SetStrokeColorCommand sets the color used by Stroke.
type SetStrokeColorCommand struct {
	Color color.Color
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

// SetLineWidthCommand sets the stroke line width.
type SetLineWidthCommand struct {
	// Width is the line width in pixels.
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetTextAlignCommand sets the horizontal text anchor.
type SetTextAlignCommand struct {
	Align ggchart.TextAlign
}

// Type implements Command.
func (SetTextAlignCommand) Type() CommandType { return CmdSetTextAlign }

// SetTextBaselineCommand sets the vertical text anchor.
type SetTextBaselineCommand struct {
	Baseline ggchart.TextBaseline
}

// Type implements Command.
func (SetTextBaselineCommand) Type() CommandType { return CmdSetTextBaseline }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// Segment is a straight line from one point to another.
type Segment struct {
	From, To gg.Point
}

// StrokePathCommand strokes the path built since the last BeginPath.
type StrokePathCommand struct {
	// Segments are the path segments in user space, as passed to MoveTo
	// and LineTo.
	Segments []Segment

	// Device holds Segments mapped through the transform active at the
	// time of the stroke.
	Device []Segment

	// Color and Width are the stroke style in effect.
	Color color.Color
	Width float64
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillTextCommand draws text anchored at a point.
type FillTextCommand struct {
	// Text is the string to render.
	Text string

	// X and Y are the anchor point in user space.
	X, Y float64

	// Anchor is the anchor point in device space.
	Anchor gg.Point

	// Angle is the rotation of the text baseline in radians, taken from
	// the active transform.
	Angle float64

	// Width is the measured advance of Text in Font.
	Width float64

	Font     ggchart.Font
	Color    color.Color
	Align    ggchart.TextAlign
	Baseline ggchart.TextBaseline
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }
