package ggchart

import (
	"fmt"
	"math"
	"strings"
)

// Position is the side of the chart area an axis is attached to.
type Position string

// Axis positions.
const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// Horizontal reports whether an axis at p runs left to right.
func (p Position) Horizontal() bool {
	return p == PositionTop || p == PositionBottom
}

// Valid reports whether p is one of the four known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionTop, PositionBottom, PositionLeft, PositionRight:
		return true
	}
	return false
}

// ParsePosition converts a position name such as "left" into a Position.
// Matching is case-insensitive.
func ParsePosition(name string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(name)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, name)
	}
	return p, nil
}

// Margins is space already reserved at each edge by neighbouring boxes.
// It is subtracted from the scale padding during layout.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Padding is the space a scale keeps free at each edge of its box.
// Every component is kept >= 0.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// subtract removes margins from p and clamps every edge at zero.
func (p *Padding) subtract(m Margins) {
	p.Left = math.Max(p.Left-m.Left, 0)
	p.Top = math.Max(p.Top-m.Top, 0)
	p.Right = math.Max(p.Right-m.Right, 0)
	p.Bottom = math.Max(p.Bottom-m.Bottom, 0)
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle described by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// aliasPixel returns the offset that keeps odd-width lines on pixel centers.
func aliasPixel(lineWidth float64) float64 {
	if math.Mod(lineWidth, 2) == 0 {
		return 0
	}
	return 0.5
}
