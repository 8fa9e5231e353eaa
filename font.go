package ggchart

import (
	"strconv"
	"strings"
)

// Font style keywords understood by the bundled surfaces.
const (
	FontStyleNormal     = "normal"
	FontStyleBold       = "bold"
	FontStyleItalic     = "italic"
	FontStyleBoldItalic = "bold italic"
)

// Font describes the typeface used for tick labels or the axis title.
type Font struct {
	// Size is the font size in pixels.
	Size float64

	// Style is a CSS-like style string such as "normal", "bold" or "italic".
	Style string

	// Family is the preferred font family name.
	Family string
}

// String returns the font in CSS shorthand form, e.g. "bold 12px Helvetica Neue".
// Surfaces use it as a cache key.
func (f Font) String() string {
	style := f.Style
	if style == "" {
		style = FontStyleNormal
	}
	var b strings.Builder
	b.WriteString(style)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}

// Bold reports whether the style asks for a bold weight.
func (f Font) Bold() bool {
	return strings.Contains(f.Style, "bold")
}

// Italic reports whether the style asks for an italic or oblique face.
func (f Font) Italic() bool {
	return strings.Contains(f.Style, "italic") || strings.Contains(f.Style, "oblique")
}
