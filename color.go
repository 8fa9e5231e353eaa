package ggchart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ParseColor converts a CSS-style color string into a color.Color.
//
// Supported forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)" with 0-255 channels and 0-1 alpha
//   - "black", "white", "transparent"
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "black":
		return toNRGBA(gg.Black), nil
	case "white":
		return toNRGBA(gg.White), nil
	case "transparent":
		return toNRGBA(gg.Transparent), nil
	}

	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 4, 5, 7, 9:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return toNRGBA(gg.Hex(s)), nil
	}

	var args string
	var wantAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args, wantAlpha = s[len("rgba("):len(s)-1], true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	parts := strings.Split(args, ",")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		if i < 3 {
			v /= 255
		}
		ch[i] = v
	}
	return toNRGBA(gg.RGBA2(ch[0], ch[1], ch[2], ch[3])), nil
}

// toNRGBA rounds each channel of c to the nearest 8-bit value.
func toNRGBA(c gg.RGBA) color.NRGBA {
	ch := func(v float64) uint8 {
		return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is meant for package-level defaults.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
