package ggchart

import "math"

// PixelForTick returns the pixel coordinate of the tick at index along the axis.
//
// Horizontal axes divide the inner width into one step per tick gap (one per
// tick when OffsetGridLines is set), add half a step when includeOffset is
// true, and round to a whole pixel.
//
// Vertical axes divide the inner height by tickCount-1 and neither honor
// includeOffset nor round. The vertical position is measured from Top
// without adding the top padding. With fewer than two ticks every index
// maps to Top.
func (s *Scale) PixelForTick(index int, includeOffset bool) float64 {
	n := s.TickCount()
	if s.IsHorizontal() {
		innerWidth := s.Width - (s.Padding.Left + s.Padding.Right)
		gaps := n
		if !s.opts.GridLines.OffsetGridLines {
			gaps--
		}
		tickWidth := innerWidth / float64(max(gaps, 1))
		pixel := tickWidth*float64(index) + s.Padding.Left
		if includeOffset {
			pixel += tickWidth / 2
		}
		return s.Left + roundPixel(pixel)
	}

	if n < 2 {
		return s.Top
	}
	innerHeight := s.Height - (s.Padding.Top + s.Padding.Bottom)
	return s.Top + float64(index)*(innerHeight/float64(n-1))
}

// PixelForDecimal maps a fraction in [0, 1] of the axis to a pixel.
//
// Horizontal axes map across the inner width and round. Vertical axes map
// across Height/tickCount without rounding. includeOffset is accepted for
// symmetry with PixelForTick and currently has no effect.
func (s *Scale) PixelForDecimal(decimal float64, includeOffset bool) float64 {
	if s.IsHorizontal() {
		innerWidth := s.Width - (s.Padding.Left + s.Padding.Right)
		return s.Left + roundPixel(innerWidth*decimal+s.Padding.Left)
	}

	n := s.TickCount()
	if n == 0 {
		return s.Top
	}
	return s.Top + decimal*(s.Height/float64(n))
}

// roundPixel rounds half-way values up, toward positive infinity.
func roundPixel(v float64) float64 {
	return math.Floor(v + 0.5)
}
