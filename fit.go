package ggchart

import (
	"log/slog"
	"math"
)

const (
	// gridLineMinSize is the constrained dimension reserved for tick marks.
	gridLineMinSize = 10

	// lineHeightFactor converts a font size into a line height.
	lineHeightFactor = 1.5
)

// Fit computes MinSize and the final padding for the rotation chosen by
// CalculateTickRotation, then sets Width and Height to MinSize.
//
// The unconstrained dimension (width of a horizontal axis, height of a
// vertical one) always receives the full offered size. The constrained
// dimension grows with the labels and the title: a horizontal axis is capped
// at MaxHeight, a vertical axis expands to at most MaxWidth.
func (s *Scale) Fit() {
	horizontal := s.IsHorizontal()
	display := s.opts.Display

	base := 0.0
	if s.opts.GridLines.Show && display {
		base = gridLineMinSize
	}

	s.MinSize = Size{}
	if horizontal {
		s.MinSize.Width = s.MaxWidth
		s.MinSize.Height = base
	} else {
		s.MinSize.Width = base
		s.MinSize.Height = s.MaxHeight
	}

	if s.opts.ScaleLabel.Show {
		titleHeight := s.opts.ScaleLabel.Font.Size * lineHeightFactor
		if horizontal {
			s.MinSize.Height += titleHeight
		} else {
			s.MinSize.Width += titleHeight
		}
	}

	s.Padding = Padding{}

	if s.opts.Ticks.Show && display {
		font := s.opts.Ticks.Font
		longest := s.longestLabelWidth(font)

		if horizontal {
			labelHeight := math.Sin(toRadians(float64(s.LabelRotation)))*longest + lineHeightFactor*font.Size
			s.MinSize.Height = math.Min(s.MaxHeight, s.MinSize.Height+labelHeight)

			// Keep the first and last labels inside the box.
			first, last := s.edgeLabelWidths(font)
			s.Padding.Left = first / 2
			s.Padding.Right = last / 2
		} else {
			if maxLabelWidth := s.MaxWidth - s.MinSize.Width; longest < maxLabelWidth {
				s.MinSize.Width += longest
			} else {
				s.MinSize.Width = s.MaxWidth
			}
			s.Padding.Top = font.Size / 2
			s.Padding.Bottom = font.Size / 2
		}
	}

	if horizontal {
		s.MinSize.Height = math.Min(s.MaxHeight, s.MinSize.Height)
	}

	s.Padding.subtract(s.Margins)

	s.Width = s.MinSize.Width
	s.Height = s.MinSize.Height

	Logger().Debug("ggchart: scale fit",
		slog.String("position", string(s.opts.Position)),
		slog.Float64("width", s.Width),
		slog.Float64("height", s.Height))
}
