package ggchart

import (
	"log/slog"
	"math"
)

const (
	// labelGap is the horizontal room kept on either side of a label.
	labelGap = 3

	// tickOverlapMargin is subtracted from the tick spacing before comparing
	// it with the label width.
	tickOverlapMargin = 2 * labelGap
)

// CalculateTickRotation picks the smallest integer label rotation at which
// the longest label fits between two adjacent ticks of a horizontal axis.
//
// The search advances one degree at a time up to MaxRotation. A rotation
// whose label would be taller than MaxHeight is rejected and the previous
// degree kept; this check wins over the horizontal fit. When labels still
// overlap at MaxRotation the search stops there.
//
// Vertical and hidden axes get no rotation and no horizontal padding.
func (s *Scale) CalculateTickRotation() {
	font := s.opts.Ticks.Font
	firstWidth, lastWidth := s.edgeLabelWidths(font)

	s.Padding.Left = firstWidth/2 + labelGap
	s.Padding.Right = lastWidth/2 + labelGap
	s.LabelRotation = 0

	if s.opts.Display && s.IsHorizontal() {
		longest := s.longestLabelWidth(font)
		s.LabelWidth = longest

		tickWidth := s.PixelForTick(1, false) - s.PixelForTick(0, false) - tickOverlapMargin
		halfFont := font.Size / 2
		maxRotation := s.opts.Ticks.MaxRotation

		for s.LabelWidth > tickWidth && s.LabelRotation <= maxRotation {
			rad := toRadians(float64(s.LabelRotation))
			cos, sin := math.Cos(rad), math.Sin(rad)

			// Rotated labels are right aligned, so only the first one can
			// reach past the left edge.
			if firstRotated := cos * firstWidth; firstRotated+halfFont > s.ReservedLeftWidth {
				s.Padding.Left = firstRotated + halfFont
			}
			s.Padding.Right = halfFont

			if sin*longest > s.MaxHeight {
				s.LabelRotation--
				break
			}

			s.LabelRotation++
			s.LabelWidth = cos * longest
		}
		s.LabelRotation = min(max(s.LabelRotation, 0), max(maxRotation, 0))
	} else {
		s.LabelWidth = 0
		s.Padding.Left = 0
		s.Padding.Right = 0
	}

	s.Padding.Left = math.Max(s.Padding.Left-s.Margins.Left, 0)
	s.Padding.Right = math.Max(s.Padding.Right-s.Margins.Right, 0)

	Logger().Debug("ggchart: tick rotation",
		slog.String("position", string(s.opts.Position)),
		slog.Int("rotation", s.LabelRotation),
		slog.Float64("labelWidth", s.LabelWidth))
}
