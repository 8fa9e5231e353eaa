package ggchart

import (
	"log/slog"
	"math"

	"github.com/bits-and-blooms/bitset"
)

const (
	// tickMarkLength is the length of the tick mark drawn next to the axis.
	tickMarkLength = 10

	// labelOffset and rotatedLabelOffset place horizontal labels below Top.
	labelOffset        = 8
	rotatedLabelOffset = 12

	// labelSpacing is the room a horizontal label needs beyond its font size
	// before the renderer starts skipping labels.
	labelSpacing = 4
)

// Draw renders gridlines, tick labels and the axis title. Gridlines extend
// into chartArea when DrawOnChartArea is set. Draw does nothing when the
// axis is hidden.
//
// Every style and transform change is made inside a Save/Restore pair, so
// the surface is left as Draw found it. The first failing gridline stroke
// stops drawing and is returned as a *StrokeError.
func (s *Scale) Draw(chartArea Rect) error {
	if !s.opts.Display {
		return nil
	}
	return withState(s.ctx, func() error {
		if c := s.opts.Ticks.Color; c != nil {
			s.ctx.SetFillColor(c)
		}
		if s.IsHorizontal() {
			return s.drawHorizontal(chartArea)
		}
		return s.drawVertical(chartArea)
	})
}

// LabelStride returns k such that only every k-th tick of a horizontal axis
// is drawn. It is 1 when all labels fit along the inner width.
func (s *Scale) LabelStride() int {
	n := s.TickCount()
	if !s.IsHorizontal() || n == 0 {
		return 1
	}
	inner := s.Width - (s.Padding.Left + s.Padding.Right)
	needed := (s.opts.Ticks.Font.Size + labelSpacing) * float64(n)
	if needed <= inner {
		return 1
	}
	if inner <= 0 {
		return n
	}
	return 1 + int(math.Floor(needed/inner))
}

// visibleTicks returns the set of tick indices Draw renders.
func (s *Scale) visibleTicks() *bitset.BitSet {
	n := s.TickCount()
	stride := s.LabelStride()
	visible := bitset.New(uint(n))
	for i := 0; i < n; i += stride {
		if !s.IsBlank(i) {
			visible.Set(uint(i))
		}
	}
	if stride > 1 {
		Logger().Debug("ggchart: skipping tick labels",
			slog.Int("ticks", n),
			slog.Int("stride", stride),
			slog.Uint64("drawn", uint64(visible.Count())))
	}
	return visible
}

// gridStyle tracks the gridline stroke style so it is only reassigned when
// it changes between the zero line and regular lines.
type gridStyle struct {
	s         *Scale
	stale     bool
	lineWidth float64
}

// apply sets the style for the gridline at index and returns its width.
func (g *gridStyle) apply(index int) float64 {
	opts := g.s.opts.GridLines
	switch {
	case index == g.s.ZeroLineIndex:
		g.lineWidth = opts.ZeroLineWidth
		g.s.ctx.SetLineWidth(opts.ZeroLineWidth)
		g.s.ctx.SetStrokeColor(opts.ZeroLineColor)
		g.stale = true
	case g.stale:
		g.lineWidth = opts.LineWidth
		g.s.ctx.SetLineWidth(opts.LineWidth)
		g.s.ctx.SetStrokeColor(opts.Color)
		g.stale = false
	}
	return g.lineWidth
}

// strokeSegments strokes the tick mark segment and the chart area segment of
// one gridline according to the DrawTicks and DrawOnChartArea options.
func (s *Scale) strokeSegments(index int, tick, area [4]float64) error {
	opts := s.opts.GridLines
	s.ctx.BeginPath()
	if opts.DrawTicks {
		s.ctx.MoveTo(tick[0], tick[1])
		s.ctx.LineTo(tick[2], tick[3])
	}
	if opts.DrawOnChartArea {
		s.ctx.MoveTo(area[0], area[1])
		s.ctx.LineTo(area[2], area[3])
	}
	if err := s.ctx.Stroke(); err != nil {
		Logger().Warn("ggchart: gridline stroke failed", slog.Int("index", index), slog.Any("err", err))
		return &StrokeError{Index: index, Err: err}
	}
	return nil
}

// drawText draws text at (x, y) rotated by angle radians inside its own
// Save/Restore scope.
func (s *Scale) drawText(text string, font Font, x, y, angle float64, align TextAlign, baseline TextBaseline) {
	_ = withState(s.ctx, func() error {
		s.ctx.Translate(x, y)
		if angle != 0 {
			s.ctx.Rotate(angle)
		}
		s.ctx.SetFont(font)
		s.ctx.SetTextAlign(align)
		s.ctx.SetTextBaseline(baseline)
		s.ctx.FillText(text, 0, 0)
		return nil
	})
}

func (s *Scale) drawHorizontal(chartArea Rect) error {
	opts := s.opts
	tickStart, tickEnd := s.Top, s.Top+tickMarkLength
	if opts.Position != PositionBottom {
		tickStart, tickEnd = s.Bottom-tickMarkLength, s.Bottom
	}

	rotated := s.LabelRotation != 0
	labelY := s.Top + labelOffset
	align, baseline := AlignCenter, BaselineTop
	if rotated {
		labelY = s.Top + rotatedLabelOffset
		align, baseline = AlignRight, BaselineMiddle
	}
	angle := -toRadians(float64(s.LabelRotation))

	visible := s.visibleTicks()
	style := gridStyle{s: s, stale: true}
	for i, label := range s.labels {
		if !visible.Test(uint(i)) {
			continue
		}
		lineX := s.PixelForTick(i, false)
		labelX := s.PixelForTick(i, opts.GridLines.OffsetGridLines)

		if opts.GridLines.Show {
			lineX += aliasPixel(style.apply(i))
			err := s.strokeSegments(i,
				[4]float64{lineX, tickStart, lineX, tickEnd},
				[4]float64{lineX, chartArea.Top, lineX, chartArea.Bottom})
			if err != nil {
				return err
			}
		}

		if opts.Ticks.Show {
			s.drawText(label, opts.Ticks.Font, labelX, labelY, angle, align, baseline)
		}
	}

	if opts.ScaleLabel.Show {
		title := opts.ScaleLabel
		x := s.Left + (s.Right-s.Left)/2
		y := s.Top + title.Font.Size/2
		if opts.Position == PositionBottom {
			y = s.Bottom - title.Font.Size/2
		}
		s.drawTitle(x, y, 0)
	}
	return nil
}

func (s *Scale) drawVertical(chartArea Rect) error {
	opts := s.opts
	tickStart, tickEnd := s.Left-tickMarkLength, s.Left
	if opts.Position == PositionLeft {
		tickStart, tickEnd = s.Right, s.Right+tickMarkLength
	}

	labelX := s.Left + s.Width/2
	angle := -toRadians(float64(s.LabelRotation))

	style := gridStyle{s: s, stale: true}
	for i, label := range s.labels {
		if s.IsBlank(i) {
			continue
		}
		lineY := s.PixelForTick(i, false)
		labelY := s.PixelForTick(i, opts.GridLines.OffsetGridLines)

		if opts.GridLines.Show {
			lineY += aliasPixel(style.apply(i))
			err := s.strokeSegments(i,
				[4]float64{tickStart, lineY, tickEnd, lineY},
				[4]float64{chartArea.Left, lineY, chartArea.Right, lineY})
			if err != nil {
				return err
			}
		}

		if opts.Ticks.Show {
			s.drawText(label, opts.Ticks.Font, labelX, labelY, angle, AlignCenter, BaselineMiddle)
		}
	}

	if opts.ScaleLabel.Show {
		title := opts.ScaleLabel
		x := s.Right - title.Font.Size/2
		angle := math.Pi / 2
		if opts.Position == PositionLeft {
			x = s.Left + title.Font.Size/2
			angle = -math.Pi / 2
		}
		s.drawTitle(x, s.Top+(s.Bottom-s.Top)/2, angle)
	}
	return nil
}

// drawTitle draws the axis title centered at (x, y).
func (s *Scale) drawTitle(x, y, angle float64) {
	title := s.opts.ScaleLabel
	_ = withState(s.ctx, func() error {
		if title.Color != nil {
			s.ctx.SetFillColor(title.Color)
		}
		s.drawText(title.LabelString, title.Font, x, y, angle, AlignCenter, BaselineMiddle)
		return nil
	})
}
