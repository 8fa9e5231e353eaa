package cli

import (
	"fmt"

	"github.com/gogpu/ggchart"
)

// layoutPasses bounds how often vertical and horizontal axes are refitted
// against each other.
const layoutPasses = 3

type axis struct {
	pos   ggchart.Position
	scale *ggchart.Scale
}

// chart is a set of axes laid out around a shared chart area.
type chart struct {
	axes []*axis
	area ggchart.Rect
}

// buildChart creates one scale per configured axis on sf and lays them out
// inside a width x height canvas.
func buildChart(sf ggchart.Surface, cfg chartConfig) (*chart, error) {
	c := &chart{}
	for i, ac := range cfg.Axes {
		opts, err := ac.options(cfg.FontFamily)
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		v, err := ac.variant()
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		s, err := ggchart.New(sf, opts, ggchart.WithVariant(v))
		if err != nil {
			return nil, err
		}
		c.axes = append(c.axes, &axis{pos: opts.Position, scale: s})
	}

	pad := *cfg.Padding
	outer := ggchart.Rect{
		Left:   pad,
		Top:    pad,
		Right:  float64(cfg.Width) - pad,
		Bottom: float64(cfg.Height) - pad,
	}
	c.layout(outer)
	return c, nil
}

// layout fits vertical axes to the remaining height and horizontal axes to
// the remaining width until the reserved edges stop changing, then places
// every axis next to the chart area. Several axes on one side stack outwards.
func (c *chart) layout(outer ggchart.Rect) {
	var left, right, top, bottom float64
	for range layoutPasses {
		var nl, nr, nt, nb float64
		margins := &ggchart.Margins{Top: top, Bottom: bottom}
		for _, a := range c.vertical() {
			size := a.scale.Update(outer.Width()/2, outer.Height()-top-bottom, margins)
			if a.pos == ggchart.PositionLeft {
				nl += size.Width
			} else {
				nr += size.Width
			}
		}
		margins = &ggchart.Margins{Left: nl, Right: nr}
		for _, a := range c.horizontal() {
			a.scale.ReservedLeftWidth = nl
			size := a.scale.Update(outer.Width()-nl-nr, outer.Height()/2, margins)
			if a.pos == ggchart.PositionTop {
				nt += size.Height
			} else {
				nb += size.Height
			}
		}
		stable := nl == left && nr == right && nt == top && nb == bottom
		left, right, top, bottom = nl, nr, nt, nb
		if stable {
			break
		}
	}

	c.area = ggchart.Rect{
		Left:   outer.Left + left,
		Top:    outer.Top + top,
		Right:  outer.Right - right,
		Bottom: outer.Bottom - bottom,
	}

	var l, r, t, b float64
	for _, a := range c.axes {
		s := a.scale
		switch a.pos {
		case ggchart.PositionLeft:
			s.Place(ggchart.Rect{Left: c.area.Left - l - s.Width, Top: c.area.Top, Right: c.area.Left - l, Bottom: c.area.Bottom})
			l += s.Width
		case ggchart.PositionRight:
			s.Place(ggchart.Rect{Left: c.area.Right + r, Top: c.area.Top, Right: c.area.Right + r + s.Width, Bottom: c.area.Bottom})
			r += s.Width
		case ggchart.PositionTop:
			s.Place(ggchart.Rect{Left: c.area.Left, Top: c.area.Top - t - s.Height, Right: c.area.Right, Bottom: c.area.Top - t})
			t += s.Height
		default:
			s.Place(ggchart.Rect{Left: c.area.Left, Top: c.area.Bottom + b, Right: c.area.Right, Bottom: c.area.Bottom + b + s.Height})
			b += s.Height
		}
	}
}

func (c *chart) vertical() []*axis {
	var out []*axis
	for _, a := range c.axes {
		if !a.pos.Horizontal() {
			out = append(out, a)
		}
	}
	return out
}

func (c *chart) horizontal() []*axis {
	var out []*axis
	for _, a := range c.axes {
		if a.pos.Horizontal() {
			out = append(out, a)
		}
	}
	return out
}

// draw renders every axis with gridlines spanning the chart area.
func (c *chart) draw() error {
	for _, a := range c.axes {
		if err := a.scale.Draw(c.area); err != nil {
			return fmt.Errorf("draw %s axis: %w", a.pos, err)
		}
	}
	return nil
}
