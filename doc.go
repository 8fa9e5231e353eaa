// Package ggchart lays out and draws chart axes on a 2D drawing surface.
//
// # Overview
//
// A [Scale] is the base axis engine shared by every axis type of a chart.
// Given the space offered by the chart layout pass it measures the tick
// labels, picks a label rotation that keeps horizontal labels from
// overlapping, and reports the minimum size the axis needs. Later, [Scale.Draw]
// renders gridlines, tick labels and the axis title onto a [Surface].
//
// The core never decides which values to tick. A [Variant] (see the ticks
// sub-package for category and linear variants) supplies the raw tick values
// and maps data values to pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/ggsurface"
//	)
//
//	dc := ggsurface.New(640, 360)
//	defer dc.Close()
//
//	opts := ggchart.DefaultOptions()
//	opts.Position = ggchart.PositionBottom
//
//	s, _ := ggchart.New(dc, opts)
//	s.SetTicks([]any{"Jan", "Feb", "Mar"})
//	size := s.Update(600, 120, nil)
//
//	s.Place(ggchart.Rect{Left: 20, Top: 360 - size.Height, Right: 620, Bottom: 360})
//	_ = s.Draw(ggchart.Rect{Left: 20, Top: 10, Right: 620, Bottom: 360 - size.Height})
//	_ = dc.SavePNG("axis.png")
//
// # Lifecycle
//
// [Scale.Update] runs a fixed sequence of stages (see [Stages]). Every stage
// is bracketed by Before and After hooks, and the stage body itself may be
// replaced, which lets concrete axis types add behavior without changing the
// order:
//
//	setDimensions -> buildTicks -> convertTicksToLabels -> calculateTickRotation -> fit
//
// # Coordinate System
//
// Same as gg: origin at top-left, X increases right, Y increases down.
// Label rotation is expressed in integer degrees and applied counter-clockwise.
//
// # Concurrency
//
// A Scale and the Surface it draws on are not safe for concurrent use.
package ggchart
