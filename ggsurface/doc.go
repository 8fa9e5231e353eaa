// Package ggsurface renders ggchart scales onto a gg.Context.
//
// Surface adapts the gg immediate-mode API to ggchart.Surface:
//
//	dc := ggsurface.New(640, 360, ggsurface.WithBackground(color.White))
//	defer dc.Close()
//
//	axis, _ := ggchart.New(dc, ggchart.DefaultOptions())
//	...
//	_ = axis.Draw(area)
//	_ = dc.SavePNG("axis.png")
//
// gg.Context.Push and Pop only save the transform, clip and mask, and gg
// uses one brush for fills and strokes. Surface therefore keeps its own
// style stack and selects the right color before every FillText and Stroke.
//
// Fonts are resolved from the Go font family embedded in
// golang.org/x/image/font/gofont. Families containing "mono" map to Go Mono,
// everything else to Go Regular, with bold and italic variants picked from
// the font style. Additional TrueType files can be registered per family
// with WithFontFile.
package ggsurface
