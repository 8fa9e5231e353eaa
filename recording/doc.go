// Package recording captures the drawing calls a ggchart.Scale makes.
//
// A Recorder implements ggchart.Surface. Instead of rasterizing, it stores
// every call as a typed command so layout and rendering can be inspected,
// compared in tests or replayed onto another surface later.
//
// Drawing commands carry the device-space geometry that results from the
// current transform, so a StrokePathCommand or FillTextCommand can be checked
// without replaying the transform stack.
//
// # Example
//
//	rec := recording.NewRecorder(640, 360)
//	axis, _ := ggchart.New(rec, ggchart.DefaultOptions())
//	axis.SetTicks(values)
//	axis.Update(640, 80, nil)
//	axis.Place(ggchart.Rect{Left: 0, Top: 280, Right: 640, Bottom: 360})
//	_ = axis.Draw(chartArea)
//
//	r := rec.FinishRecording()
//	r.WriteTo(os.Stdout)           // text dump
//	_ = r.Playback(pngSurface)     // replay onto a raster surface
//
// The Recorder is not safe for concurrent use.
package recording
