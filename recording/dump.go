package recording

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes a human-readable listing of the recording to w, one
// command per line. Drawing commands show device-space coordinates.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	fmt.Fprintf(bw, "# recording %dx%d, %d commands\n", r.width, r.height, len(r.commands))
	depth := 0
	for _, cmd := range r.commands {
		if _, ok := cmd.(RestoreCommand); ok && depth > 0 {
			depth--
		}
		bw.WriteString(strings.Repeat("  ", depth))
		bw.WriteString(describe(cmd))
		bw.WriteByte('\n')
		if _, ok := cmd.(SaveCommand); ok {
			depth++
		}
	}
	err := bw.Flush()
	return cw.n, err
}

// describe formats a single command.
func describe(cmd Command) string {
	name := cmd.Type().String()
	switch c := cmd.(type) {
	case TranslateCommand:
		return name + " " + num(c.X) + " " + num(c.Y)
	case RotateCommand:
		return name + " " + strconv.FormatFloat(c.Angle, 'f', 4, 64)
	case SetFontCommand:
		return name + " " + strconv.Quote(c.Font.String())
	case SetFillColorCommand:
		return name + " " + hexColor(c.Color)
	case SetStrokeColorCommand:
		return name + " " + hexColor(c.Color)
	case SetLineWidthCommand:
		return name + " " + num(c.Width)
	case SetTextAlignCommand:
		return name + " " + c.Align.String()
	case SetTextBaselineCommand:
		return name + " " + c.Baseline.String()
	case StrokePathCommand:
		var b strings.Builder
		b.WriteString(name)
		b.WriteString(" " + hexColor(c.Color) + " w=" + num(c.Width))
		for _, seg := range c.Device {
			fmt.Fprintf(&b, " (%s,%s)-(%s,%s)", num(seg.From.X), num(seg.From.Y), num(seg.To.X), num(seg.To.Y))
		}
		return b.String()
	case FillTextCommand:
		return fmt.Sprintf("%s %q at (%s,%s) angle=%s align=%s baseline=%s width=%s",
			name, c.Text, num(c.Anchor.X), num(c.Anchor.Y),
			strconv.FormatFloat(c.Angle, 'f', 4, 64), c.Align, c.Baseline, num(c.Width))
	}
	return name
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func hexColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
