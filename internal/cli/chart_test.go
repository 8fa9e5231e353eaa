package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

const twoAxisChart = `
width = 400
height = 300
padding = 10

[[axes]]
position = "bottom"
labels = ["Jan", "Feb", "Mar", "Apr"]

[[axes]]
position = "left"
type = "linear"
min = 0
max = 100
`

func buildTestChart(t *testing.T, input string) (*chart, *recording.Recorder) {
	t.Helper()
	cfg, _, err := parseConfig([]byte(input))
	require.NoError(t, err)
	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	c, err := buildChart(rec, cfg)
	require.NoError(t, err)
	return c, rec
}

func TestChartLayout(t *testing.T) {
	c, _ := buildTestChart(t, twoAxisChart)
	x, y := c.axes[0].scale, c.axes[1].scale

	require.Equal(t, 10+y.Width, c.area.Left)
	require.Equal(t, 10.0, c.area.Top)
	require.Equal(t, 390.0, c.area.Right)
	require.Equal(t, 290-x.Height, c.area.Bottom)

	require.Equal(t, ggchart.Rect{Left: c.area.Left, Top: c.area.Bottom, Right: c.area.Right, Bottom: 290}, x.Box())
	require.Equal(t, ggchart.Rect{Left: 10, Top: c.area.Top, Right: c.area.Left, Bottom: c.area.Bottom}, y.Box())

	require.Equal(t, c.area.Width(), x.Width)
	require.Equal(t, c.area.Height(), y.Height)
	require.Equal(t, y.Width, x.ReservedLeftWidth)
	require.Equal(t, []string{"Jan", "Feb", "Mar", "Apr"}, x.Labels())
	require.Equal(t, "100", y.Labels()[0])
}

func TestChartStacksAxesOnOneSide(t *testing.T) {
	c, _ := buildTestChart(t, `
padding = 0
[[axes]]
position = "bottom"
labels = ["a", "b"]
[[axes]]
position = "bottom"
labels = ["c", "d"]
`)
	first, second := c.axes[0].scale.Box(), c.axes[1].scale.Box()
	require.Equal(t, c.area.Bottom, first.Top)
	require.Equal(t, first.Bottom, second.Top)
	require.Equal(t, float64(defaultHeight), second.Bottom)
}

func TestChartDraw(t *testing.T) {
	c, rec := buildTestChart(t, twoAxisChart)
	require.NoError(t, c.draw())
	require.Zero(t, rec.Depth())

	r := rec.FinishRecording()
	var labels []string
	for _, txt := range r.Texts() {
		labels = append(labels, txt.Text)
	}
	require.Subset(t, labels, []string{"Jan", "Apr", "0", "100"})
	require.NotZero(t, r.Count(recording.CmdStrokePath))

	// Vertical gridlines span the chart area.
	first := r.Strokes()[0].Device
	require.Len(t, first, 2)
	require.Equal(t, c.area.Top, first[1].From.Y)
	require.Equal(t, c.area.Bottom, first[1].To.Y)
}

func TestChartHiddenAxisTakesNoRoom(t *testing.T) {
	c, rec := buildTestChart(t, `
padding = 0
[[axes]]
position = "left"
hidden = true
labels = ["a", "b"]
`)
	require.Equal(t, 0.0, c.area.Left)
	require.NoError(t, c.draw())
	require.Empty(t, rec.FinishRecording().Commands())
}
