package ticks

import "github.com/gogpu/ggchart"

// Category ticks a fixed list of labels in order.
type Category struct {
	labels []string
	index  map[string]int
}

// NewCategory returns a variant ticking labels in order. Duplicate labels
// map to their first position.
func NewCategory(labels ...string) *Category {
	c := &Category{
		labels: labels,
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if _, ok := c.index[l]; !ok {
			c.index[l] = i
		}
	}
	return c
}

// Labels returns the category labels.
func (c *Category) Labels() []string { return c.labels }

// BuildTicks implements ggchart.Variant.
func (c *Category) BuildTicks(*ggchart.Scale) []any {
	out := make([]any, len(c.labels))
	for i, l := range c.labels {
		out[i] = l
	}
	return out
}

// PixelForValue implements ggchart.Variant. A string value is located by
// name; any other value uses index.
func (c *Category) PixelForValue(s *ggchart.Scale, value any, index int) float64 {
	if name, ok := value.(string); ok {
		if i, ok := c.index[name]; ok {
			index = i
		}
	}
	return s.PixelForTick(index, s.Options().GridLines.OffsetGridLines)
}

var _ ggchart.Variant = (*Category)(nil)
