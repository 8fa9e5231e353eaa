package ggchart

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TickFormatter turns a raw tick value into its label. It receives the
// tick index and the full raw tick sequence. Returning ok == false keeps the
// tick's slot but leaves it unlabeled: no label and no gridline is drawn for it.
type TickFormatter func(value any, index int, values []any) (label string, ok bool)

// valuePlaceholder matches the single placeholder understood by tick templates.
var valuePlaceholder = regexp.MustCompile(`<%=\s*value\s*%>`)

// ConvertTicksToLabels replaces the raw ticks with their labels, keeping
// length and order. The Callback of the tick options wins over Template.
func (s *Scale) ConvertTicksToLabels() {
	values := s.values
	labels := make([]string, len(values))
	s.blank.ClearAll()

	callback := s.opts.Ticks.Callback
	for i, v := range values {
		if callback != nil {
			label, ok := callback(v, i, values)
			if !ok {
				s.blank.Set(uint(i))
			}
			labels[i] = label
			continue
		}
		labels[i] = ExecuteTemplate(s.opts.Ticks.Template, v)
	}

	s.labels = labels
	s.values = nil
}

// ExecuteTemplate substitutes value into every <%=value%> placeholder of tmpl.
// Text outside placeholders is copied unchanged.
func ExecuteTemplate(tmpl string, value any) string {
	formatted := FormatValue(value)
	return valuePlaceholder.ReplaceAllLiteralString(tmpl, formatted)
}

// FormatValue renders a raw tick value the way it appears in a label.
// Floats use the shortest representation that round-trips ("50", "0.25").
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}
