package ticks

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/ggchart"
)

// LocaleFormatter returns a tick formatter that prints numeric ticks with the
// digit grouping and decimal separator of tag. opts tune the number format,
// for example number.MaxFractionDigits(2). Other values are formatted with
// ggchart.FormatValue.
func LocaleFormatter(tag language.Tag, opts ...number.Option) ggchart.TickFormatter {
	p := message.NewPrinter(tag)
	return func(value any, _ int, _ []any) (string, bool) {
		if v, ok := toFloat(value); ok {
			return p.Sprint(number.Decimal(v, opts...)), true
		}
		return ggchart.FormatValue(value), true
	}
}
