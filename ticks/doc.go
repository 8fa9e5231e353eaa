// Package ticks provides concrete ggchart scale variants.
//
// Category ticks every label of a categorical axis and maps values by their
// position in the label list. Linear picks "nice" tick values spanning a
// numeric range and maps values proportionally along the axis.
//
//	axis, err := ggchart.New(dc, opts, ggchart.WithVariant(ticks.NewLinear(-3.2, 41)))
//
// LocaleFormatter formats numeric ticks with the grouping and decimal
// conventions of a language.
package ticks
