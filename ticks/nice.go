package ticks

import "math"

// Adapted from Nice Numbers for Graph Labels by Paul Heckbert, Graphics
// Gems, 1990.

// niceNum returns a "nice" number approximately equal to val. The number is
// rounded if round is true, converted to its ceiling otherwise.
func niceNum(val float64, round bool) float64 {
	exp := math.Floor(math.Log10(val))
	f := val / math.Pow(10, exp)
	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

// precision returns the number of decimals needed to print multiples of step.
func precision(step float64) int {
	return int(math.Max(-math.Floor(math.Log10(step)), 0))
}

// niceTicks returns evenly spaced tick values covering [lo, hi] with at most
// about maxTicks entries, in ascending order. lo must be less than hi.
// Bounds that yield no finite step are returned as the only two ticks.
func niceTicks(lo, hi float64, maxTicks int) []float64 {
	maxTicks = max(maxTicks, 2)
	if !finite(lo) || !finite(hi) || hi <= lo {
		return []float64{lo, hi}
	}
	spread := niceNum(hi-lo, false)
	step := niceNum(spread/float64(maxTicks-1), true)
	if !finite(step) || step <= 0 {
		return []float64{lo, hi}
	}
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step

	scale := math.Pow(10, float64(precision(step)))
	n := int(math.Round((end-start)/step)) + 1
	out := make([]float64, n)
	for i := range out {
		v := math.Round((start+float64(i)*step)*scale) / scale
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		out[i] = v
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
