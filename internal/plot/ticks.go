package plot

import (
	"math"
	"strconv"
)

// Ticks picks evenly spaced grid positions inside [lo, hi] using steps of 1,
// 2 or 5 times a power of ten, aiming for about target ticks.
func Ticks(lo, hi float64, target int) []float64 {
	if target < 2 {
		target = 2
	}
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return []float64{lo}
	}
	step := TickStep(lo, hi, target)
	start := math.Ceil(lo/step) * step
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		v = math.Round(v/step) * step
		if v == 0 {
			v = 0 // drop negative zero
		}
		out = append(out, v)
	}
	return out
}

// TickStep is the spacing Ticks uses for the same arguments.
func TickStep(lo, hi float64, target int) float64 {
	if target < 2 {
		target = 2
	}
	return niceStep((hi - lo) / float64(target-1))
}

func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	frac := raw / base
	switch {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// FormatTick renders a tick value with as many decimals as step needs.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
