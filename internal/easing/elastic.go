// Package easing maps normalized time to normalized progress.
package easing

import "math"

// Func maps t in [0, 1] to progress. Progress may overshoot 1.
type Func func(t float64) float64

// ElasticOut overshoots the target and settles on it. Amplitude is clamped to
// [1, 10] and period to [0.1, 2]; zero values pick 1 and 0.5.
func ElasticOut(amplitude, period float64) Func {
	in := elasticIn(amplitude, period)
	return func(t float64) float64 {
		return 1 - in(1-t)
	}
}

func elasticIn(amplitude, period float64) Func {
	if amplitude == 0 {
		amplitude = 1
	}
	if period == 0 {
		period = 0.5
	}
	a := clamp(amplitude, 1, 10)
	p := clamp(period, 0.1, 2)
	s := p / (2 * math.Pi) * math.Asin(1/a)
	return func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return -a * math.Pow(2, 10*(t-1)) * math.Sin(((t-1)-s)*(2*math.Pi)/p)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
