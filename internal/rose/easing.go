package rose

// Easing reshapes linear progress in [0, 1].
type Easing func(t float64) float64

// Quintic is smootherstep, t³(10 − 15t + 6t²): first and second
// derivatives vanish at both ends.
func Quintic(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (10 - 15*t + 6*t*t)
}

// Cubic is smoothstep, t²(3 − 2t): first derivative vanishes at both ends.
func Cubic(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
