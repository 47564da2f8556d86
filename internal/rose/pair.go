// Package rose generates and animates rose curves r = cos((n/m)θ).
//
// A Driver owns the transition state between two parameter pairs. Each call
// to Tick eases the pair a little further towards its target, samples the
// curve through a Sampler and, once the transition completes, asks a Selector
// for the next target.
package rose

import (
	"fmt"
	"math"
)

// Pair holds the rose parameters; the curve is r = cos((N/M)θ).
type Pair struct {
	M, N float64
}

// P is shorthand for Pair{M: m, N: n}.
func P(m, n float64) Pair {
	return Pair{M: m, N: n}
}

// Ratio returns N/M.
func (p Pair) Ratio() float64 {
	return p.N / p.M
}

// Round rounds both components half to even, never below 1.
func (p Pair) Round() (m, n int) {
	return roundPositive(p.M), roundPositive(p.N)
}

func (p Pair) String() string {
	return fmt.Sprintf("(m=%.2f, n=%.2f)", p.M, p.N)
}

func roundPositive(v float64) int {
	r := int(math.RoundToEven(v))
	if r < 1 {
		return 1
	}
	return r
}

// Lerp moves from towards to by the eased fraction e.
func Lerp(from, to Pair, e float64) Pair {
	return Pair{
		M: from.M + (to.M-from.M)*e,
		N: from.N + (to.N-from.N)*e,
	}
}

// Equation formats the curve label with n and m at two decimals.
func Equation(p Pair) string {
	return fmt.Sprintf("r = cos(%.2f/%.2f theta)", p.N, p.M)
}
