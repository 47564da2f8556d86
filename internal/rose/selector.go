package rose

import (
	"fmt"
	"math/rand/v2"
)

// A Selector picks the pairs a Driver transitions through.
type Selector interface {
	// First returns the starting pair.
	First() Pair
	// Next returns the target to move to once current has been reached.
	Next(current Pair) Pair
}

// LatticeWalk visits every integer pair in [Min, Max]² in boustrophedon
// order: n climbs while m is odd and falls while m is even, m advancing at
// either edge. Past (Max, ·) the walk starts over at (Min, Min).
type LatticeWalk struct {
	Min, Max int
}

func (w LatticeWalk) First() Pair {
	return P(float64(w.Min), float64(w.Min))
}

func (w LatticeWalk) Next(current Pair) Pair {
	m, n := current.Round()

	nextM, nextN := m, n
	if m%2 == 1 {
		nextN = n + 1
		if nextN > w.Max {
			nextM = m + 1
			nextN = w.Max
		}
	} else {
		nextN = n - 1
		if nextN < w.Min {
			nextM = m + 1
			nextN = w.Min
		}
	}

	if nextM > w.Max {
		nextM, nextN = w.Min, w.Min
	}
	return P(float64(nextM), float64(nextN))
}

// Validate reports whether the bounds describe a usable lattice.
func (w LatticeWalk) Validate() error {
	if w.Min < 1 {
		return fmt.Errorf("%w: lattice minimum %d below 1", ErrInvalidConfig, w.Min)
	}
	if w.Max < w.Min {
		return fmt.Errorf("%w: lattice [%d, %d] is empty", ErrInvalidConfig, w.Min, w.Max)
	}
	return nil
}

// RandomDraw draws m and n uniformly from [Min, Max], redrawing n until it
// differs from m. Repeats of earlier targets are allowed.
type RandomDraw struct {
	Min, Max int
	Rand     *rand.Rand
}

// NewRandomDraw returns a RandomDraw over [lo, hi] seeded with seed.
func NewRandomDraw(lo, hi int, seed uint64) RandomDraw {
	return RandomDraw{
		Min:  lo,
		Max:  hi,
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (d RandomDraw) First() Pair {
	return d.draw()
}

func (d RandomDraw) Next(Pair) Pair {
	return d.draw()
}

func (d RandomDraw) draw() Pair {
	m := d.intn()
	n := d.intn()
	for n == m {
		n = d.intn()
	}
	return P(float64(m), float64(n))
}

func (d RandomDraw) intn() int {
	return d.Min + d.Rand.IntN(d.Max-d.Min+1)
}

// Validate reports whether distinct pairs can be drawn at all.
func (d RandomDraw) Validate() error {
	if d.Rand == nil {
		return fmt.Errorf("%w: random draw has no generator", ErrInvalidConfig)
	}
	if d.Min < 1 {
		return fmt.Errorf("%w: random minimum %d below 1", ErrInvalidConfig, d.Min)
	}
	if d.Max <= d.Min {
		return fmt.Errorf("%w: range [%d, %d] holds no distinct pair", ErrInvalidConfig, d.Min, d.Max)
	}
	return nil
}
