package harmonic

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and keeps the last samples it produced, mixed
// to mono, so the renderer can draw a scope from what is being played.
type Tap struct {
	Source beep.Streamer

	mu        sync.RWMutex
	ring      []float64
	nextIndex int
	filled    bool
}

// NewTap records up to ringSize samples of src.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		ring:   make([]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for _, s := range samples[:n] {
			t.ring[t.nextIndex] = (s[0] + s[1]) / 2
			t.nextIndex++
			if t.nextIndex == len(t.ring) {
				t.nextIndex = 0
				t.filled = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n recorded samples, oldest first.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	have := t.nextIndex
	if t.filled {
		have = len(t.ring)
	}
	if n > have {
		n = have
	}

	out := make([]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.ring)
	}
	for i := range out {
		out[i] = t.ring[(start+i)%len(t.ring)]
	}
	return out
}
