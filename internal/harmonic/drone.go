// Package harmonic sonifies the rose ratio: a drone of two partials whose
// interval is n/m folded into one octave.
package harmonic

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Drone is an endless two-partial tone. The upper partial glides towards
// Base·Fold(n/m) so eased parameter changes are heard as a smooth bend.
type Drone struct {
	SampleRate beep.SampleRate
	Base       float64
	Volume     float64
	// Smoothing is the per-sample weight kept from the previous ratio.
	Smoothing float64

	mu     sync.Mutex
	target float64
	ratio  float64
	phase  [2]float64
}

// NewDrone returns a drone resting on the unison.
func NewDrone(sr beep.SampleRate, base, volume, smoothing float64) *Drone {
	return &Drone{
		SampleRate: sr,
		Base:       base,
		Volume:     volume,
		Smoothing:  smoothing,
		target:     1,
		ratio:      1,
	}
}

// SetPair retunes the upper partial to the pair's ratio.
func (d *Drone) SetPair(p rose.Pair) {
	if p.M <= 0 || p.N <= 0 {
		return
	}
	d.mu.Lock()
	d.target = Fold(p.Ratio())
	d.mu.Unlock()
}

// Ratio returns the interval currently sounding.
func (d *Drone) Ratio() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ratio
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	step := 2 * math.Pi / float64(d.SampleRate)
	for i := range samples {
		d.ratio = d.Smoothing*d.ratio + (1-d.Smoothing)*d.target

		d.phase[0] = math.Mod(d.phase[0]+step*d.Base, 2*math.Pi)
		d.phase[1] = math.Mod(d.phase[1]+step*d.Base*d.ratio, 2*math.Pi)

		v := d.Volume * (math.Sin(d.phase[0]) + math.Sin(d.phase[1])) / 2
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

// Fold brings a positive ratio into the octave [1, 2).
func Fold(r float64) float64 {
	if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return 1
	}
	for r >= 2 {
		r /= 2
	}
	for r < 1 {
		r *= 2
	}
	return r
}
