package harmonic

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/rose-visualization/internal/config"
	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Player owns the speaker while a rose animation runs. A nil *Player is a
// silent player, so renderers need not check whether audio started.
type Player struct {
	drone *Drone
	tap   *Tap
	ctrl  *beep.Ctrl
}

// Start initialises the speaker and begins playing the drone.
func Start() (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("harmonic: init speaker: %w", err)
	}

	drone := NewDrone(sr, config.BaseFrequency, config.Volume, config.SmoothingFactor)
	tap := NewTap(drone, config.ScopeRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}
	speaker.Play(ctrl)

	return &Player{drone: drone, tap: tap, ctrl: ctrl}, nil
}

// Follow retunes the drone to the frame's interpolated pair.
func (p *Player) Follow(f rose.Frame) {
	if p == nil {
		return
	}
	p.drone.SetPair(f.Params)
}

// Scope returns the last n samples played, oldest first.
func (p *Player) Scope(n int) []float64 {
	if p == nil {
		return nil
	}
	return p.tap.Snapshot(n)
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
}
