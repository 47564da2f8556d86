package rose

import "time"

// Pacer turns elapsed wall-clock time into whole driver ticks. The remainder
// carries over, so over time exactly one tick is due per Interval whatever
// rate the caller is polled at.
type Pacer struct {
	Interval time.Duration
	// MaxBurst caps the ticks returned by one Advance. Lag past the cap is
	// dropped. Zero means no cap.
	MaxBurst int

	lag time.Duration
}

// Advance adds elapsed to the carried lag and returns the ticks now due.
func (p *Pacer) Advance(elapsed time.Duration) int {
	if p.Interval <= 0 {
		return 0
	}
	if elapsed > 0 {
		p.lag += elapsed
	}
	n := int(p.lag / p.Interval)
	p.lag -= time.Duration(n) * p.Interval
	if p.MaxBurst > 0 && n > p.MaxBurst {
		n = p.MaxBurst
		p.lag = 0
	}
	return n
}

// Lag is the time carried toward the next tick.
func (p *Pacer) Lag() time.Duration {
	return p.lag
}
