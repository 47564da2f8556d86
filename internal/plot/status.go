package plot

import (
	"fmt"
	"time"

	"github.com/iburimskiy/rose-visualization/internal/rose"
)

// Status is a one-line summary of a frame: elapsed time, the pair being
// left and the pair being approached, and how far along the move is.
func Status(f rose.Frame, elapsed time.Duration) string {
	state := "easing"
	if f.Paused {
		state = "resting"
	}
	return fmt.Sprintf("%s  %s -> %s  %s %3.0f%%",
		FormatDuration(elapsed), f.Current, f.Target, state, 100*min(f.Progress, 1))
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
