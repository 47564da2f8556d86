package rose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{"quintic": Quintic, "cubic": Cubic} {
		assert.Equal(t, 0.0, ease(0), name)
		assert.Equal(t, 1.0, ease(1), name)
		assert.InDelta(t, 0.5, ease(0.5), 1e-15, name)
	}
}

func TestEasingMonotonic(t *testing.T) {
	for name, ease := range map[string]Easing{"quintic": Quintic, "cubic": Cubic} {
		prev := ease(0)
		for i := 1; i <= 1000; i++ {
			v := ease(float64(i) / 1000)
			require.GreaterOrEqual(t, v, prev, "%s at step %d", name, i)
			prev = v
		}
	}
}

func TestEasingFlatEnds(t *testing.T) {
	const h = 1e-4
	// Slope near the ends is far below the linear slope of 1.
	assert.Less(t, Quintic(h)/h, 1e-6)
	assert.Less(t, (1-Quintic(1-h))/h, 1e-6)
	assert.Less(t, Cubic(h)/h, 1e-3)
	assert.Less(t, (1-Cubic(1-h))/h, 1e-3)
}

func TestEasingClamps(t *testing.T) {
	assert.Equal(t, 1.0, Quintic(1.2))
	assert.Equal(t, 0.0, Cubic(-0.5))
}
