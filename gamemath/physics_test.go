package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampCamera(t *testing.T) {
	const viewport, level = 600.0, 2000.0

	assert.Equal(t, 0.0, ClampCamera(120, viewport, level))
	assert.Equal(t, 500.0, ClampCamera(800, viewport, level))
	assert.Equal(t, 1400.0, ClampCamera(1950, viewport, level))

	for x := -5000.0; x <= 5000; x += 37.5 {
		offset := ClampCamera(x, viewport, level)
		assert.GreaterOrEqual(t, offset, 0.0)
		assert.LessOrEqual(t, offset, level-viewport)
	}
}

func TestClampCameraNarrowLevel(t *testing.T) {
	assert.Equal(t, 0.0, ClampCamera(400, 600, 300))
}

func TestHorizontalSpeed(t *testing.T) {
	assert.Equal(t, 0.0, HorizontalSpeed(false, false, 5))
	assert.Equal(t, -5.0, HorizontalSpeed(true, false, 5))
	assert.Equal(t, 5.0, HorizontalSpeed(false, true, 5))
	assert.Equal(t, 5.0, HorizontalSpeed(true, true, 5), "right wins")
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 1.0, ClampFloat(-3, 1, 2))
	assert.Equal(t, 2.0, ClampFloat(3, 1, 2))
	assert.Equal(t, 1.5, ClampFloat(1.5, 1, 2))
}
