package gamemath

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampCamera returns the horizontal camera offset that centres targetX in a
// viewport of the given width, kept inside [0, levelWidth-viewport]. A level
// narrower than the viewport pins the camera at 0.
func ClampCamera(targetX, viewport, levelWidth float64) float64 {
	offset := targetX - viewport/2
	maxOffset := levelWidth - viewport
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// HorizontalSpeed maps held directions to a horizontal speed. Right wins when
// both are held.
func HorizontalSpeed(left, right bool, speed float64) float64 {
	v := 0.0
	if left {
		v = -speed
	}
	if right {
		v = speed
	}
	return v
}
