package gamemath

// Resolve snaps r out of platform along a single axis of motion.
//
// Only one axis is handled per call: a non-zero dx resolves horizontally and
// dy is ignored. Falling (dy > 0) lands r on top of the platform, zeroes the
// vertical speed and reports grounded. Rising (dy < 0) stops r against the
// platform's underside. When r does not overlap platform, or there is no
// motion, r and velY come back unchanged.
func Resolve(r Rect, dx, dy float64, platform Rect, velY float64) (Rect, float64, bool) {
	if !Intersects(r, platform) {
		return r, velY, false
	}

	switch {
	case dx > 0:
		r.SetRight(platform.Left())
	case dx < 0:
		r.SetLeft(platform.Right())
	case dy > 0:
		r.SetBottom(platform.Top())
		return r, 0, true
	case dy < 0:
		r.SetTop(platform.Bottom())
		return r, 0, false
	}

	return r, velY, false
}

// Sweep resolves r against every platform in order. Each hit adjusts r before
// the next platform is tested, so the first overlapping platform wins and
// later ones see the corrected rectangle. grounded is true if any platform
// landed r during the sweep.
func Sweep(r Rect, dx, dy float64, platforms []Rect, velY float64) (Rect, float64, bool) {
	grounded := false
	for _, p := range platforms {
		var landed bool
		r, velY, landed = Resolve(r, dx, dy, p, velY)
		if landed {
			grounded = true
		}
	}
	return r, velY, grounded
}

// FirstOverlap returns the index of the first platform r overlaps, or -1.
func FirstOverlap(r Rect, platforms []Rect) int {
	for i, p := range platforms {
		if Intersects(r, p) {
			return i
		}
	}
	return -1
}
