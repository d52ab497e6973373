package gamemath

// Rect is an axis-aligned rectangle in world pixel coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetRight moves the rectangle so its right edge sits at x. Size is kept.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetBottom moves the rectangle so its bottom edge sits at y. Size is kept.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

func (r *Rect) SetLeft(x float64) { r.X = x }
func (r *Rect) SetTop(y float64)  { r.Y = y }

// Translate returns a copy moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects reports whether a and b overlap. Intervals are half-open, so
// rectangles that only share an edge do not intersect.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Intersects is the method form of Intersects.
func (r Rect) Intersects(other Rect) bool {
	return Intersects(r, other)
}
