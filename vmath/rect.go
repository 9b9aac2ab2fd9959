package vmath

// Position is a point in world space; y grows downhill
type Position struct {
	X, Y float64
}

// Add returns p offset by dx, dy
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle in world space
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect builds a rectangle from its four edges
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// CenteredRect returns the w x h rectangle centered on p
func CenteredRect(p Position, w, h float64) Rect {
	return Rect{
		Left:   p.X - w/2,
		Top:    p.Y - h/2,
		Right:  p.X + w/2,
		Bottom: p.Y + h/2,
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersects reports axis-aligned overlap; shared edges count as overlap
func Intersects(a, b Rect) bool {
	return !(b.Left > a.Right ||
		b.Right < a.Left ||
		b.Top > a.Bottom ||
		b.Bottom < a.Top)
}
