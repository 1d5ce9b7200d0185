package draw

import "github.com/Inovonics-Broadcast/lvgl"

// Rect represents an axis-aligned rectangle in draw space.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a rectangle from its origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromPoints creates a rectangle from two corner points.
// The corners may be given in any order.
func NewRectFromPoints(x1, y1, x2, y2 float64) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// RectFromArea converts an integer widget area to a draw-space rectangle.
func RectFromArea(a lvgl.Area) Rect {
	return NewRect(float64(a.X1), float64(a.Y1), float64(a.Width()), float64(a.Height()))
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle has no interior.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Intersect returns the intersection of two rectangles.
// Returns an empty Rect if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := r.X
	if other.X > x1 {
		x1 = other.X
	}
	y1 := r.Y
	if other.Y > y1 {
		y1 = other.Y
	}
	x2 := r.MaxX()
	if other.MaxX() < x2 {
		x2 = other.MaxX()
	}
	y2 := r.MaxY()
	if other.MaxY() < y2 {
		y2 = other.MaxY()
	}
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
