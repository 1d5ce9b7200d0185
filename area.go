package lvgl

// Area is an axis-aligned rectangle in integer widget coordinates.
// X1/Y1 is the top-left corner and X2/Y2 the bottom-right corner.
// Widget layout math is done on Areas; draw commands use float64 geometry.
type Area struct {
	X1, Y1, X2, Y2 int
}

// NewArea creates an Area from its two corners.
func NewArea(x1, y1, x2, y2 int) Area {
	return Area{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the area.
func (a Area) Width() int {
	return a.X2 - a.X1
}

// Height returns the vertical extent of the area.
func (a Area) Height() int {
	return a.Y2 - a.Y1
}

// Inset shrinks the area by the given amount on each side.
// The result is the content box once padding has been subtracted.
func (a Area) Inset(left, right, top, bottom int) Area {
	return Area{
		X1: a.X1 + left,
		Y1: a.Y1 + top,
		X2: a.X2 - right,
		Y2: a.Y2 - bottom,
	}
}

// IsEmpty reports whether the area has no interior.
func (a Area) IsEmpty() bool {
	return a.X2 <= a.X1 || a.Y2 <= a.Y1
}
