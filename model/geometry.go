package model

// Rect is an axis-aligned rectangle in page units. Y grows downward,
// matching the rendered page.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (r Rect) Left() int {
	return r.X
}

// Right returns the right edge X coordinate.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate.
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// ContainsStrict reports whether the point lies strictly inside the
// rectangle. Points on the border do not count.
func (r Rect) ContainsStrict(x, y int) bool {
	return x > r.Left() && x < r.Right() &&
		y > r.Top() && y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	x := minInt(r.Left(), other.Left())
	y := minInt(r.Top(), other.Top())
	right := maxInt(r.Right(), other.Right())
	bottom := maxInt(r.Bottom(), other.Bottom())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// IsZero reports whether the rectangle is the zero value. Unknown glyph
// lookups produce zero rectangles.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// IsEmpty reports whether the rectangle has no interior.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// GlyphBounds holds the extents of one reusable glyph outline in the
// glyph's local coordinate space, where Y grows opposite to page Y.
type GlyphBounds struct {
	MinX   int
	MinY   int
	MaxX   int
	MaxY   int
	Width  int
	Height int
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
