package svgdoc

// ViewBox is the declared page viewport: "minX minY width height" in
// page units.
type ViewBox struct {
	MinX   int
	MinY   int
	Width  int
	Height int
}

// Right returns the right page edge in page units.
func (v ViewBox) Right() int {
	return v.MinX + v.Width
}

// Bottom returns the bottom page edge in page units.
func (v ViewBox) Bottom() int {
	return v.MinY + v.Height
}

// Symbol is one reusable glyph definition from the symbol-definitions
// block: an id and a single outline path.
type Symbol struct {
	ID       string
	PathData string
}
