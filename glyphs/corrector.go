package glyphs

import (
	"math"

	"github.com/tsawler/staffmap/model"
)

// Placement is a glyph reference's page-space origin and footprint as
// declared on the reference itself.
type Placement struct {
	X      int
	Y      int
	Width  int
	Height int
	Glyph  string
}

// Corrector maps placements to page-space rectangles through the glyph
// table and the fixed viewport scale convention.
type Corrector struct {
	table Table
	cfg   model.Config

	// Page translation from the margin wrapper.
	offsetX int
	offsetY int

	warnings []model.Warning
}

// NewCorrector creates a corrector for one build.
func NewCorrector(table Table, cfg model.Config, offsetX, offsetY int) *Corrector {
	return &Corrector{
		table:   table,
		cfg:     cfg,
		offsetX: offsetX,
		offsetY: offsetY,
	}
}

// PageBox resolves a placement to its page rectangle. A glyph id without
// a definition produces a zero box and a diagnostic; the element becomes
// unclickable but the build continues.
func (c *Corrector) PageBox(p Placement) model.Rect {
	bounds, ok := c.table[p.Glyph]
	if !ok {
		c.warnings = append(c.warnings, model.Warningf(
			model.WarnUnknownGlyph, p.Glyph, "no symbol definition, element gets a zero box"))
		return model.Rect{}
	}

	scalar := float64(p.Width) / float64(c.cfg.GlyphViewport)

	// Glyph-local Y grows opposite to page Y, so the page top edge comes
	// from the glyph's maximum Y.
	return model.Rect{
		X:      c.offsetX + p.X + roundScaled(bounds.MinX, scalar),
		Y:      c.offsetY + p.Y + roundScaled(-bounds.MaxY, scalar),
		Width:  roundScaled(bounds.Width, scalar),
		Height: roundScaled(bounds.Height, scalar),
	}
}

// Warnings returns diagnostics accumulated across PageBox calls.
func (c *Corrector) Warnings() []model.Warning {
	return c.warnings
}

func roundScaled(v int, scalar float64) int {
	return int(math.Round(float64(v) * scalar))
}
