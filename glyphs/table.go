package glyphs

import (
	"github.com/tsawler/staffmap/model"
	"github.com/tsawler/staffmap/pathbounds"
	"github.com/tsawler/staffmap/svgdoc"
)

// Table maps glyph ids to the bounds of their outline path. Built once
// per document and immutable thereafter.
type Table map[string]model.GlyphBounds

// BuildTable bounds every glyph definition. Symbols whose outline yields
// no coordinates are skipped with a warning.
func BuildTable(symbols []svgdoc.Symbol) (Table, []model.Warning) {
	table := make(Table, len(symbols))
	var warnings []model.Warning

	for _, sym := range symbols {
		ext, pathWarnings, ok := pathbounds.Bounds(sym.PathData)
		for _, w := range pathWarnings {
			w.Element = sym.ID
			warnings = append(warnings, w)
		}
		if !ok {
			warnings = append(warnings, model.Warningf(
				model.WarnMissingStructure, sym.ID, "outline path has no coordinates, skipping"))
			continue
		}

		table[sym.ID] = model.GlyphBounds{
			MinX:   ext.MinX,
			MinY:   ext.MinY,
			MaxX:   ext.MaxX,
			MaxY:   ext.MaxY,
			Width:  ext.Width(),
			Height: ext.Height(),
		}
	}

	return table, warnings
}
