package extract

import (
	"golang.org/x/net/html"

	"github.com/tsawler/staffmap/model"
	"github.com/tsawler/staffmap/pathbounds"
	"github.com/tsawler/staffmap/svgdoc"
)

// collectOverlays measures the cross-cutting elements of one measure.
// Overlay rectangles are grid-independent; their row ranges stay
// unresolved until the index assigns them against the row markers.
func (w *Walker) collectOverlays(measure *html.Node, res *Result) {
	for _, class := range floatingClasses {
		rule := classPolicy[class]
		for _, n := range svgdoc.FindAllClass(measure, class) {
			w.overlay(n, class, rule.float, res)
		}
	}
}

func (w *Walker) overlay(n *html.Node, class string, kind FloatKind, res *Result) {
	id := svgdoc.Attr(n, "id")
	desc := class + ":" + id

	switch kind {
	case FloatConnector:
		path := svgdoc.FindTag(n, "path")
		if path == nil || svgdoc.Attr(path, "d") == "" {
			w.warnf(model.WarnMissingStructure, id, "%s has no connector path, skipping", class)
			return
		}
		ext, pathWarnings, ok := pathbounds.Bounds(svgdoc.Attr(path, "d"))
		for _, pw := range pathWarnings {
			pw.Element = id
			w.warnings = append(w.warnings, pw)
		}
		if !ok {
			w.warnf(model.WarnMissingStructure, id, "%s connector path has no coordinates, skipping", class)
			return
		}
		w.addOverlay(res, w.offsetRect(ext.Rect()), desc)

	case FloatPolyline:
		poly := svgdoc.FindTag(n, "polyline")
		if poly == nil || svgdoc.Attr(poly, "points") == "" {
			w.warnf(model.WarnMissingStructure, id, "%s has no polyline, skipping", class)
			return
		}
		ext, ok := pathbounds.PolylineBounds(svgdoc.Attr(poly, "points"))
		if !ok {
			w.warnf(model.WarnMissingStructure, id, "%s polyline has no vertices, skipping", class)
			return
		}
		w.addOverlay(res, w.offsetRect(ext.Rect()), desc)

	case FloatGlyph:
		use := svgdoc.FindTag(n, "use")
		if use == nil {
			w.warnf(model.WarnMissingStructure, id, "%s has no glyph reference, skipping", class)
			return
		}
		p, ok := w.placement(use, id)
		if !ok {
			return
		}
		if box := w.corrector.PageBox(p); !box.IsZero() {
			w.addOverlay(res, box, desc)
		}

	case FloatUnimplemented:
		// Slur and free-text directive measurement is an intentional
		// upstream gap: no overlay, visible in warnings.
		w.warnf(model.WarnUnsupported, id, "%s bounding not implemented, no overlay produced", class)
	}
}

func (w *Walker) addOverlay(res *Result, rect model.Rect, desc string) {
	res.Overlays = append(res.Overlays, model.FloatingRect{
		Rect:        rect,
		MinRow:      -1,
		MaxRow:      -1,
		Description: desc,
	})
}

// offsetRect shifts raw path coordinates into page space using the
// margin wrapper's translation. Glyph placements get this inside the
// corrector; raw paths and polylines need it here.
func (w *Walker) offsetRect(r model.Rect) model.Rect {
	r.X += w.doc.OffsetX
	r.Y += w.doc.OffsetY
	return r
}
