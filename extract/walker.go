package extract

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/staffmap/glyphs"
	"github.com/tsawler/staffmap/model"
	"github.com/tsawler/staffmap/svgdoc"
)

// StaffRow is one staff line across a whole system: its baselines, its
// leading margin, and every leaf hitbox extracted from it.
type StaffRow struct {
	// System is the index of the containing system.
	System int

	// TopY and BottomY are the first and last baseline Y coordinates in
	// page space.
	TopY    int
	BottomY int

	// LeadX is the staff's leading margin in page space.
	LeadX int

	// Leaves are the extracted hitboxes, in document order.
	Leaves []model.Hitbox
}

// Result is everything a walk produces.
type Result struct {
	// Rows holds one entry per staff line in document order.
	Rows []StaffRow

	// Overlays holds the floating regions. Row ranges are unresolved
	// (-1) until the index assigns them against the row markers.
	Overlays []model.FloatingRect

	// IDs is the id table the hitboxes were interned through.
	IDs *model.IDTable
}

// Walker extracts rows and overlays from one parsed page.
type Walker struct {
	doc       *svgdoc.Document
	corrector *glyphs.Corrector
	cfg       model.Config
	ids       *model.IDTable

	warnings []model.Warning
}

// NewWalker creates a walker for one build.
func NewWalker(doc *svgdoc.Document, corrector *glyphs.Corrector, cfg model.Config) *Walker {
	return &Walker{
		doc:       doc,
		corrector: corrector,
		cfg:       cfg,
		ids:       model.NewIDTable(),
	}
}

// Warnings returns diagnostics accumulated during the walk.
func (w *Walker) Warnings() []model.Warning {
	return w.warnings
}

// Walk traverses every system and produces the extraction result. Rows
// are opened from each system's first measure; later measures of the
// same system contribute leaves into the rows by staff position.
func (w *Walker) Walk() *Result {
	res := &Result{IDs: w.ids}

	for sysIdx, system := range w.doc.Systems() {
		rowBase := len(res.Rows)
		rowCount := 0

		for measIdx, measure := range svgdoc.FindAllClass(system, "measure") {
			for staffIdx, staff := range svgdoc.FindAllClass(measure, "staff") {
				if measIdx == 0 {
					row, ok := w.newRow(sysIdx, staff)
					if !ok {
						continue
					}
					res.Rows = append(res.Rows, row)
					rowCount++
				}
				if staffIdx >= rowCount {
					w.warnf(model.WarnMissingStructure, svgdoc.Attr(staff, "id"),
						"staff %d has no row opened by the system's first measure, skipping", staffIdx)
					continue
				}
				w.walkStaff(staff, &res.Rows[rowBase+staffIdx])
			}
			w.collectOverlays(measure, res)
		}
	}

	return res
}

// newRow reads a staff's baseline paths: the second token of the path
// data is the line's Y coordinate, the first carries the leading X.
func (w *Walker) newRow(system int, staff *html.Node) (StaffRow, bool) {
	var lines []*html.Node
	for _, c := range svgdoc.ElementChildren(staff) {
		if c.Data == "path" && svgdoc.Attr(c, "d") != "" {
			lines = append(lines, c)
		}
	}
	if len(lines) == 0 {
		w.warnf(model.WarnMissingStructure, svgdoc.Attr(staff, "id"),
			"staff has no baseline paths, skipping")
		return StaffRow{}, false
	}

	leadX, topY, okTop := baselinePoint(svgdoc.Attr(lines[0], "d"))
	_, bottomY, okBottom := baselinePoint(svgdoc.Attr(lines[len(lines)-1], "d"))
	if !okTop || !okBottom {
		w.warnf(model.WarnMissingStructure, svgdoc.Attr(staff, "id"),
			"staff baseline path data unparsable, skipping")
		return StaffRow{}, false
	}

	return StaffRow{
		System:  system,
		TopY:    topY + w.doc.OffsetY,
		BottomY: bottomY + w.doc.OffsetY,
		LeadX:   leadX + w.doc.OffsetX,
	}, true
}

// baselinePoint parses "M{x} {y} ..." baseline path data.
func baselinePoint(d string) (x, y int, ok bool) {
	fields := strings.Fields(d)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "M") {
		return 0, 0, false
	}

	x, errX := strconv.Atoi(strings.TrimPrefix(fields[0], "M"))
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

func (w *Walker) walkStaff(staff *html.Node, row *StaffRow) {
	for layerIdx, layer := range svgdoc.FindAllClass(staff, "layer") {
		w.walkChildren(layer, layerIdx, nil, row)
	}
}

// walkChildren applies the class policy to each element child. The group
// parameter is the interactive group threaded down from a container; nil
// means every leaf starts its own group.
func (w *Walker) walkChildren(n *html.Node, layer int, group *int, row *StaffRow) {
	for _, child := range svgdoc.ElementChildren(n) {
		class := elementClass(child)
		if class == "" {
			continue
		}

		rule, known := classPolicy[class]
		if !known {
			w.warnf(model.WarnMissingStructure, svgdoc.Attr(child, "id"),
				"unrecognized element class %q, skipping", class)
			continue
		}

		switch rule.action {
		case ActionIgnore:
			// Nothing, not even an id.

		case ActionDescend:
			childGroup := group
			if childGroup == nil {
				g := -1
				if id := svgdoc.Attr(child, "id"); id != "" {
					g = w.ids.Intern(id)
				}
				childGroup = &g
			}
			w.walkChildren(child, layer, childGroup, row)

		case ActionLeaf:
			w.extractLeaf(child, rule.leaf, layer, group, row)

		case ActionFloating:
			// Collected at measure level.
		}
	}
}

// elementClass returns the first class token, the one carrying the
// element's classification.
func elementClass(n *html.Node) string {
	fields := strings.Fields(svgdoc.Class(n))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// extractLeaf applies a leaf rule. A missing required identifier or
// placement attribute skips the element with a diagnostic; siblings are
// unaffected.
func (w *Walker) extractLeaf(n *html.Node, kind LeafKind, layer int, group *int, row *StaffRow) {
	id := svgdoc.Attr(n, "id")
	if id == "" {
		w.warnf(model.WarnMissingAttribute, "", "leaf element %q has no id, skipping", elementClass(n))
		return
	}
	elemID := w.ids.Intern(id)

	// Group id defaults to the leaf's own element id; the first leaf
	// under a container establishes the container's group.
	gid := elemID
	if group != nil {
		if *group == -1 {
			*group = elemID
		}
		gid = *group
	}

	switch kind {
	case LeafNote:
		w.extractNote(n, id, elemID, gid, layer, row)

	case LeafGlyph:
		if box, ok := w.placementBox(n, id); ok && !box.IsZero() {
			w.addLeaf(row, box, layer, elemID, gid)
		}

	case LeafKeyAccidental:
		box, ok := w.placementBox(n, id)
		if !ok || box.IsZero() {
			return
		}
		// Wider tap target for a narrow glyph.
		box.X -= w.cfg.KeyAccidentalMargin / 2
		box.Width += w.cfg.KeyAccidentalMargin
		w.addLeaf(row, box, layer, elemID, gid)

	case LeafMeterSig:
		uses := directUses(n)
		if len(uses) == 0 {
			w.warnf(model.WarnMissingStructure, id, "meter signature has no glyph references, skipping")
			return
		}
		// Numerator and denominator stay one logical element: same
		// element id, same group, two hitboxes.
		for _, use := range uses {
			p, ok := w.placement(use, id)
			if !ok {
				continue
			}
			if box := w.corrector.PageBox(p); !box.IsZero() {
				w.addLeaf(row, box, layer, elemID, gid)
			}
		}
	}
}

// extractNote bounds the notehead, then each attached accidental with
// content. The accidental keeps its own element id but its width is
// overridden so its trailing edge overlaps the notehead's leading edge
// by exactly the configured unit, forcing both into one cluster.
func (w *Walker) extractNote(n *html.Node, id string, elemID, gid, layer int, row *StaffRow) {
	noteBox, ok := w.placementBox(n, id)
	if !ok || noteBox.IsZero() {
		return
	}
	w.addLeaf(row, noteBox, layer, elemID, gid)

	for _, child := range svgdoc.ElementChildren(n) {
		if elementClass(child) != "accid" {
			continue
		}

		accID := svgdoc.Attr(child, "id")
		if accID == "" {
			w.warnf(model.WarnMissingAttribute, id, "accidental has no id, skipping")
			continue
		}

		use := directUse(child)
		if use == nil {
			w.warnf(model.WarnMissingStructure, accID, "accidental has no content, skipping")
			continue
		}

		p, ok := w.placement(use, accID)
		if !ok {
			continue
		}
		box := w.corrector.PageBox(p)
		if box.IsZero() {
			continue
		}

		box.Width = noteBox.X + w.cfg.AccidentalOverlap - box.X
		w.addLeaf(row, box, layer, w.ids.Intern(accID), gid)
	}
}

func (w *Walker) addLeaf(row *StaffRow, box model.Rect, layer, elemID, gid int) {
	row.Leaves = append(row.Leaves, model.Hitbox{
		Rect:      box,
		Layer:     layer,
		ElementID: elemID,
		GroupID:   gid,
	})
}

// placementBox resolves an element's single direct glyph reference.
func (w *Walker) placementBox(n *html.Node, id string) (model.Rect, bool) {
	use := directUse(n)
	if use == nil {
		w.warnf(model.WarnMissingStructure, id, "no glyph reference, skipping")
		return model.Rect{}, false
	}

	p, ok := w.placement(use, id)
	if !ok {
		return model.Rect{}, false
	}
	return w.corrector.PageBox(p), true
}

// placement reads a glyph reference's placement attributes. Any missing
// required attribute skips the element with a diagnostic.
func (w *Walker) placement(use *html.Node, id string) (glyphs.Placement, bool) {
	glyph := svgdoc.HrefID(use)
	x, okX := svgdoc.IntAttr(use, "x")
	y, okY := svgdoc.IntAttr(use, "y")
	width, okW := svgdoc.IntAttr(use, "width")
	height, okH := svgdoc.IntAttr(use, "height")

	if glyph == "" || !okX || !okY || !okW || !okH {
		w.warnf(model.WarnMissingAttribute, id, "glyph reference missing placement attributes, skipping")
		return glyphs.Placement{}, false
	}

	return glyphs.Placement{X: x, Y: y, Width: width, Height: height, Glyph: glyph}, true
}

func directUse(n *html.Node) *html.Node {
	for _, c := range svgdoc.ElementChildren(n) {
		if c.Data == "use" {
			return c
		}
	}
	return nil
}

func directUses(n *html.Node) []*html.Node {
	var uses []*html.Node
	for _, c := range svgdoc.ElementChildren(n) {
		if c.Data == "use" {
			uses = append(uses, c)
		}
	}
	return uses
}

func (w *Walker) warnf(cat model.WarningCategory, element, format string, args ...interface{}) {
	w.warnings = append(w.warnings, model.Warningf(cat, element, format, args...))
}
