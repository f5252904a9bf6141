package svgdoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/staffmap/model"
)

// Document is a parsed engraver page. The structural pieces every build
// needs - viewport, symbol definitions, margin wrapper and its offset -
// are resolved once at parse time.
type Document struct {
	// ViewBox is the declared page viewport.
	ViewBox ViewBox

	// Symbols holds the reusable glyph definitions in document order.
	Symbols []Symbol

	// OffsetX and OffsetY are the margin wrapper's translation offset.
	OffsetX int
	OffsetY int

	root   *html.Node
	margin *html.Node

	warnings []model.Warning
}

// Open parses an engraver page from a file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses an engraver page from a reader. Violated structural
// assumptions - no viewport, no margin wrapper - are errors; everything
// else degrades into warnings.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	doc := &Document{root: root}

	svg := innermostViewport(root)
	if svg == nil {
		return nil, fmt.Errorf("no element with a viewBox declaration")
	}
	vb, err := parseViewBox(Attr(svg, "viewbox"))
	if err != nil {
		return nil, fmt.Errorf("page viewport: %w", err)
	}
	doc.ViewBox = vb

	doc.collectSymbols()

	margin := FindClass(root, "page-margin")
	if margin == nil {
		return nil, fmt.Errorf("page-margin wrapper not found")
	}
	doc.margin = margin
	doc.OffsetX, doc.OffsetY = ParseTranslate(Attr(margin, "transform"))

	return doc, nil
}

// Margin returns the margin wrapper group; all musical structure lives
// beneath it.
func (d *Document) Margin() *html.Node {
	return d.margin
}

// Systems returns the system groups under the margin wrapper in
// document order.
func (d *Document) Systems() []*html.Node {
	return FindAllClass(d.margin, "system")
}

// Warnings returns non-fatal problems recorded during parsing.
func (d *Document) Warnings() []model.Warning {
	return d.warnings
}

// innermostViewport returns the deepest svg element declaring a viewBox.
// Engraver output nests a unit-scaled viewport inside the outer
// pixel-sized one; the inner declaration carries the page units.
func innermostViewport(root *html.Node) *html.Node {
	var found *html.Node
	for _, n := range FindAllTag(root, "svg") {
		if Attr(n, "viewbox") != "" {
			found = n
		}
	}
	return found
}

func parseViewBox(raw string) (ViewBox, error) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("viewBox %q: want 4 values", raw)
	}

	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return ViewBox{}, fmt.Errorf("viewBox %q: %w", raw, err)
		}
		vals[i] = v
	}

	return ViewBox{MinX: vals[0], MinY: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// expectedOutlineTransform is the scale/flip convention glyph outlines
// are expected to carry.
const expectedOutlineTransform = "scale(1,-1)"

// collectSymbols extracts the symbol-definitions block: one outline path
// per glyph id. Malformed entries are skipped with a warning.
func (d *Document) collectSymbols() {
	for _, sym := range FindAllTag(d.root, "symbol") {
		id := Attr(sym, "id")
		if id == "" {
			d.warnings = append(d.warnings, model.Warningf(
				model.WarnMissingStructure, "", "symbol without id, skipping"))
			continue
		}

		path := FindTag(sym, "path")
		if path == nil || Attr(path, "d") == "" {
			d.warnings = append(d.warnings, model.Warningf(
				model.WarnMissingStructure, id, "symbol has no outline path, skipping"))
			continue
		}

		if tf := normalizeTransform(Attr(path, "transform")); tf != expectedOutlineTransform {
			d.warnings = append(d.warnings, model.Warningf(
				model.WarnMissingStructure, id,
				"outline transform %q differs from %q", tf, expectedOutlineTransform))
		}

		d.Symbols = append(d.Symbols, Symbol{ID: id, PathData: Attr(path, "d")})
	}
}

func normalizeTransform(s string) string {
	return strings.Join(strings.Fields(s), "")
}
