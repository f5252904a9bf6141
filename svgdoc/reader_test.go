package svgdoc

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const minimalPage = `<svg width="210mm" height="297mm" viewBox="0 0 2100 2970">
  <svg viewBox="0 0 21000 29700">
    <defs>
      <symbol id="E0A4" viewBox="0 0 1000 1000" overflow="inherit">
        <path transform="scale(1,-1)" d="M0 0 L500 0 L500 300 L0 300 Z"/>
      </symbol>
      <symbol id="E050" viewBox="0 0 1000 1000" overflow="inherit">
        <path transform="scale(1, -1)" d="M0 -100 L200 -100 L200 400 Z"/>
      </symbol>
    </defs>
    <g class="page-margin" transform="translate(500, 500)">
      <g id="sys1" class="system"></g>
    </g>
  </svg>
</svg>`

func parsePage(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParseViewBox(t *testing.T) {
	doc := parsePage(t, minimalPage)

	// The inner unit-scaled viewport wins over the pixel-sized one.
	if doc.ViewBox.Width != 21000 || doc.ViewBox.Height != 29700 {
		t.Errorf("ViewBox = %+v, want 21000x29700", doc.ViewBox)
	}
	if doc.ViewBox.Right() != 21000 {
		t.Errorf("Right = %d, want 21000", doc.ViewBox.Right())
	}
	if doc.ViewBox.Bottom() != 29700 {
		t.Errorf("Bottom = %d, want 29700", doc.ViewBox.Bottom())
	}
}

func TestParseMarginOffset(t *testing.T) {
	doc := parsePage(t, minimalPage)

	if doc.OffsetX != 500 || doc.OffsetY != 500 {
		t.Errorf("Offset = (%d, %d), want (500, 500)", doc.OffsetX, doc.OffsetY)
	}
	if doc.Margin() == nil {
		t.Error("Margin returned nil")
	}
	if systems := doc.Systems(); len(systems) != 1 {
		t.Errorf("Systems = %d, want 1", len(systems))
	}
}

func TestParseSymbols(t *testing.T) {
	doc := parsePage(t, minimalPage)

	if len(doc.Symbols) != 2 {
		t.Fatalf("Symbols = %d, want 2", len(doc.Symbols))
	}
	if doc.Symbols[0].ID != "e0a4" && doc.Symbols[0].ID != "E0A4" {
		t.Errorf("Symbol id = %q", doc.Symbols[0].ID)
	}
	if !strings.HasPrefix(doc.Symbols[0].PathData, "M0 0") {
		t.Errorf("PathData = %q", doc.Symbols[0].PathData)
	}
	// "scale(1, -1)" normalizes to the expected convention; no warning.
	if len(doc.Warnings()) != 0 {
		t.Errorf("Unexpected warnings: %v", doc.Warnings())
	}
}

func TestParseSymbolWithoutPathWarns(t *testing.T) {
	src := `<svg viewBox="0 0 21000 29700">
	  <defs><symbol id="E0A4"></symbol></defs>
	  <g class="page-margin" transform="translate(0,0)"></g>
	</svg>`
	doc := parsePage(t, src)

	if len(doc.Symbols) != 0 {
		t.Errorf("Symbols = %d, want 0", len(doc.Symbols))
	}
	if len(doc.Warnings()) != 1 {
		t.Errorf("Warnings = %v, want one", doc.Warnings())
	}
}

func TestParseUnexpectedOutlineTransformWarns(t *testing.T) {
	src := `<svg viewBox="0 0 21000 29700">
	  <defs><symbol id="E0A4"><path transform="scale(2,-2)" d="M0 0 L10 10"/></symbol></defs>
	  <g class="page-margin" transform="translate(0,0)"></g>
	</svg>`
	doc := parsePage(t, src)

	if len(doc.Symbols) != 1 {
		t.Fatalf("Symbols = %d, want 1", len(doc.Symbols))
	}
	if len(doc.Warnings()) != 1 {
		t.Errorf("Warnings = %v, want one", doc.Warnings())
	}
}

func TestParseMissingViewBox(t *testing.T) {
	_, err := Parse(strings.NewReader(`<svg><g class="page-margin"></g></svg>`))
	if err == nil {
		t.Fatal("Expected an error for a page without a viewBox")
	}
}

func TestParseMissingMargin(t *testing.T) {
	_, err := Parse(strings.NewReader(`<svg viewBox="0 0 100 100"></svg>`))
	if err == nil {
		t.Fatal("Expected an error for a page without a margin wrapper")
	}
	if !strings.Contains(err.Error(), "page-margin") {
		t.Errorf("Error = %v", err)
	}
}

func TestParseMalformedViewBox(t *testing.T) {
	_, err := Parse(strings.NewReader(`<svg viewBox="0 0 100"><g class="page-margin"></g></svg>`))
	if err == nil {
		t.Fatal("Expected an error for a malformed viewBox")
	}
}

func TestStripUnit(t *testing.T) {
	tests := []struct{ in, want string }{
		{"180px", "180"},
		{"210mm", "210"},
		{"180", "180"},
		{"", ""},
		{"px", "px"},
	}
	for _, tt := range tests {
		if got := StripUnit(tt.in); got != tt.want {
			t.Errorf("StripUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTranslate(t *testing.T) {
	tests := []struct {
		in     string
		dx, dy int
	}{
		{"translate(50, 50)", 50, 50},
		{"translate(50 50)", 50, 50},
		{"translate(-10,20)", -10, 20},
		{"translate(7)", 7, 0},
		{"scale(1,-1)", 0, 0},
		{"", 0, 0},
	}
	for _, tt := range tests {
		dx, dy := ParseTranslate(tt.in)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("ParseTranslate(%q) = (%d, %d), want (%d, %d)", tt.in, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestHrefID(t *testing.T) {
	src := `<svg viewBox="0 0 100 100">
	  <g class="page-margin">
	    <use xlink:href="#E0A4" x="10" y="20"/>
	  </g>
	</svg>`
	doc := parsePage(t, src)

	use := FindTag(doc.Margin(), "use")
	if use == nil {
		t.Fatal("No use element found")
	}
	if got := HrefID(use); got != "E0A4" {
		t.Errorf("HrefID = %q, want E0A4", got)
	}
}

func TestIntAttr(t *testing.T) {
	src := `<svg viewBox="0 0 100 100">
	  <g class="page-margin">
	    <use href="#x" x="10" width="180px" y=" 20 "/>
	  </g>
	</svg>`
	doc := parsePage(t, src)
	use := FindTag(doc.Margin(), "use")

	if v, ok := IntAttr(use, "width"); !ok || v != 180 {
		t.Errorf("width = %d, %v; want 180, true", v, ok)
	}
	if v, ok := IntAttr(use, "y"); !ok || v != 20 {
		t.Errorf("y = %d, %v; want 20, true", v, ok)
	}
	if _, ok := IntAttr(use, "height"); ok {
		t.Error("Absent attribute reported as present")
	}
}

func TestFindAllClassStopsAtMatch(t *testing.T) {
	src := `<svg viewBox="0 0 100 100">
	  <g class="page-margin">
	    <g class="beam"><g class="beam"></g></g>
	    <g class="beam"></g>
	  </g>
	</svg>`
	doc := parsePage(t, src)

	// The nested beam belongs to its parent match and is not reported.
	if got := len(FindAllClass(doc.Margin(), "beam")); got != 2 {
		t.Errorf("FindAllClass = %d matches, want 2", got)
	}
}

func TestElementChildrenSkipsText(t *testing.T) {
	src := `<svg viewBox="0 0 100 100">
	  <g class="page-margin">text<g class="a"></g> <g class="b"></g></g>
	</svg>`
	doc := parsePage(t, src)

	children := ElementChildren(doc.Margin())
	if len(children) != 2 {
		t.Fatalf("ElementChildren = %d, want 2", len(children))
	}
	for _, c := range children {
		if c.Type != html.ElementNode {
			t.Errorf("Non-element child %v", c.Type)
		}
	}
}
