package model

import (
	"strings"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(100, 200, 50, 30)

	if r.Left() != 100 {
		t.Errorf("Expected Left 100, got %d", r.Left())
	}
	if r.Right() != 150 {
		t.Errorf("Expected Right 150, got %d", r.Right())
	}
	if r.Top() != 200 {
		t.Errorf("Expected Top 200, got %d", r.Top())
	}
	if r.Bottom() != 230 {
		t.Errorf("Expected Bottom 230, got %d", r.Bottom())
	}
}

func TestRectContainsStrict(t *testing.T) {
	r := NewRect(100, 200, 50, 30)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"interior", 120, 210, true},
		{"left edge", 100, 210, false},
		{"right edge", 150, 210, false},
		{"top edge", 120, 200, false},
		{"bottom edge", 120, 230, false},
		{"outside", 0, 0, false},
	}

	for _, tt := range tests {
		if got := r.ContainsStrict(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: ContainsStrict(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Width != 30 || u.Height != 15 {
		t.Errorf("Union = %+v, want {0 0 30 15}", u)
	}
}

func TestRectZero(t *testing.T) {
	var r Rect
	if !r.IsZero() {
		t.Error("zero value should be IsZero")
	}
	if !r.IsEmpty() {
		t.Error("zero value should be IsEmpty")
	}
	if NewRect(1, 2, 3, 4).IsZero() {
		t.Error("non-zero rect reported IsZero")
	}
}

func TestIDTableIntern(t *testing.T) {
	tbl := NewIDTable()

	a := tbl.Intern("note-0000001")
	b := tbl.Intern("note-0000002")
	again := tbl.Intern("note-0000001")

	if a != 0 || b != 1 {
		t.Errorf("Expected dense ids 0 and 1, got %d and %d", a, b)
	}
	if again != a {
		t.Errorf("Re-interning returned %d, want %d", again, a)
	}
	if tbl.Len() != 2 {
		t.Errorf("Expected 2 interned ids, got %d", tbl.Len())
	}
	if tbl.Name(a) != "note-0000001" {
		t.Errorf("Name(%d) = %q", a, tbl.Name(a))
	}
	if tbl.Name(99) != "" {
		t.Errorf("Name(99) = %q, want empty", tbl.Name(99))
	}
	if tbl.Name(-1) != "" {
		t.Errorf("Name(-1) = %q, want empty", tbl.Name(-1))
	}
}

func TestIDTableNormalization(t *testing.T) {
	tbl := NewIDTable()

	// "é" composed vs decomposed should intern to the same id.
	composed := tbl.Intern("dir-café")
	decomposed := tbl.Intern("dir-café")

	if composed != decomposed {
		t.Errorf("Composed and decomposed forms interned differently: %d vs %d", composed, decomposed)
	}
}

func TestWarningString(t *testing.T) {
	w := Warningf(WarnUnknownGlyph, "note-1", "glyph %q has no definition", "E0A4")
	s := w.String()
	if !strings.Contains(s, "unknown-glyph") || !strings.Contains(s, "note-1") || !strings.Contains(s, "E0A4") {
		t.Errorf("Warning string missing parts: %q", s)
	}

	anon := Warning{Category: WarnMissingStructure, Message: "no defs block"}
	if strings.Contains(anon.String(), ":  ") {
		t.Errorf("Element-less warning formatted badly: %q", anon.String())
	}
}

func TestFormatWarnings(t *testing.T) {
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}

	ws := []Warning{
		Warningf(WarnMissingAttribute, "note-1", "no x"),
		Warningf(WarnUnsupported, "slur-1", "slur bounding not implemented"),
	}
	out := FormatWarnings(ws)
	if len(strings.Split(out, "\n")) != 2 {
		t.Errorf("Expected 2 lines, got %q", out)
	}
}

func TestWarningCategoryString(t *testing.T) {
	cats := map[WarningCategory]string{
		WarnMissingStructure:   "missing-structure",
		WarnMissingAttribute:   "missing-attribute",
		WarnUnknownGlyph:       "unknown-glyph",
		WarnUnsupportedCommand: "unsupported-command",
		WarnUnsupported:        "unsupported",
		WarningCategory(99):    "unknown",
	}
	for cat, want := range cats {
		if cat.String() != want {
			t.Errorf("Category %d String() = %q, want %q", cat, cat.String(), want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UnitsPerPixel != 10 {
		t.Errorf("Expected UnitsPerPixel 10, got %d", cfg.UnitsPerPixel)
	}
	if cfg.GlyphViewport != 1000 {
		t.Errorf("Expected GlyphViewport 1000, got %d", cfg.GlyphViewport)
	}
	if cfg.KeyAccidentalMargin != 80 {
		t.Errorf("Expected KeyAccidentalMargin 80, got %d", cfg.KeyAccidentalMargin)
	}
	if cfg.AccidentalOverlap != 1 {
		t.Errorf("Expected AccidentalOverlap 1, got %d", cfg.AccidentalOverlap)
	}
}
