package pathbounds

import (
	"testing"

	"github.com/tsawler/staffmap/model"
)

func checkExtents(t *testing.T, e Extents, minX, minY, maxX, maxY int) {
	t.Helper()
	if e.MinX != minX || e.MinY != minY || e.MaxX != maxX || e.MaxY != maxY {
		t.Errorf("Extents = %+v, want min (%d,%d) max (%d,%d)", e, minX, minY, maxX, maxY)
	}
}

func TestBounds_Lines(t *testing.T) {
	e, warnings, ok := Bounds("M10,20 L110,20 L110,80 L10,80 Z")
	if !ok {
		t.Fatal("Expected ok")
	}
	if len(warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", warnings)
	}
	checkExtents(t, e, 10, 20, 110, 80)
	if e.Width() != 100 || e.Height() != 60 {
		t.Errorf("Width/Height = %d/%d, want 100/60", e.Width(), e.Height())
	}
}

func TestBounds_SpaceSeparatedBaseline(t *testing.T) {
	// Staff baselines come as "M{x} {y} L{x} {y}" with the letter fused
	// to the first coordinate.
	e, _, ok := Bounds("M850 2790 L4186 2790")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 850, 2790, 4186, 2790)
}

func TestBounds_RelativeCommands(t *testing.T) {
	e, _, ok := Bounds("m10,10 l20,0 l0,30 h-20 v-30")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 10, 10, 30, 40)
}

func TestBounds_HorizontalVertical(t *testing.T) {
	e, _, ok := Bounds("M0,0 H50 V-30")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 0, -30, 50, 0)
}

func TestBounds_CurveApproximation(t *testing.T) {
	// X-dominant chord: X bounds exactly from endpoints, Y extended to
	// the midpoint between the start point and the extreme control.
	e, _, ok := Bounds("M0,0 C0,100 100,100 100,0")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 0, 0, 100, 50)
}

func TestBounds_CurveYDominant(t *testing.T) {
	// Mirror of the X-dominant scenario.
	e, _, ok := Bounds("M0,0 C100,0 100,100 0,100")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 0, 0, 50, 100)
}

func TestBounds_RelativeCurve(t *testing.T) {
	e, _, ok := Bounds("M10,10 c0,100 100,100 100,0")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 10, 10, 110, 60)
}

func TestBounds_QuadraticCurve(t *testing.T) {
	e, _, ok := Bounds("M0,0 Q50,80 100,0")
	if !ok {
		t.Fatal("Expected ok")
	}
	// Single control at Y=80: midpoint toward it is 40.
	checkExtents(t, e, 0, 0, 100, 40)
}

func TestBounds_SmoothCurve(t *testing.T) {
	e, _, ok := Bounds("M0,0 S50,80 100,0")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 0, 0, 100, 40)
}

func TestBounds_UnsupportedCommandSkipped(t *testing.T) {
	e, warnings, ok := Bounds("M0,0 L100,0 T50,50 L100,80")
	if !ok {
		t.Fatal("Expected ok despite unsupported command")
	}

	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Category != model.WarnUnsupportedCommand {
		t.Errorf("Warning category = %v, want WarnUnsupportedCommand", warnings[0].Category)
	}

	// The T coordinates are dropped; the trailing line still counts.
	checkExtents(t, e, 0, 0, 100, 80)
}

func TestBounds_Empty(t *testing.T) {
	if _, _, ok := Bounds(""); ok {
		t.Error("Empty path should not report ok")
	}
	if _, _, ok := Bounds("Z"); ok {
		t.Error("Close-only path should not report ok")
	}
}

func TestBounds_MalformedTokenDegradesLocally(t *testing.T) {
	e, _, ok := Bounds("M0,0 Lfoo,10 L50,50")
	if !ok {
		t.Fatal("Expected ok despite malformed token")
	}
	checkExtents(t, e, 0, 0, 50, 50)
}

func TestPolylineBounds(t *testing.T) {
	e, ok := PolylineBounds("100,200 300,180 500,200")
	if !ok {
		t.Fatal("Expected ok")
	}
	checkExtents(t, e, 100, 180, 500, 200)
}

func TestPolylineBounds_Empty(t *testing.T) {
	if _, ok := PolylineBounds(""); ok {
		t.Error("Empty polyline should not report ok")
	}
	if _, ok := PolylineBounds("100"); ok {
		t.Error("Dangling coordinate should not report ok")
	}
}

func TestExtentsRect(t *testing.T) {
	e := Extents{MinX: 10, MinY: 20, MaxX: 110, MaxY: 50}
	r := e.Rect()
	if r.X != 10 || r.Y != 20 || r.Width != 100 || r.Height != 30 {
		t.Errorf("Rect = %+v", r)
	}
}
