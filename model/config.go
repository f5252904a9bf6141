package model

// Config holds the tuning constants for one build. A single immutable
// value is threaded through the pipeline so that documents can be indexed
// concurrently with different tuning.
type Config struct {
	// UnitsPerPixel is the fixed-point convention: page units per
	// rendering pixel.
	UnitsPerPixel int

	// GlyphViewport is the glyph-viewport convention: the nominal width
	// a glyph placement is scaled against.
	GlyphViewport int

	// KeyAccidentalMargin widens key accidental hitboxes: the box shifts
	// left by half the margin and grows by the full margin, giving a
	// narrow glyph a usable tap target.
	KeyAccidentalMargin int

	// AccidentalOverlap is the forced horizontal overlap between an
	// attached accidental's trailing edge and its note's leading edge,
	// keeping both in the same cluster.
	AccidentalOverlap int

	// BottomMargin closes the final staff row: the trailing row marker
	// sits this far below the last staff's bottom baseline.
	BottomMargin int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		UnitsPerPixel:       10,
		GlyphViewport:       1000,
		KeyAccidentalMargin: 80,
		AccidentalOverlap:   1,
		BottomMargin:        240,
	}
}
