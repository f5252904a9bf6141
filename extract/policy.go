package extract

// Action is what the walker does with an element class.
type Action int

const (
	// ActionIgnore contributes nothing, not even an id.
	ActionIgnore Action = iota
	// ActionDescend unpacks a container, threading the group id.
	ActionDescend
	// ActionLeaf measures the element with its leaf rule.
	ActionLeaf
	// ActionFloating measures the element independently of the grid.
	ActionFloating
)

// LeafKind selects the measurement rule for a leaf class.
type LeafKind int

const (
	// LeafNote bounds the notehead and any attached accidentals.
	LeafNote LeafKind = iota
	// LeafGlyph bounds a single glyph reference with no adjustment
	// (rests, full-measure rests, clefs).
	LeafGlyph
	// LeafKeyAccidental bounds a single glyph and widens the tap target.
	LeafKeyAccidental
	// LeafMeterSig bounds the stacked numerator and denominator glyphs
	// as two hitboxes sharing one element id.
	LeafMeterSig
)

// FloatKind selects the measurement rule for a cross-cutting class.
type FloatKind int

const (
	// FloatConnector bounds a curved connector path (ties).
	FloatConnector FloatKind = iota
	// FloatPolyline bounds a wedge polyline's vertices (hairpins).
	FloatPolyline
	// FloatGlyph bounds a glyph reference (dynamic markings).
	FloatGlyph
	// FloatUnimplemented records the documented upstream gap (slurs,
	// free-text directives) and produces no overlay.
	FloatUnimplemented
)

type rule struct {
	action Action
	leaf   LeafKind
	float  FloatKind
}

// classPolicy is the fixed classification table driving the walk.
var classPolicy = map[string]rule{
	"stem":   {action: ActionIgnore},
	"spacer": {action: ActionIgnore},

	"beam":   {action: ActionDescend},
	"chord":  {action: ActionDescend},
	"layer":  {action: ActionDescend},
	"keySig": {action: ActionDescend},

	"note":     {action: ActionLeaf, leaf: LeafNote},
	"rest":     {action: ActionLeaf, leaf: LeafGlyph},
	"mRest":    {action: ActionLeaf, leaf: LeafGlyph},
	"clef":     {action: ActionLeaf, leaf: LeafGlyph},
	"keyAccid": {action: ActionLeaf, leaf: LeafKeyAccidental},
	"meterSig": {action: ActionLeaf, leaf: LeafMeterSig},

	"tie":     {action: ActionFloating, float: FloatConnector},
	"slur":    {action: ActionFloating, float: FloatUnimplemented},
	"hairpin": {action: ActionFloating, float: FloatPolyline},
	"dynam":   {action: ActionFloating, float: FloatGlyph},
	"dir":     {action: ActionFloating, float: FloatUnimplemented},
}

// floatingClasses lists the cross-cutting classes collected per measure,
// in a fixed order so rebuilds are deterministic.
var floatingClasses = []string{"tie", "slur", "hairpin", "dynam", "dir"}
