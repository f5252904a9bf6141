package model

// Hitbox is one queryable element rectangle on the page.
type Hitbox struct {
	Rect

	// Layer is the voice index within the staff the element belongs to.
	Layer int

	// ElementID is the dense integer surrogate for the element's external
	// id, resolved through the build's IDTable.
	ElementID int

	// GroupID links elements forming one interactive unit, such as a note
	// and its accidental. Group ids share the element id space and are
	// never reused across elements.
	GroupID int
}

// FloatingRect is a hit-test region independent of the row/column grid,
// produced for cross-cutting elements such as ties and hairpins.
type FloatingRect struct {
	Rect

	// MinRow and MaxRow are the inclusive row-index range the region's
	// vertical extent intersects.
	MinRow int
	MaxRow int

	// Description identifies the element as "<kind>:<id>".
	Description string
}
