// Package svgdoc provides parsing for the vector-graphics pages the
// engraving renderer emits.
//
// The reader is built on golang.org/x/net/html, which tolerates the
// foreign attributes (xlink:href) and loose markup found in real output
// and never fails mid-document. Structural requirements are checked at
// parse time: a page viewport (viewBox) and the classed margin wrapper
// must be present, everything else degrades locally.
//
// Navigation helpers (FindClass, FindAllClass, Attr, IntAttr) expose the
// classed group structure - system, measure, staff, layer - to the
// extraction walker without leaking parser details.
package svgdoc
