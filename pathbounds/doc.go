// Package pathbounds computes axis-aligned bounds for the small path
// command language the engraver emits: absolute and relative move, line,
// horizontal and vertical line, cubic and quadratic curves, and
// close-path, plus raw "x,y" polyline vertex lists.
//
// Line-type commands bound exactly from their endpoints. Curve commands
// use a deliberate approximation instead of exact root-finding: the curve
// is classified X- or Y-dominant by its chord, the dominant axis is
// bounded by the endpoint, and the non-dominant axis is extended to the
// midpoint between the current point and the most extreme control point.
// Downstream clustering is tuned against this approximation, so it must
// not be replaced with exact curve extents.
//
// Unsupported commands (smooth-quadratic shorthand, arcs) are skipped
// with a diagnostic; a malformed token never fails the whole parse.
package pathbounds
