// Package model provides the shared data structures for the spatial index
// built from engraved score pages.
//
// All coordinates are integers in a fixed-point unit system where 10 units
// equal one rendering pixel. Floating point appears only transiently during
// glyph scale computation and is rounded back to integers before storage.
//
// # Geometry
//
//   - [Rect] - axis-aligned rectangle with edge accessors and containment
//   - [GlyphBounds] - extents of a reusable glyph outline
//
// # Index content
//
//   - [Hitbox] - one queryable element rectangle tagged with layer,
//     element id, and group id
//   - [FloatingRect] - a cross-cutting overlay region (tie, hairpin,
//     dynamic) spanning a range of staff rows
//   - [IDTable] - dense integer interning of external element ids
//
// # Diagnostics
//
// Non-fatal problems during a build accumulate as [Warning] values rather
// than aborting; [FormatWarnings] renders them for callers who want to log.
package model
