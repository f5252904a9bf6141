// Package glyphs resolves glyph placement references to page-space
// rectangles.
//
// A [Table] is built once per document from the symbol-definitions
// block, bounding every reusable outline with the path engine. The
// [Corrector] then maps a placement box and glyph id to a page rectangle
// using the fixed 1000-unit glyph viewport convention, flipping the
// glyph-local Y axis which grows opposite to page Y. An unknown glyph id
// yields a zero-sized box and a diagnostic; the build continues.
package glyphs
