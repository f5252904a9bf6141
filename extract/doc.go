// Package extract walks the musical-structure tree of a parsed page and
// produces the leaf hitboxes and floating overlay regions the spatial
// index is built from.
//
// The walk follows page -> system -> measure -> staff -> layer ->
// element. A fixed per-class policy table decides what happens at each
// element: ignored classes contribute nothing, container classes are
// unpacked with the interactive group id threaded through, and each leaf
// class has a dedicated measurement rule. Cross-cutting classes (ties,
// hairpins, dynamics) are measured independently of the staff grid and
// become floating overlays.
//
// A malformed element never aborts the walk; it is skipped with a
// diagnostic and its siblings still extract.
package extract
