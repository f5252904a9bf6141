// Package grid assembles extracted staff rows into the queryable
// row/column spatial index.
//
// Each staff row's leaf hitboxes are clustered into horizontally
// distinct interactive regions by a left-to-right sweep: a box starting
// before the running cluster maximum joins the cluster, one starting at
// or past it opens a new cluster with the boundary at the symmetric
// midpoint. Row markers come from a running sweep over staff baselines.
// A row with no leaves still gets one empty cluster so the grid stays
// rectangular.
//
// The resulting [Index] is immutable and safe for concurrent queries.
// Marker lookups are linear scans over sorted slices; one page's marker
// counts are small enough that binary search would buy nothing.
package grid
