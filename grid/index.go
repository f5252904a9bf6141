package grid

import (
	"github.com/tsawler/staffmap/extract"
	"github.com/tsawler/staffmap/model"
)

// Index is the built row/column spatial index for one page. It is
// immutable after New returns and safe for concurrent queries without
// synchronization.
type Index struct {
	rowMarkers []int
	colMarkers [][]int
	cells      [][][]model.Hitbox
	cellIDs    [][][]string
	labels     [][]string
	overlays   []model.FloatingRect
	ids        *model.IDTable
}

// New builds the index from the extraction result. Row markers come
// from a running sweep: each staff opens its row at the floor midpoint
// between the previous staff's bottom baseline (0 before the first) and
// its own top baseline; a trailing marker closes the final row below
// the last bottom baseline. pageRight bounds every row's final column
// marker.
func New(res *extract.Result, cfg model.Config, pageRight int) *Index {
	ix := &Index{ids: res.IDs}

	prevBottom := 0
	for _, row := range res.Rows {
		ix.rowMarkers = append(ix.rowMarkers, (prevBottom+row.TopY)/2)
		prevBottom = row.BottomY
	}
	if len(res.Rows) > 0 {
		ix.rowMarkers = append(ix.rowMarkers, prevBottom+cfg.BottomMargin)
	}

	for _, row := range res.Rows {
		rc := assembleRow(row.Leaves, row.LeadX, pageRight, res.IDs)

		ix.colMarkers = append(ix.colMarkers, rc.markers)
		ix.cells = append(ix.cells, rc.cells)
		ix.cellIDs = append(ix.cellIDs, rc.cellIDs)

		labels := make([]string, len(rc.cellIDs))
		for i, names := range rc.cellIDs {
			labels[i] = clusterLabel(names)
		}
		ix.labels = append(ix.labels, labels)
	}

	ix.overlays = resolveOverlayRows(ix, res.Overlays)
	return ix
}

// resolveOverlayRows assigns each floating overlay the inclusive row
// range its vertical extent intersects.
func resolveOverlayRows(ix *Index, overlays []model.FloatingRect) []model.FloatingRect {
	if len(overlays) == 0 {
		return nil
	}

	resolved := make([]model.FloatingRect, 0, len(overlays))
	rows := ix.RowCount()

	for _, ov := range overlays {
		minRow := ix.RowIndex(ov.Top())
		if minRow < 0 {
			minRow = 0
		}
		maxRow := ix.RowIndex(ov.Bottom())
		if maxRow < 0 {
			if rows > 0 && ov.Bottom() >= ix.rowMarkers[len(ix.rowMarkers)-1] {
				maxRow = rows - 1
			} else {
				maxRow = minRow
			}
		}

		ov.MinRow = minRow
		ov.MaxRow = maxRow
		resolved = append(resolved, ov)
	}
	return resolved
}

// RowCount returns the number of staff rows.
func (ix *Index) RowCount() int {
	if len(ix.rowMarkers) == 0 {
		return 0
	}
	return len(ix.rowMarkers) - 1
}

// ClusterCount returns the number of clusters in a row, or 0 for an
// invalid row.
func (ix *Index) ClusterCount(row int) int {
	if row < 0 || row >= len(ix.colMarkers) {
		return 0
	}
	return len(ix.colMarkers[row]) - 1
}

// RowIndex returns the index of the row band containing y. A marker is
// the inclusive lower bound of the band below it; -1 means y lies above
// all content or below the final marker.
func (ix *Index) RowIndex(y int) int {
	for i, m := range ix.rowMarkers {
		if m > y {
			return i - 1
		}
	}
	return -1
}

// ColIndex returns the index of the column band containing x within a
// row, with the same boundary convention as RowIndex; -1 for an invalid
// row or an x outside the row's markers.
func (ix *Index) ColIndex(row, x int) int {
	if row < 0 || row >= len(ix.colMarkers) {
		return -1
	}
	for i, m := range ix.colMarkers[row] {
		if m > x {
			return i - 1
		}
	}
	return -1
}

// GroupBounds returns the rectangle of the grid cell containing the
// point, or a zero rectangle when the point resolves to no cell.
func (ix *Index) GroupBounds(x, y int) model.Rect {
	r := ix.RowIndex(y)
	c := ix.ColIndex(r, x)
	if r < 0 || c < 0 {
		return model.Rect{}
	}

	cm := ix.colMarkers[r]
	return model.Rect{
		X:      cm[c],
		Y:      ix.rowMarkers[r],
		Width:  cm[c+1] - cm[c],
		Height: ix.rowMarkers[r+1] - ix.rowMarkers[r],
	}
}

// ElementAt resolves the point to a single element. Floating overlays
// take priority at an overlapping point; otherwise the resolved cell's
// hitboxes are tested for strict containment. The empty string means no
// element occupies the point.
func (ix *Index) ElementAt(x, y int) string {
	r := ix.RowIndex(y)

	for _, ov := range ix.overlays {
		if ov.MinRow <= r && r <= ov.MaxRow && ov.ContainsStrict(x, y) {
			return ov.Description
		}
	}

	c := ix.ColIndex(r, x)
	if r < 0 || c < 0 {
		return ""
	}
	for _, box := range ix.cells[r][c] {
		if box.ContainsStrict(x, y) {
			return ix.ids.Name(box.ElementID)
		}
	}
	return ""
}

// GroupIDAt returns the resolved cell's cluster label, or "" when the
// point resolves to no cell.
func (ix *Index) GroupIDAt(x, y int) string {
	r := ix.RowIndex(y)
	c := ix.ColIndex(r, x)
	if r < 0 || c < 0 {
		return ""
	}
	return ix.labels[r][c]
}

// ChildrenAt returns every element id in the resolved cell, or nil when
// the point resolves to no cell.
func (ix *Index) ChildrenAt(x, y int) []string {
	r := ix.RowIndex(y)
	c := ix.ColIndex(r, x)
	if r < 0 || c < 0 {
		return nil
	}
	return append([]string(nil), ix.cellIDs[r][c]...)
}

// RowMarkers returns a copy of the row boundary sequence.
func (ix *Index) RowMarkers() []int {
	return append([]int(nil), ix.rowMarkers...)
}

// ColumnMarkers returns a copy of a row's column boundary sequence, or
// nil for an invalid row.
func (ix *Index) ColumnMarkers(row int) []int {
	if row < 0 || row >= len(ix.colMarkers) {
		return nil
	}
	return append([]int(nil), ix.colMarkers[row]...)
}

// CellHitboxes returns a copy of the hitboxes in one cell.
func (ix *Index) CellHitboxes(row, col int) []model.Hitbox {
	if row < 0 || row >= len(ix.cells) {
		return nil
	}
	if col < 0 || col >= len(ix.cells[row]) {
		return nil
	}
	return append([]model.Hitbox(nil), ix.cells[row][col]...)
}

// Hitboxes returns every hitbox in the index, row by row.
func (ix *Index) Hitboxes() []model.Hitbox {
	var all []model.Hitbox
	for _, row := range ix.cells {
		for _, cell := range row {
			all = append(all, cell...)
		}
	}
	return all
}

// Overlays returns a copy of the floating overlay regions.
func (ix *Index) Overlays() []model.FloatingRect {
	return append([]model.FloatingRect(nil), ix.overlays...)
}

// Name resolves a dense element id back to its external id.
func (ix *Index) Name(elementID int) string {
	return ix.ids.Name(elementID)
}
