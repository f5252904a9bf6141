package grid

import (
	"sort"
	"strings"

	"github.com/tsawler/staffmap/model"
)

// rowClusters is the result of clustering one staff row: column markers,
// the hitboxes per cell, and the per-cell element id lists.
type rowClusters struct {
	markers []int
	cells   [][]model.Hitbox
	cellIDs [][]string
}

// assembleRow clusters a row's leaves between the leading margin and the
// right edge. The sweep is deterministic: ties at a cluster's maximum
// open a new cluster, and the boundary lands on the floor midpoint
// between the new box's origin and the previous cluster's maximum.
func assembleRow(leaves []model.Hitbox, leadX, rightX int, ids *model.IDTable) rowClusters {
	if len(leaves) == 0 {
		// Zero leaves still yield one empty cluster bounded by margin
		// and right edge, preserving grid rectangularity.
		return rowClusters{
			markers: []int{leadX, rightX},
			cells:   [][]model.Hitbox{nil},
			cellIDs: [][]string{nil},
		}
	}

	sorted := append([]model.Hitbox(nil), leaves...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	rc := rowClusters{markers: []int{leadX}}

	cell := []model.Hitbox{sorted[0]}
	clusterMaxX := sorted[0].Right()

	for _, box := range sorted[1:] {
		if box.X >= clusterMaxX {
			rc.markers = append(rc.markers, (box.X+clusterMaxX)/2)
			rc.cells = append(rc.cells, cell)
			cell = []model.Hitbox{box}
			clusterMaxX = box.Right()
			continue
		}

		cell = append(cell, box)
		if box.Right() > clusterMaxX {
			clusterMaxX = box.Right()
		}
	}
	rc.cells = append(rc.cells, cell)
	rc.markers = append(rc.markers, rightX)

	for _, cell := range rc.cells {
		rc.cellIDs = append(rc.cellIDs, cellIDNames(cell, ids))
	}
	return rc
}

// cellIDNames returns the cell's element ids, de-duplicated in
// first-seen order.
func cellIDNames(cell []model.Hitbox, ids *model.IDTable) []string {
	var names []string
	seen := make(map[int]bool, len(cell))

	for _, box := range cell {
		if seen[box.ElementID] {
			continue
		}
		seen[box.ElementID] = true
		names = append(names, ids.Name(box.ElementID))
	}
	return names
}

// clusterLabel joins a cell's id list with slashes.
func clusterLabel(names []string) string {
	return strings.Join(names, "/")
}
