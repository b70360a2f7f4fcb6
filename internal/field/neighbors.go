package field

// qualifiedNeighbors collects the window members around (r, c) that
// share the cell's cluster, clipped to the field bounds. With the
// magnitude filter on, a neighbor must be at least as strong as the
// center. The center always qualifies, so the result is never empty.
func (f *Field) qualifiedNeighbors(r, c, k int, ignoreMagnitude bool) []Cell {
	rows, cols := f.Rows(), f.Cols()
	half := k / 2

	top := max(0, r-half)
	bottom := min(rows-1, r+half)
	left := max(0, c-half)
	right := min(cols-1, c+half)

	center := f.cells[r][c]
	neighbors := make([]Cell, 0, (bottom-top+1)*(right-left+1))
	for rr := top; rr <= bottom; rr++ {
		for cc := left; cc <= right; cc++ {
			n := f.cells[rr][cc]
			if n.Cluster != center.Cluster {
				continue
			}
			// The center compares equal to itself, so it always passes.
			if !ignoreMagnitude && n.Magnitude < center.Magnitude {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
