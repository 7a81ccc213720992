package board

// TargetGrid holds the live target values of a scenario, one slice per map row.
// Rows may be ragged; cells past the end of a row read as 0.
type TargetGrid [][]int

// At returns the value at the 1-based coordinate, 0 if the cell is outside the stored rows
func (g TargetGrid) At(c Coord) int {
	r, col := c.Row-1, c.Col-1
	if r < 0 || r >= len(g) {
		return 0
	}
	row := g[r]
	if col < 0 || col >= len(row) {
		return 0
	}
	return row[col]
}

// Set writes v at the 1-based coordinate, growing a short row to reach it.
// Returns false when the row does not exist.
func (g TargetGrid) Set(c Coord, v int) bool {
	r, col := c.Row-1, c.Col-1
	if r < 0 || r >= len(g) || col < 0 {
		return false
	}
	for len(g[r]) <= col {
		g[r] = append(g[r], 0)
	}
	g[r][col] = v
	return true
}

// Clone returns a deep copy padded to a rectangle of the widest row
func (g TargetGrid) Clone() TargetGrid {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make(TargetGrid, len(g))
	for y, row := range g {
		out[y] = make([]int, width)
		copy(out[y], row)
	}
	return out
}
