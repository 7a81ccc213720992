package board

// Coord addresses an interior cell of the rendered grid.
// Row and Col are 1-based; row 0 and col 0 hold the labels.
type Coord struct {
	Row, Col int
}

// Label returns the player-facing form of the coordinate, e.g. "B3"
func (c Coord) Label() string {
	return ColumnLabel(c.Col) + RowLabel(c.Row)
}

func (c Coord) String() string {
	return c.Label()
}
