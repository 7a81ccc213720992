package board

import (
	"strconv"

	"github.com/zyedidia/generic/mapset"
)

// Letters used for column labels
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Geometry is derived once per scenario and never changes afterwards
type Geometry struct {
	// Rendered dimensions including the label/border rows and columns
	Width, Height int

	TotalTargets   int
	ArmoredTargets int

	// Targets holds every cell that carried a live target at load time
	Targets mapset.Set[Coord]
}

// Measure computes the geometry of a target grid
func Measure(g TargetGrid) Geometry {
	geo := Geometry{
		Height:  len(g) + 2,
		Targets: mapset.New[Coord](),
	}

	cols := 0
	for y, row := range g {
		if len(row) > cols {
			cols = len(row)
		}
		for x, v := range row {
			if v <= 0 {
				continue
			}
			if v > 1 {
				geo.ArmoredTargets++
			}
			geo.Targets.Put(Coord{Row: y + 1, Col: x + 1})
		}
	}
	geo.Width = cols + 2
	geo.TotalTargets = geo.Targets.Size()

	return geo
}

// MaxLetterIndex is the highest zero-based letter index that addresses a firing column
func (g Geometry) MaxLetterIndex() int {
	return g.Width - 3
}

// MaxNumber is the highest row number that addresses a firing row
func (g Geometry) MaxNumber() int {
	return g.Height - 2
}

// Contains reports whether c lies inside the firing area
func (g Geometry) Contains(c Coord) bool {
	return c.Row >= 1 && c.Row <= g.MaxNumber() && c.Col >= 1 && c.Col <= g.MaxLetterIndex()+1
}

// Interior reports whether the rendered cell (row, col) is part of the firing area
func (g Geometry) Interior(row, col int) bool {
	return row > 0 && row < g.Height-1 && col > 0 && col < g.Width-1
}

// ColumnLabel returns the letter for a 1-based column, cycling past Z
func ColumnLabel(col int) string {
	if col < 1 {
		return ""
	}
	i := (col - 1) % len(Letters)
	return Letters[i : i+1]
}

// RowLabel returns the number shown for a 1-based row
func RowLabel(row int) string {
	return strconv.Itoa(row)
}
