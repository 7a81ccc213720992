// Package render projects mission state into a labeled display grid and paints it to a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/salvo/battle"
	"github.com/lixenwraith/salvo/board"
)

// Kind identifies what a display cell shows
type Kind uint8

const (
	KindCorner Kind = iota
	KindColumnLabel
	KindRowLabel
	KindBorder
	KindFog
	KindUnrevealed
	KindMiss
	KindHit
	KindArmored
)

// Cell widths in terminal columns
const (
	CellWidth   = 3
	BorderWidth = 2
)

// Cell is one rendered grid position; Text is already padded to its display width
type Cell struct {
	Kind Kind
	Text string
}

// Grid is the full display, Height rows of Width cells
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}

// At returns the cell at rendered row/column
func (g Grid) At(row, col int) Cell {
	return g.Cells[row][col]
}

// Build renders mission state without touching it.
// Fired cells come from the ledger. revealAll additionally marks every load-time
// target in geo.Targets that was never fired at.
func Build(geo board.Geometry, ledger *battle.Ledger, revealAll bool) Grid {
	out := Grid{
		Width:  geo.Width,
		Height: geo.Height,
		Cells:  make([][]Cell, geo.Height),
	}

	for row := 0; row < geo.Height; row++ {
		out.Cells[row] = make([]Cell, geo.Width)
		for col := 0; col < geo.Width; col++ {
			out.Cells[row][col] = buildCell(geo, ledger, revealAll, row, col)
		}
	}
	return out
}

func buildCell(geo board.Geometry, ledger *battle.Ledger, revealAll bool, row, col int) Cell {
	switch {
	case col == geo.Width-1:
		return Cell{Kind: KindBorder, Text: pad("", BorderWidth)}
	case row == geo.Height-1:
		return Cell{Kind: KindBorder, Text: pad("", CellWidth)}
	case row == 0 && col == 0:
		return Cell{Kind: KindCorner, Text: pad("", CellWidth)}
	case row == 0:
		return Cell{Kind: KindColumnLabel, Text: pad(" "+board.ColumnLabel(col), CellWidth)}
	case col == 0:
		return Cell{Kind: KindRowLabel, Text: pad(board.RowLabel(row), CellWidth)}
	}

	return fireAreaCell(geo, board.Coord{Row: row, Col: col}, ledger, revealAll)
}

func fireAreaCell(geo board.Geometry, c board.Coord, ledger *battle.Ledger, revealAll bool) Cell {
	rec, fired := ledger.Get(c)
	if !fired {
		if revealAll && geo.Targets.Has(c) {
			return Cell{Kind: KindUnrevealed, Text: " - "}
		}
		return Cell{Kind: KindFog, Text: pad("", CellWidth)}
	}

	switch rec.Outcome {
	case battle.Hit:
		return Cell{Kind: KindHit, Text: " O "}
	case battle.Armored:
		return Cell{Kind: KindArmored, Text: " - "}
	default:
		return Cell{Kind: KindMiss, Text: " X "}
	}
}

// String is the uncolored projection used for logs and the clipboard report.
// Fog is shown as '.' so the board shape survives without background colors.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Kind == KindFog {
				sb.WriteString(" . ")
				continue
			}
			sb.WriteString(cell.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
