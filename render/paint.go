package render

import (
	"github.com/gdamore/tcell/v2"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleFog        = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleUnrevealed = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	styleMiss       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleHit        = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleArmored    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// Style returns the terminal style for a cell kind
func Style(k Kind) tcell.Style {
	switch k {
	case KindFog:
		return styleFog
	case KindUnrevealed:
		return styleUnrevealed
	case KindMiss:
		return styleMiss
	case KindHit:
		return styleHit
	case KindArmored:
		return styleArmored
	default:
		return styleBorder
	}
}

// Swatch is the legend cell for a marker kind as shown in the mission summary
func Swatch(k Kind) Cell {
	switch k {
	case KindUnrevealed, KindArmored:
		return Cell{Kind: k, Text: " - "}
	case KindMiss:
		return Cell{Kind: k, Text: " X "}
	case KindHit:
		return Cell{Kind: k, Text: " O "}
	default:
		return Cell{Kind: k, Text: pad("", CellWidth)}
	}
}

// Paint draws g with its top-left corner at (x, y) and returns the rows used
func Paint(c Canvas, x, y int, g Grid) int {
	for r, row := range g.Cells {
		cx := x
		for _, cell := range row {
			cx = PaintCell(c, cx, y+r, cell)
		}
	}
	return g.Height
}

// PaintCell draws one cell and returns the column after it
func PaintCell(c Canvas, x, y int, cell Cell) int {
	style := Style(cell.Kind)
	for _, r := range cell.Text {
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// DrawText writes s in style starting at (x, y) and returns the column after it
func DrawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
