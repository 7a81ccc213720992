package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/salvo/board"
)

type recordingCanvas struct {
	runes  map[[2]int]rune
	styles map[[2]int]tcell.Style
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{
		runes:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (c *recordingCanvas) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	c.runes[[2]int{x, y}] = primary
	c.styles[[2]int{x, y}] = style
}

var _ Canvas = tcell.Screen(nil)

func TestPaintLayout(t *testing.T) {
	s := newSession(board.TargetGrid{{1, 0}}, 3)
	s.Resolve(board.Coord{Row: 1, Col: 1})
	g := build(s, false)

	canvas := newRecordingCanvas()
	rows := Paint(canvas, 2, 1, g)
	if rows != 3 {
		t.Errorf("Expected 3 rows painted, got %d", rows)
	}

	// Header " A " starts after the 3-wide corner
	if r := canvas.runes[[2]int{2 + 4, 1}]; r != 'A' {
		t.Errorf("Expected 'A' label, got %q", r)
	}
	// Hit marker in row 1, column 1
	if r := canvas.runes[[2]int{2 + 4, 2}]; r != 'O' {
		t.Errorf("Expected hit marker 'O', got %q", r)
	}
	if st := canvas.styles[[2]int{2 + 4, 2}]; st != Style(KindHit) {
		t.Error("Expected hit style on hit marker")
	}
	// 3 cells of 3 columns plus a 2-column right border
	if _, ok := canvas.runes[[2]int{2 + 3*CellWidth + BorderWidth - 1, 1}]; !ok {
		t.Error("Expected right border painted")
	}
	if _, ok := canvas.runes[[2]int{2 + 3*CellWidth + BorderWidth, 1}]; ok {
		t.Error("Expected nothing painted past the border")
	}
}

func TestStylesDistinct(t *testing.T) {
	kinds := []Kind{KindFog, KindUnrevealed, KindMiss, KindHit, KindArmored, KindBorder}
	seen := make(map[tcell.Style]Kind)
	for _, k := range kinds {
		st := Style(k)
		if prev, ok := seen[st]; ok {
			t.Errorf("Kinds %d and %d share a style", prev, k)
		}
		seen[st] = k
	}
}

func TestSwatch(t *testing.T) {
	if Swatch(KindHit).Text != " O " || Swatch(KindMiss).Text != " X " {
		t.Error("Unexpected swatch text")
	}
	if Swatch(KindArmored).Text != Swatch(KindUnrevealed).Text {
		t.Error("Expected armored and unrevealed swatches to share a glyph")
	}
}
