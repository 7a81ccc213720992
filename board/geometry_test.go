package board

import (
	"testing"
)

func TestMeasure(t *testing.T) {
	grid := TargetGrid{
		{0, 1, 0},
		{0, 2},
		{3, 0, 0, 1},
	}

	geo := Measure(grid)

	if geo.Width != 6 {
		t.Errorf("Expected width 6, got %d", geo.Width)
	}
	if geo.Height != 5 {
		t.Errorf("Expected height 5, got %d", geo.Height)
	}
	if geo.TotalTargets != 4 {
		t.Errorf("Expected 4 targets, got %d", geo.TotalTargets)
	}
	if geo.ArmoredTargets != 2 {
		t.Errorf("Expected 2 armored targets, got %d", geo.ArmoredTargets)
	}
	if geo.Targets.Size() != geo.TotalTargets {
		t.Errorf("Expected target set size %d to match total, got %d", geo.TotalTargets, geo.Targets.Size())
	}
	if !geo.Targets.Has(Coord{Row: 3, Col: 4}) {
		t.Error("Expected C4 padding row target to be recorded")
	}
	if geo.MaxLetterIndex() != 3 || geo.MaxNumber() != 3 {
		t.Errorf("Expected bounds (3, 3), got (%d, %d)", geo.MaxLetterIndex(), geo.MaxNumber())
	}
}

func TestMeasureEmpty(t *testing.T) {
	geo := Measure(TargetGrid{})
	if geo.Width != 2 || geo.Height != 2 {
		t.Errorf("Expected 2x2 border-only geometry, got %dx%d", geo.Width, geo.Height)
	}
	if geo.TotalTargets != 0 {
		t.Errorf("Expected no targets, got %d", geo.TotalTargets)
	}
}

func TestColumnLabelCycles(t *testing.T) {
	tests := map[int]string{1: "A", 2: "B", 26: "Z", 27: "A", 28: "B", 0: ""}
	for col, want := range tests {
		if got := ColumnLabel(col); got != want {
			t.Errorf("ColumnLabel(%d): expected %q, got %q", col, want, got)
		}
	}
}

func TestGeometryContains(t *testing.T) {
	geo := Measure(TargetGrid{{1, 0}, {0, 3}})

	inside := []Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	for _, c := range inside {
		if !geo.Contains(c) {
			t.Errorf("Expected %v inside the map", c)
		}
	}

	outside := []Coord{{0, 1}, {1, 0}, {3, 1}, {1, 3}}
	for _, c := range outside {
		if geo.Contains(c) {
			t.Errorf("Expected %+v outside the map", c)
		}
	}
}

func TestTargetGridClonePads(t *testing.T) {
	grid := TargetGrid{{1}, {0, 0, 2}}
	clone := grid.Clone()

	if len(clone[0]) != 3 {
		t.Fatalf("Expected padded row length 3, got %d", len(clone[0]))
	}

	clone.Set(Coord{Row: 1, Col: 1}, 0)
	if grid[0][0] != 1 {
		t.Error("Expected clone mutation to leave the source intact")
	}
}

func TestTargetGridAtOutsideRow(t *testing.T) {
	grid := TargetGrid{{1}, {0, 0, 2}}

	if v := grid.At(Coord{Row: 1, Col: 3}); v != 0 {
		t.Errorf("Expected padded cell to read 0, got %d", v)
	}
	if v := grid.At(Coord{Row: 5, Col: 1}); v != 0 {
		t.Errorf("Expected missing row to read 0, got %d", v)
	}
	if !grid.Set(Coord{Row: 1, Col: 3}, 4) || grid.At(Coord{Row: 1, Col: 3}) != 4 {
		t.Error("Expected Set to grow a short row")
	}
	if grid.Set(Coord{Row: 9, Col: 1}, 1) {
		t.Error("Expected Set on a missing row to fail")
	}
}
