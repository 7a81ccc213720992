// Package scenario loads the mission maps a game is played on.
package scenario

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/lixenwraith/salvo/board"
)

// Random asks Pick for a uniformly chosen scenario
const Random = -1

var (
	ErrEmpty      = errors.New("scenario file holds no scenarios")
	ErrNoSuchPick = errors.New("scenario index out of range")
	ErrTooWide    = errors.New("grid wider than the column letters")
)

//go:embed maps.json
var defaultMaps []byte

// Scenario is one playable map. Grid is never mutated; sessions work on a clone.
type Scenario struct {
	Name             string
	Grid             board.TargetGrid
	MissileAllowance int
}

// Set is the ordered collection of scenarios from one source
type Set struct {
	scenarios []Scenario
}

// fileEntry mirrors one element of the JSON map file
type fileEntry struct {
	Name             string   `json:"name"`
	Grid             [][]*int `json:"grid"`
	MissileAllowance int      `json:"missile_allowance"`
}

// Default returns the scenarios bundled with the binary
func Default() (*Set, error) {
	return Parse(defaultMaps)
}

// Load reads and validates a scenario file
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a JSON scenario list. Null cells read as empty water.
func Parse(data []byte) (*Set, error) {
	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	set := &Set{scenarios: make([]Scenario, 0, len(entries))}
	for i, e := range entries {
		s, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("Mission %d", i+1)
		}
		set.scenarios = append(set.scenarios, s)
	}
	return set, nil
}

func (e fileEntry) build() (Scenario, error) {
	if len(e.Grid) == 0 {
		return Scenario{}, errors.New("grid has no rows")
	}
	if e.MissileAllowance < 1 {
		return Scenario{}, fmt.Errorf("missile allowance %d, need at least 1", e.MissileAllowance)
	}

	grid := make(board.TargetGrid, len(e.Grid))
	targets := 0
	for y, row := range e.Grid {
		if len(row) > len(board.Letters) {
			return Scenario{}, fmt.Errorf("row %d has %d columns, max %d: %w", y+1, len(row), len(board.Letters), ErrTooWide)
		}
		grid[y] = make([]int, len(row))
		for x, cell := range row {
			if cell == nil {
				continue
			}
			if *cell < 0 {
				return Scenario{}, fmt.Errorf("row %d col %d: negative value %d", y+1, x+1, *cell)
			}
			grid[y][x] = *cell
			if *cell > 0 {
				targets++
			}
		}
	}
	if targets == 0 {
		return Scenario{}, errors.New("grid has no targets")
	}

	return Scenario{
		Name:             e.Name,
		Grid:             grid,
		MissileAllowance: e.MissileAllowance,
	}, nil
}

// Len returns the number of scenarios
func (s *Set) Len() int {
	return len(s.scenarios)
}

// Get returns the scenario at index
func (s *Set) Get(index int) (Scenario, error) {
	if index < 0 || index >= len(s.scenarios) {
		return Scenario{}, fmt.Errorf("%w: %d of %d", ErrNoSuchPick, index, len(s.scenarios))
	}
	return s.scenarios[index], nil
}

// Pick returns the scenario at index, or a random one when index is Random
func (s *Set) Pick(index int, rng *rand.Rand) (int, Scenario, error) {
	if index == Random {
		index = rng.Intn(len(s.scenarios))
	}
	sc, err := s.Get(index)
	if err != nil {
		return 0, Scenario{}, err
	}
	return index, sc, nil
}
