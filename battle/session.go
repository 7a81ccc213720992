// Package battle resolves shots against a target grid and keeps the fired-cell ledger.
package battle

import (
	"github.com/lixenwraith/salvo/board"
	"github.com/lixenwraith/salvo/scenario"
)

// State is the mission counters. TotalTargets and ArmoredTargets are fixed at load.
type State struct {
	ScenarioIndex    int
	MissilesLeft     int
	TargetsRemaining int
	TotalTargets     int
	ArmoredTargets   int
}

// Shot is the result of one accepted firing
type Shot struct {
	Coord  board.Coord
	Record FiredRecord
	// Repeat is set when the coordinate was already in the ledger (a follow-up on armor)
	Repeat bool
}

// Session owns the target grid, ledger and counters of one mission.
// It is not safe for concurrent use; the game drives it from a single goroutine.
type Session struct {
	name     string
	geometry board.Geometry
	grid     board.TargetGrid
	ledger   *Ledger
	state    State
	shots    int
}

// New starts a mission on a private copy of the scenario grid
func New(index int, sc scenario.Scenario) *Session {
	grid := sc.Grid.Clone()
	geo := board.Measure(grid)

	return &Session{
		name:     sc.Name,
		geometry: geo,
		grid:     grid,
		ledger:   NewLedger(),
		state: State{
			ScenarioIndex:    index,
			MissilesLeft:     sc.MissileAllowance,
			TargetsRemaining: geo.TotalTargets,
			TotalTargets:     geo.TotalTargets,
			ArmoredTargets:   geo.ArmoredTargets,
		},
	}
}

func (s *Session) Name() string             { return s.name }
func (s *Session) Geometry() board.Geometry { return s.geometry }
func (s *Session) Grid() board.TargetGrid   { return s.grid }
func (s *Session) Ledger() *Ledger          { return s.ledger }
func (s *Session) State() State             { return s.state }

// IsWon reports whether every target is destroyed
func (s *Session) IsWon() bool {
	return s.state.TargetsRemaining == 0
}

// IsLost reports whether ammunition ran out with targets still standing
func (s *Session) IsLost() bool {
	return s.state.MissilesLeft <= 0 && s.state.TargetsRemaining > 0
}

// Over reports whether the mission has ended either way
func (s *Session) Over() bool {
	return s.IsWon() || s.IsLost()
}

// Validate checks c against the map bounds and the duplicate-shot rule
func (s *Session) Validate(c board.Coord) error {
	if !s.geometry.Contains(c) {
		return board.ErrOutOfBounds
	}
	if s.ledger.Closed(c) {
		return ErrDuplicateShot
	}
	return nil
}

// ValidateAndResolve parses player input and fires at it.
// Rejections come back as *ShotError and leave the session untouched.
func (s *Session) ValidateAndResolve(raw string) (Shot, error) {
	if s.Over() {
		return Shot{}, &ShotError{Input: raw, Err: ErrGameOver}
	}

	c, err := board.ParseCoord(raw, s.geometry)
	if err != nil {
		return Shot{}, &ShotError{Input: raw, Err: err}
	}
	if err := s.Validate(c); err != nil {
		return Shot{}, &ShotError{Input: raw, Err: err}
	}

	return s.Resolve(c), nil
}

// Resolve fires one missile at a validated coordinate and applies the outcome
func (s *Session) Resolve(c board.Coord) Shot {
	repeat := s.ledger.Fired(c)

	s.state.MissilesLeft--
	s.shots++

	v := s.grid.At(c)
	var rec FiredRecord
	switch {
	case v <= 0:
		rec = FiredRecord{Outcome: Miss}
	case v == 1:
		s.state.TargetsRemaining--
		s.grid.Set(c, 0)
		rec = FiredRecord{Outcome: Hit, Before: 1, After: 0}
	default:
		s.grid.Set(c, v-1)
		rec = FiredRecord{Outcome: Armored, Before: v, After: v - 1}
	}

	s.ledger.record(c, rec)
	return Shot{Coord: c, Record: rec, Repeat: repeat}
}
