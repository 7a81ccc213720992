package game

import (
	"math/rand"

	"github.com/lixenwraith/salvo/battle"
	"github.com/lixenwraith/salvo/render"
	"github.com/lixenwraith/salvo/scenario"
)

// Briefing is shown before the player accepts a mission
type Briefing struct {
	MissionID string
	Name      string
	Targets   int
	Missiles  int
}

// UI is everything the flow needs from the terminal.
// Any error it returns ends Run.
type UI interface {
	Brief(Briefing)
	Confirm(Question) (bool, error)
	ReadCoordinate() (string, error)
	ChooseReplay() (ReplayChoice, error)
	ShowGrid(render.Grid)
	Announce(Report)
	ShowStatus(battle.State)
	ShowSummary(battle.Stats)
}

// Sounds plays outcome cues
type Sounds interface {
	Miss()
	Hit()
	Armored()
	Reject()
}

// Catalogue is a source of scenarios; *scenario.Set implements it
type Catalogue interface {
	Len() int
	Pick(index int, rng *rand.Rand) (int, scenario.Scenario, error)
}

type silence struct{}

func (silence) Miss()    {}
func (silence) Hit()     {}
func (silence) Armored() {}
func (silence) Reject()  {}
