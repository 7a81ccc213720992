// Package game runs the mission flow: briefing, turns, end-of-game reveal and replay.
package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/salvo/battle"
	"github.com/lixenwraith/salvo/board"
	"github.com/lixenwraith/salvo/render"
	"github.com/lixenwraith/salvo/scenario"
)

// DefaultStartDelay is the pause between accepting a mission and the first grid
const DefaultStartDelay = 800 * time.Millisecond

// Config selects the first mission and pacing
type Config struct {
	// Mission is the scenario index for the first mission, scenario.Random to roll one
	Mission    int
	StartDelay time.Duration
	Seed       int64
}

// Validate checks that Mission names a scenario in maps
func (c Config) Validate(maps Catalogue) error {
	if c.Mission == scenario.Random {
		return nil
	}
	if c.Mission < 0 || c.Mission >= maps.Len() {
		return fmt.Errorf("mission %d of %d: %w", c.Mission, maps.Len(), scenario.ErrNoSuchPick)
	}
	return nil
}

// Debrief is handed to the end-of-mission hook
type Debrief struct {
	MissionID string
	Name      string
	Stats     battle.Stats
	Board     render.Grid
}

// Option customizes a Runner
type Option func(*Runner)

// WithSounds attaches outcome cues
func WithSounds(s Sounds) Option {
	return func(r *Runner) {
		if s != nil {
			r.sounds = s
		}
	}
}

// WithSleep replaces time.Sleep for the start delay
func WithSleep(fn func(time.Duration)) Option {
	return func(r *Runner) {
		r.sleep = fn
	}
}

// WithDebrief registers a callback run after each mission summary
func WithDebrief(fn func(Debrief)) Option {
	return func(r *Runner) {
		r.debrief = fn
	}
}

// Runner drives one player through any number of missions
type Runner struct {
	cfg     Config
	maps    Catalogue
	ui      UI
	sounds  Sounds
	rng     *rand.Rand
	sleep   func(time.Duration)
	debrief func(Debrief)

	phase     Phase
	session   *battle.Session
	missionID string
	next      int // scenario index for the next load
}

// NewRunner creates a runner positioned at NotStarted.
// A zero Config.Seed is replaced by a time-based one.
func NewRunner(cfg Config, maps Catalogue, ui UI, opts ...Option) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := &Runner{
		cfg:    cfg,
		maps:   maps,
		ui:     ui,
		sounds: silence{},
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		sleep:  time.Sleep,
		phase:  NotStarted,
		next:   cfg.Mission,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phase returns the current flow phase
func (r *Runner) Phase() Phase {
	return r.phase
}

// Session returns the active mission, nil before the first load
func (r *Runner) Session() *battle.Session {
	return r.session
}

// Seed returns the seed behind mission selection
func (r *Runner) Seed() int64 {
	return r.cfg.Seed
}

// Run loops over phases until the player quits or the UI fails
func (r *Runner) Run() error {
	if err := r.cfg.Validate(r.maps); err != nil {
		return err
	}

	for r.phase != Quit {
		var (
			next Phase
			err  error
		)

		switch r.phase {
		case NotStarted:
			next, err = r.load()
		case AwaitingConsent:
			next, err = r.awaitConsent()
		case Playing:
			next, err = r.play()
		case Ended:
			next, err = r.end()
		case Replay:
			next, err = r.replay()
		default:
			return fmt.Errorf("unknown phase %d", r.phase)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", r.phase, err)
		}

		log.Printf("mission %s: %s -> %s", r.missionID, r.phase, next)
		r.phase = next
	}
	return nil
}

// Grid renders the active mission
func (r *Runner) Grid(revealAll bool) render.Grid {
	s := r.session
	return render.Build(s.Geometry(), s.Ledger(), revealAll)
}

func (r *Runner) load() (Phase, error) {
	index, sc, err := r.maps.Pick(r.next, r.rng)
	if err != nil {
		return NotStarted, fmt.Errorf("load scenario: %w", err)
	}

	r.session = battle.New(index, sc)
	r.missionID = uuid.NewString()
	r.next = index

	st := r.session.State()
	log.Printf("mission %s: scenario %d %q, %d targets (%d armored), %d missiles",
		r.missionID, index, sc.Name, st.TotalTargets, st.ArmoredTargets, st.MissilesLeft)

	return AwaitingConsent, nil
}

func (r *Runner) awaitConsent() (Phase, error) {
	st := r.session.State()
	r.ui.Brief(Briefing{
		MissionID: r.missionID,
		Name:      r.session.Name(),
		Targets:   st.TargetsRemaining,
		Missiles:  st.MissilesLeft,
	})

	accepted, err := r.ui.Confirm(QuestionAccept)
	if err != nil {
		return AwaitingConsent, err
	}
	if !accepted {
		r.ui.Announce(Report{Notice: NoticeDeclined})
		return Quit, nil
	}

	r.ui.Announce(Report{Notice: NoticeWelcome})
	if r.cfg.StartDelay > 0 {
		r.sleep(r.cfg.StartDelay)
	}
	r.ui.ShowGrid(r.Grid(false))
	return Playing, nil
}

func (r *Runner) play() (Phase, error) {
	for !r.session.Over() {
		raw, err := r.ui.ReadCoordinate()
		if err != nil {
			return Playing, err
		}

		shot, err := r.session.ValidateAndResolve(raw)
		if err != nil {
			if rerr := r.reject(raw, err); rerr != nil {
				return Playing, rerr
			}
			continue
		}

		r.announceShot(shot)

		if r.session.IsWon() {
			r.ui.Announce(Report{Notice: NoticeWin})
			break
		}
		r.ui.ShowGrid(r.Grid(false))
		r.ui.ShowStatus(r.session.State())
	}
	return Ended, nil
}

// reject reports a refused coordinate; anything other than a validation failure is returned
func (r *Runner) reject(raw string, err error) error {
	switch {
	case errors.Is(err, battle.ErrDuplicateShot):
		r.ui.Announce(Report{Notice: NoticeDuplicate, Coord: raw})
	case errors.Is(err, board.ErrMalformed), errors.Is(err, board.ErrOutOfBounds):
		r.ui.Announce(Report{Notice: NoticeOffMap, Coord: raw})
	default:
		return err
	}

	log.Printf("mission %s: %v", r.missionID, err)
	r.sounds.Reject()
	return nil
}

func (r *Runner) announceShot(shot battle.Shot) {
	rec := shot.Record
	log.Printf("mission %s: %s %s %d->%d", r.missionID, shot.Coord, rec.Outcome, rec.Before, rec.After)

	rep := Report{Coord: shot.Coord.Label()}
	switch rec.Outcome {
	case battle.Miss:
		rep.Notice = NoticeMiss
		r.sounds.Miss()
	case battle.Hit:
		rep.Notice = NoticeHit
		r.sounds.Hit()
	case battle.Armored:
		rep.Notice = NoticeArmoredFirst
		if shot.Repeat {
			rep.Notice = NoticeArmoredAgain
		}
		rep.ShotsNeeded = rec.After
		r.sounds.Armored()
	}
	r.ui.Announce(rep)
}

func (r *Runner) end() (Phase, error) {
	final := r.Grid(true)
	r.ui.ShowGrid(final)

	if r.session.IsLost() {
		r.ui.Announce(Report{Notice: NoticeLoss})
	}

	stats := r.session.Summary()
	r.ui.ShowSummary(stats)
	log.Printf("mission %s: %s, %+v", r.missionID, stats.Result, stats)

	if r.debrief != nil {
		r.debrief(Debrief{
			MissionID: r.missionID,
			Name:      r.session.Name(),
			Stats:     stats,
			Board:     final,
		})
	}
	return Replay, nil
}

func (r *Runner) replay() (Phase, error) {
	for {
		choice, err := r.ui.ChooseReplay()
		if err != nil {
			return Replay, err
		}

		switch choice {
		case ReplayRetry:
			r.next = r.session.State().ScenarioIndex
			return r.load()
		case ReplayNewMission:
			r.next = scenario.Random
			return r.load()
		}

		sure, err := r.ui.Confirm(QuestionSure)
		if err != nil {
			return Replay, err
		}
		if sure {
			r.ui.Announce(Report{Notice: NoticeQuit})
			return Quit, nil
		}
		r.ui.Announce(Report{Notice: NoticeIndecisive})
	}
}
