// Package console is the tcell front end: a scrolling message log, the board and a prompt line.
package console

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/salvo/battle"
	"github.com/lixenwraith/salvo/game"
	"github.com/lixenwraith/salvo/render"
)

// ErrInterrupted is returned by prompts when the player presses Esc or Ctrl-C
var ErrInterrupted = errors.New("interrupted by player")

const (
	marginX    = 1
	maxLogSize = 500
)

var (
	styleText   = tcell.StyleDefault
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleAccent = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	stylePrompt = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCursor = tcell.StyleDefault.Reverse(true)
)

// segment is a run of text in one style
type segment struct {
	text  string
	style tcell.Style
	cell  *render.Cell
}

type line []segment

// Console implements game.UI on a tcell screen
type Console struct {
	screen tcell.Screen
	lines  []line
	grid   *render.Grid
	prompt string
	input  []rune
}

var _ game.UI = (*Console)(nil)

// Open creates and initializes the terminal screen
func Open() (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen), nil
}

// New wraps an initialized screen
func New(screen tcell.Screen) *Console {
	return &Console{screen: screen}
}

// Close restores the terminal
func (c *Console) Close() {
	c.screen.Fini()
}

// Brief clears the board and shows the mission introduction
func (c *Console) Brief(b game.Briefing) {
	c.grid = nil
	for _, s := range strings.Split(msgBanner, "\n") {
		c.say(styleText, s)
	}
	c.say(styleText, tr(msgBriefSelected))
	c.say(styleText, tr(msgBriefSystem))
	c.say(styleText, "")
	c.say(styleAccent, tr(msgBriefMission, b.Name, shortID(b.MissionID)))
	c.say(styleText, tr(msgBriefTargets, b.Targets))
	c.say(styleText, tr(msgBriefMissiles, b.Missiles))
	c.say(styleText, tr(msgBriefJob))
	c.say(styleText, "")
	c.draw()
}

// Confirm asks a strict yes/no question; only y and n keys answer it
func (c *Console) Confirm(q game.Question) (bool, error) {
	text := tr(msgAskAccept)
	if q == game.QuestionSure {
		text = tr(msgAskSure)
	}
	c.prompt = text + " " + tr(msgYesNo)
	defer c.clearPrompt()

	for {
		r, err := c.readKey()
		if err != nil {
			return false, err
		}
		switch r {
		case 'y', 'Y':
			c.say(stylePrompt, c.prompt+"y")
			return true, nil
		case 'n', 'N':
			c.say(stylePrompt, c.prompt+"n")
			return false, nil
		}
	}
}

// ReadCoordinate reads one line of input; validation is the caller's job
func (c *Console) ReadCoordinate() (string, error) {
	c.prompt = tr(msgAskFire)
	defer c.clearPrompt()

	raw, err := c.readLine()
	if err != nil {
		return "", err
	}
	c.say(stylePrompt, c.prompt+raw)
	return raw, nil
}

// ChooseReplay offers retry, new mission or giving up
func (c *Console) ChooseReplay() (game.ReplayChoice, error) {
	c.say(styleText, "")
	c.say(styleText, "[1] "+tr(msgRetry))
	c.say(styleText, "[2] "+tr(msgNewMission))
	c.say(styleText, "[0] "+tr(msgGiveUp))
	c.prompt = tr(msgAskReplay) + " " + tr(msgChoose)
	defer c.clearPrompt()

	for {
		r, err := c.readKey()
		if err != nil {
			return game.ReplayGiveUp, err
		}
		switch r {
		case '1':
			return game.ReplayRetry, nil
		case '2':
			return game.ReplayNewMission, nil
		case '0':
			return game.ReplayGiveUp, nil
		}
	}
}

// ShowGrid replaces the board
func (c *Console) ShowGrid(g render.Grid) {
	c.grid = &g
	c.draw()
}

// Announce logs an outcome or flow message
func (c *Console) Announce(r game.Report) {
	switch r.Notice {
	case game.NoticeWelcome:
		c.say(styleText, tr(msgWelcome))
	case game.NoticeDeclined:
		c.say(styleText, tr(msgDeclined))
	case game.NoticeMiss:
		c.say(styleAlert, tr(msgMiss))
	case game.NoticeHit:
		c.say(styleGood, tr(msgHit))
	case game.NoticeArmoredFirst, game.NoticeArmoredAgain:
		if r.Notice == game.NoticeArmoredFirst {
			c.say(styleGood, tr(msgArmored))
		} else {
			c.say(styleGood, tr(msgAnotherHit))
		}
		need := msgNeedMany
		if r.ShotsNeeded == 1 {
			need = msgNeedOne
		}
		c.say(styleText, tr(need, r.ShotsNeeded))
	case game.NoticeOffMap:
		c.say(styleText, tr(msgOffMap))
	case game.NoticeDuplicate:
		c.say(styleText, tr(msgDuplicate))
	case game.NoticeWin:
		c.say(styleGood, tr(msgWin))
	case game.NoticeLoss:
		c.say(styleAlert, tr(msgLoss))
	case game.NoticeQuit:
		c.say(styleText, tr(msgQuit))
	case game.NoticeIndecisive:
		c.say(styleText, tr(msgIndecisive))
	}
	c.draw()
}

// ShowStatus reports the counters after a shot
func (c *Console) ShowStatus(s battle.State) {
	c.say(styleText, tr(msgMissilesLeft, s.MissilesLeft))
	c.say(styleText, tr(msgTargetsLeft, s.TargetsRemaining))
	c.say(styleText, msgSeparator)
	c.draw()
}

// ShowSummary prints the end-of-mission legend and statistics
func (c *Console) ShowSummary(s battle.Stats) {
	rows := []struct {
		label string
		kind  render.Kind
		value int
	}{
		{tr(msgSumHit), render.KindHit, s.TargetsHit},
		{tr(msgSumMisfired), render.KindMiss, s.TargetsMisfired},
		{tr(msgSumLeft), render.KindUnrevealed, s.TargetsLeft},
		{tr(msgSumArmored), render.KindArmored, s.ArmoredTargets},
	}

	c.say(styleText, "")
	for _, row := range rows {
		swatch := render.Swatch(row.kind)
		c.add(line{
			{text: row.label, style: styleText},
			{cell: &swatch},
			{text: tr(msgSumValue, row.value), style: styleText},
		})
	}
	c.say(styleText, tr(msgSumShots, s.ShotsFired, s.MissilesLeft))
	c.draw()
}

func (c *Console) say(style tcell.Style, text string) {
	c.add(line{{text: text, style: style}})
}

func (c *Console) add(l line) {
	c.lines = append(c.lines, l)
	if len(c.lines) > maxLogSize {
		c.lines = c.lines[len(c.lines)-maxLogSize:]
	}
}

func (c *Console) clearPrompt() {
	c.prompt = ""
	c.input = c.input[:0]
	c.draw()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
