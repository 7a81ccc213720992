package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/salvo/battle"
	"github.com/lixenwraith/salvo/board"
	"github.com/lixenwraith/salvo/game"
	"github.com/lixenwraith/salvo/render"
	"github.com/lixenwraith/salvo/scenario"
)

func newTestConsole(t *testing.T) (*Console, tcell.Screen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return New(screen), screen
}

func postRunes(t *testing.T, screen tcell.Screen, s string) {
	t.Helper()
	for _, r := range s {
		if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); err != nil {
			t.Fatalf("PostEvent failed: %v", err)
		}
	}
}

func postKey(t *testing.T, screen tcell.Screen, k tcell.Key) {
	t.Helper()
	if err := screen.PostEvent(tcell.NewEventKey(k, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func lastLog(c *Console) string {
	var sb strings.Builder
	for _, seg := range c.lines[len(c.lines)-1] {
		if seg.cell != nil {
			sb.WriteString(seg.cell.Text)
			continue
		}
		sb.WriteString(seg.text)
	}
	return sb.String()
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	c, screen := newTestConsole(t)
	postRunes(t, screen, "x1y")

	ok, err := c.Confirm(game.QuestionAccept)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !ok {
		t.Error("Expected yes")
	}
	if !strings.HasSuffix(lastLog(c), "y") {
		t.Errorf("Expected answer echoed, got %q", lastLog(c))
	}
	if c.prompt != "" {
		t.Error("Expected prompt cleared after answer")
	}
}

func TestConfirmNo(t *testing.T) {
	c, screen := newTestConsole(t)
	postRunes(t, screen, "N")

	ok, err := c.Confirm(game.QuestionSure)
	if err != nil || ok {
		t.Errorf("Expected no without error, got %v %v", ok, err)
	}
}

func TestReadCoordinateEditing(t *testing.T) {
	c, screen := newTestConsole(t)
	postRunes(t, screen, "b7")
	postKey(t, screen, tcell.KeyBackspace2)
	postRunes(t, screen, "5")
	postKey(t, screen, tcell.KeyEnter)

	raw, err := c.ReadCoordinate()
	if err != nil {
		t.Fatalf("ReadCoordinate failed: %v", err)
	}
	if raw != "b5" {
		t.Errorf("Expected b5, got %q", raw)
	}
}

func TestPromptInterrupted(t *testing.T) {
	c, screen := newTestConsole(t)
	postKey(t, screen, tcell.KeyCtrlC)

	if _, err := c.ReadCoordinate(); !errors.Is(err, ErrInterrupted) {
		t.Errorf("Expected ErrInterrupted, got %v", err)
	}
}

func TestChooseReplay(t *testing.T) {
	c, screen := newTestConsole(t)
	postRunes(t, screen, "92")

	choice, err := c.ChooseReplay()
	if err != nil {
		t.Fatalf("ChooseReplay failed: %v", err)
	}
	if choice != game.ReplayNewMission {
		t.Errorf("Expected new mission, got %d", choice)
	}
}

func TestShowGridPaintsBoard(t *testing.T) {
	c, screen := newTestConsole(t)

	s := battle.New(0, scenario.Scenario{Grid: board.TargetGrid{{1, 0}}, MissileAllowance: 2})
	s.Resolve(board.Coord{Row: 1, Col: 1})
	c.ShowGrid(render.Build(s.Geometry(), s.Ledger(), false))

	header := rowText(screen, 1, 20)
	if !strings.HasPrefix(header, "     A  B") {
		t.Errorf("Unexpected header row %q", header)
	}
	first := rowText(screen, 2, 20)
	if !strings.HasPrefix(first, " 1   O") {
		t.Errorf("Unexpected first row %q", first)
	}
}

func TestAnnounceArmoredPlural(t *testing.T) {
	c, _ := newTestConsole(t)

	c.Announce(game.Report{Notice: game.NoticeArmoredFirst, ShotsNeeded: 2})
	if got := lastLog(c); got != "You need 2 more shots to sink this target" {
		t.Errorf("Unexpected plural message %q", got)
	}

	c.Announce(game.Report{Notice: game.NoticeArmoredAgain, ShotsNeeded: 1})
	if got := lastLog(c); got != "You need 1 more shot to sink this target" {
		t.Errorf("Unexpected singular message %q", got)
	}
	if got := c.lines[len(c.lines)-2][0].text; got != msgAnotherHit {
		t.Errorf("Expected follow-up hit message, got %q", got)
	}
}

func TestShowSummaryLegend(t *testing.T) {
	c, _ := newTestConsole(t)
	c.ShowSummary(battle.Stats{TargetsHit: 3, TargetsMisfired: 4, TargetsLeft: 1, ArmoredTargets: 2, ShotsFired: 7})

	found := false
	for _, l := range c.lines {
		if len(l) == 3 && l[0].text == msgSumMisfired {
			found = true
			if l[1].cell == nil || l[1].cell.Kind != render.KindMiss {
				t.Error("Expected miss swatch in misfired row")
			}
			if l[2].text != "): 4" {
				t.Errorf("Expected '): 4', got %q", l[2].text)
			}
		}
	}
	if !found {
		t.Error("Expected misfired row in summary")
	}
}

func TestShowSummaryRows(t *testing.T) {
	c, _ := newTestConsole(t)
	c.ShowSummary(battle.Stats{TargetsHit: 3, TargetsMisfired: 4, TargetsLeft: 1, ArmoredTargets: 2, ShotsFired: 7, MissilesLeft: 5})

	want := []string{
		msgSumHit + " O ): 3",
		msgSumMisfired + " X ): 4",
		msgSumLeft + " - ): 1",
		msgSumArmored + " - ): 2",
		"Shots Fired: 7   Missiles Left: 5",
	}
	got := make([]string, 0, len(want))
	for _, l := range c.lines[len(c.lines)-len(want):] {
		var sb strings.Builder
		for _, seg := range l {
			if seg.cell != nil {
				sb.WriteString(seg.cell.Text)
				continue
			}
			sb.WriteString(seg.text)
		}
		got = append(got, sb.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLogIsBounded(t *testing.T) {
	c, _ := newTestConsole(t)
	for i := 0; i < maxLogSize+50; i++ {
		c.say(styleText, "line")
	}
	if len(c.lines) != maxLogSize {
		t.Errorf("Expected log capped at %d, got %d", maxLogSize, len(c.lines))
	}
}
