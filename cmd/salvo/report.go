package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/lixenwraith/salvo/game"
)

// formatDebrief renders the plain-text mission report
func formatDebrief(d game.Debrief) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mission %s (%s): %s\n", d.Name, d.MissionID, d.Stats.Result)
	sb.WriteString(d.Board.String())
	fmt.Fprintf(&sb, "Targets Hit      ( O ): %d\n", d.Stats.TargetsHit)
	fmt.Fprintf(&sb, "Targets Misfired ( X ): %d\n", d.Stats.TargetsMisfired)
	fmt.Fprintf(&sb, "Targets Left     ( - ): %d\n", d.Stats.TargetsLeft)
	fmt.Fprintf(&sb, "Armored Targets  ( - ): %d\n", d.Stats.ArmoredTargets)
	fmt.Fprintf(&sb, "Shots Fired: %d, Missiles Left: %d\n", d.Stats.ShotsFired, d.Stats.MissilesLeft)
	return sb.String()
}

// copyDebrief puts the report on the system clipboard; failure is logged, not fatal
func copyDebrief(d game.Debrief) {
	if clipboard.Unsupported {
		log.Printf("mission %s: clipboard unsupported on this system", d.MissionID)
		return
	}
	if err := clipboard.WriteAll(formatDebrief(d)); err != nil {
		log.Printf("mission %s: copy report: %v", d.MissionID, err)
	}
}
