package console

import (
	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain for translations of the player-facing text
const Domain = "salvo"

// ConfigureLocale loads translations from dir/lang/LC_MESSAGES/salvo.{po,mo}.
// Untranslated strings fall back to the English message ids below.
func ConfigureLocale(dir, lang string) {
	gotext.Configure(dir, lang, Domain)
}

const (
	msgBanner = `*************************************************************
                BATTLESHIP  *  SALVO
*************************************************************`
	msgBriefSelected = "Congratulations! General Lee has selected YOU to man our new,"
	msgBriefSystem   = "state of the art missile launching system."
	msgBriefMission  = "Mission: %s (%s)"
	msgBriefTargets  = "Our sources tell us that there are %d enemy targets approaching."
	msgBriefMissiles = "We have %d missiles left in our inventory. Your job, should you wish to"
	msgBriefJob      = "accept it, is to sink ALL enemy targets before we run out of missiles."

	msgAskAccept  = "Will you accept this mission?"
	msgAskSure    = "Are you sure?"
	msgYesNo      = "[y/n]: "
	msgAskFire    = "Enter fire coordinates (e.g. A5): "
	msgAskReplay  = "Wanna play again? I have a good feeling about you."
	msgRetry      = "Retry Mission"
	msgNewMission = "New Mission"
	msgGiveUp     = "Give up"
	msgChoose     = "[1, 2, 0]: "

	msgWelcome    = "Great! Welcome to the team. You start immediately."
	msgDeclined   = "How utterly disappointing."
	msgMiss       = "MISS!!!"
	msgHit        = "HIT!!!"
	msgArmored    = "ARMORED TARGET HIT!"
	msgAnotherHit = "ANOTHER HIT!"
	msgNeedOne    = "You need %d more shot to sink this target"
	msgNeedMany   = "You need %d more shots to sink this target"
	msgOffMap     = "Who are you firing at?! Cause that is not on this map, try again."
	msgDuplicate  = "Let's not waste military resources. Try firing somewhere else."
	msgWin        = "YOU HIT ALL THE TARGETS! WINNER!!!!!!"
	msgLoss       = "You ran out of missiles. GAME OVER!"
	msgQuit       = "Well, at least you tried."
	msgIndecisive = "Can't make up mind... CHECK"

	msgMissilesLeft = "Missiles Left: %d"
	msgTargetsLeft  = "Targets Left:  %d"
	msgSeparator    = "**********************************************"

	msgSumHit      = "Targets Hit      ("
	msgSumMisfired = "Targets Misfired ("
	msgSumLeft     = "Targets Left     ("
	msgSumArmored  = "Armored Targets  ("
	msgSumValue    = "): %d"
	msgSumShots    = "Shots Fired: %d   Missiles Left: %d"
)

func tr(msg string, args ...any) string {
	return gotext.Get(msg, args...)
}
