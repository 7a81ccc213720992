package game

// Phase is a node of the mission flow.
// NotStarted -> AwaitingConsent -> Playing -> Ended -> Replay -> {AwaitingConsent | Quit}
type Phase uint8

const (
	NotStarted Phase = iota
	AwaitingConsent
	Playing
	Ended
	Replay
	Quit
)

var phaseNames = [...]string{
	NotStarted:      "not-started",
	AwaitingConsent: "awaiting-consent",
	Playing:         "playing",
	Ended:           "ended",
	Replay:          "replay",
	Quit:            "quit",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// ReplayChoice is the player's answer at the end of a mission
type ReplayChoice uint8

const (
	ReplayRetry ReplayChoice = iota
	ReplayNewMission
	ReplayGiveUp
)

// Question is a strict yes/no prompt
type Question uint8

const (
	QuestionAccept Question = iota
	QuestionSure
)

// Notice is a message the flow asks the UI to show
type Notice uint8

const (
	NoticeWelcome Notice = iota
	NoticeDeclined
	NoticeMiss
	NoticeHit
	NoticeArmoredFirst
	NoticeArmoredAgain
	NoticeOffMap
	NoticeDuplicate
	NoticeWin
	NoticeLoss
	NoticeQuit
	NoticeIndecisive
)

// Report pairs a notice with its numbers.
// ShotsNeeded is set for armored notices.
type Report struct {
	Notice      Notice
	Coord       string
	ShotsNeeded int
}
