package battle

// Result is how a mission ended
type Result uint8

const (
	InProgress Result = iota
	Won
	Lost
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Stats is the end-of-mission summary. All fields are derived from the session.
type Stats struct {
	Result          Result
	TargetsHit      int
	TargetsMisfired int
	TargetsLeft     int
	ArmoredTargets  int
	ShotsFired      int
	MissilesLeft    int
}

// Summary derives the mission statistics.
// TargetsMisfired counts ledger coordinates that did not end as a kill, so an armored
// cell still standing at the end is reported as a misfire.
func (s *Session) Summary() Stats {
	hit := s.state.TotalTargets - s.state.TargetsRemaining

	res := InProgress
	switch {
	case s.IsWon():
		res = Won
	case s.IsLost():
		res = Lost
	}

	return Stats{
		Result:          res,
		TargetsHit:      hit,
		TargetsMisfired: s.ledger.Len() - hit,
		TargetsLeft:     s.state.TargetsRemaining,
		ArmoredTargets:  s.state.ArmoredTargets,
		ShotsFired:      s.shots,
		MissilesLeft:    s.state.MissilesLeft,
	}
}
