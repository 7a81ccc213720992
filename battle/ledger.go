package battle

import (
	"github.com/lixenwraith/salvo/board"
)

// Outcome classifies a resolved shot
type Outcome uint8

const (
	Miss Outcome = iota
	Hit
	Armored
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Armored:
		return "armored"
	default:
		return "unknown"
	}
}

// FiredRecord is the latest resolution of one coordinate.
// Before and After are the cell value around that shot.
type FiredRecord struct {
	Outcome Outcome
	Before  int
	After   int
}

// Ledger records every coordinate fired upon.
// A coordinate holds only its latest record; armored cells are overwritten by follow-up shots.
type Ledger struct {
	records map[board.Coord]FiredRecord
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{records: make(map[board.Coord]FiredRecord)}
}

// Get returns the latest record for c
func (l *Ledger) Get(c board.Coord) (FiredRecord, bool) {
	r, ok := l.records[c]
	return r, ok
}

// Fired reports whether c was ever fired upon
func (l *Ledger) Fired(c board.Coord) bool {
	_, ok := l.records[c]
	return ok
}

// Len returns the number of distinct coordinates fired upon
func (l *Ledger) Len() int {
	return len(l.records)
}

// Closed reports whether c is resolved for good: fired upon and not an armored cell in progress
func (l *Ledger) Closed(c board.Coord) bool {
	r, ok := l.records[c]
	return ok && r.Outcome != Armored
}

func (l *Ledger) record(c board.Coord, r FiredRecord) {
	l.records[c] = r
}
