package board

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrMalformed   = errors.New("coordinate is not letters followed by digits")
	ErrOutOfBounds = errors.New("coordinate is outside the map")
)

var coordPattern = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)

// ParseCoord turns player input such as "a5" or " B12 " into a coordinate inside geo.
// Only single letters name a column; "AA1" is out of bounds, not a 27th column.
func ParseCoord(raw string, geo Geometry) (Coord, error) {
	m := coordPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Coord{}, ErrMalformed
	}

	letter := strings.ToUpper(m[1])
	colIndex := -1
	if len(letter) == 1 {
		colIndex = strings.Index(Letters, letter)
	}
	if colIndex < 0 || colIndex > geo.MaxLetterIndex() {
		return Coord{}, ErrOutOfBounds
	}

	// Overflowing digit strings are simply off the map
	number, err := strconv.Atoi(m[2])
	if err != nil || number < 1 || number > geo.MaxNumber() {
		return Coord{}, ErrOutOfBounds
	}

	return Coord{Row: number, Col: colIndex + 1}, nil
}
