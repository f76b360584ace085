package content

import (
	"errors"
	"strconv"
	"strings"
)

// Position is the 0-based place of a row within its kind, ordered by insertion.
// Route identifiers are 1-based; ParseID converts between the two.
type Position int

// DefaultIntroPosition is where the intro text lives: the fourth intro row.
const DefaultIntroPosition Position = 3

// ParseID converts a 1-based route identifier into a Position.
// Anything that is not a positive base-10 integer is ErrInvalidID.
func ParseID(raw string) (Position, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Join(ErrInvalidID, err)
	}
	if id < 1 {
		return 0, ErrInvalidID
	}
	return Position(id - 1), nil
}

// ID returns the 1-based identifier for the position.
func (p Position) ID() int {
	return int(p) + 1
}

func (p Position) String() string {
	return strconv.Itoa(int(p))
}
