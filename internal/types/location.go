// README: Grid location value object and the Manhattan metric shared by every module.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNegativeCoordinate = errors.New("negative coordinate")
	ErrBadLocation        = errors.New("malformed location")
)

// Location is an immutable point on the city grid.
type Location struct {
	Row    int
	Column int
}

// NewLocation validates that both coordinates are non-negative.
func NewLocation(row, column int) (Location, error) {
	if row < 0 || column < 0 {
		return Location{}, fmt.Errorf("location (%d, %d): %w", row, column, ErrNegativeCoordinate)
	}
	return Location{Row: row, Column: column}, nil
}

// ParseLocation reads the "row,column" form used by event lists.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("%q: %w", s, ErrBadLocation)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Location{}, fmt.Errorf("%q: %w", s, ErrBadLocation)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Location{}, fmt.Errorf("%q: %w", s, ErrBadLocation)
	}
	return NewLocation(row, col)
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Column)
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(l.Row) + "," + strconv.Itoa(l.Column)), nil
}

func (l *Location) UnmarshalText(b []byte) error {
	parsed, err := ParseLocation(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Manhattan returns |Δrow| + |Δcolumn|.
func Manhattan(a, b Location) int {
	return abs(a.Row-b.Row) + abs(a.Column-b.Column)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
