package board

import (
	"fmt"
	"strings"
)

// Direction is a swipe direction.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists all four swipe directions.
var Directions = []Direction{North, South, East, West}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four swipe directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// ParseDirection accepts compass names and their screen aliases
// (up, down, right, left), case-insensitively. Single letters are left to
// callers, which bind them to their own key layouts.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "up":
		return North, nil
	case "south", "down":
		return South, nil
	case "east", "right":
		return East, nil
	case "west", "left":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
