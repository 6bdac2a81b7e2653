package game

import (
	"fmt"
	"strings"
)

type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists every heading in a stable order.
var Headings = []Heading{Up, Down, Left, Right}

func (h Heading) String() string {
	switch h {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (h Heading) IsVertical() bool {
	return h == Up || h == Down
}

// Perpendicular reports whether turning from h to other is a quarter turn.
func (h Heading) Perpendicular(other Heading) bool {
	return h.IsVertical() != other.IsVertical()
}

func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func ParseHeading(s string) (Heading, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP":
		return Up, nil
	case "DOWN":
		return Down, nil
	case "LEFT":
		return Left, nil
	case "RIGHT":
		return Right, nil
	}
	return Up, fmt.Errorf("unknown heading %q", s)
}
