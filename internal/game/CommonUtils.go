package game

import (
	"errors"
	"fmt"
)

// ErrOutsideBoard is returned when something is placed on a cell the grid does not have.
var ErrOutsideBoard = errors.New("cell is outside of the board")

type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Step moves one cell towards h, wrapping around the edges of g.
func (c Cell) Step(h Heading, g Grid) Cell {
	dx, dy := h.Delta()
	return Cell{
		X: Wrap(c.X+dx, 0, g.Width),
		Y: Wrap(c.Y+dy, 0, g.Height),
	}
}

// CellSet is a read-only view of occupied cells.
type CellSet map[Cell]struct{}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

type Grid struct {
	Width  int
	Height int
}

func DefaultGrid() Grid {
	return Grid{Width: GridWidth, Height: GridHeight}
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

func (g Grid) Size() int {
	return g.Width * g.Height
}

func (g Grid) checkCell(c Cell) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s on %dx%d", ErrOutsideBoard, c, g.Width, g.Height)
	}
	return nil
}

// Wrap keeps value inside [min, max), re-entering from the opposite side.
func Wrap(value, min, max int) int {
	span := max - min
	if span <= 0 {
		return min
	}
	return ((value-min)%span+span)%span + min
}

// GetManhattanDistance measures the shortest path between two cells on the torus.
func GetManhattanDistance(a, b Cell, g Grid) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return min(dx, g.Width-dx) + min(dy, g.Height-dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
