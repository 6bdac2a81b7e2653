package game

import (
	"fmt"
	"time"
)

// KnightPath is the route the knight walks, one brick per step.
var KnightPath = []Cell{
	{0, 1}, {1, 1}, {2, 1}, {3, 1}, {3, 2}, {4, 2}, {5, 2}, {5, 3},
	{5, 3}, {5, 4}, {5, 5}, {6, 5}, {7, 5}, {8, 5}, {9, 5}, {10, 5},
	{11, 5}, {11, 6}, {11, 7}, {11, 8}, {12, 8}, {13, 8}, {14, 8}, {15, 8},
	{16, 8}, {17, 8}, {18, 8}, {18, 9}, {19, 9},
}

// knightStart is where the knight idles before its first step.
var knightStart = Point{X: -BoardCellSize, Y: 0}

// BoardWalk is the board demo: a knight walking a path of bricks.
type BoardWalk struct {
	grid     Grid
	board    [][]Point
	path     []Cell
	bricks   []Cell
	step     int
	nextStep time.Duration
	interval time.Duration
}

func NewBoardWalk(path []Cell) (*BoardWalk, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("board walk needs a path")
	}

	b := &BoardWalk{
		grid:     Grid{Width: BoardCols, Height: BoardRows},
		path:     append([]Cell(nil), path...),
		step:     -1,
		interval: BoardWalkInterval,
		nextStep: BoardWalkInterval,
	}
	b.board = generateBoard(b.grid)

	for i, c := range path {
		if err := b.PlaceBrick(c); err != nil {
			return nil, fmt.Errorf("path step %d: %w", i, err)
		}
	}
	return b, nil
}

// generateBoard maps board cells to pixel locations one cell up and left of the
// brick, so the knight sprite stands on top of it.
func generateBoard(g Grid) [][]Point {
	board := make([][]Point, g.Height)
	for row := range board {
		board[row] = make([]Point, g.Width)
		for col := range board[row] {
			board[row][col] = Point{X: (col - 1) * BoardCellSize, Y: (row - 1) * BoardCellSize}
		}
	}
	return board
}

func (b *BoardWalk) PlaceBrick(c Cell) error {
	if err := b.grid.checkCell(c); err != nil {
		return fmt.Errorf("brick cannot be placed: %w", err)
	}
	b.bricks = append(b.bricks, c)
	return nil
}

func (b *BoardWalk) Grid() Grid { return b.grid }

func (b *BoardWalk) Bricks() []Cell {
	return append([]Cell(nil), b.bricks...)
}

// BrickPosition is the pixel location a brick is drawn at.
func (b *BoardWalk) BrickPosition(c Cell) Point {
	return Point{X: c.X * BoardCellSize, Y: c.Y * BoardCellSize}
}

// Update moves the knight one step along the path when due and reports whether it moved.
func (b *BoardWalk) Update(now time.Duration) bool {
	if now < b.nextStep {
		return false
	}
	b.step = (b.step + 1) % len(b.path)
	b.nextStep = now + b.interval
	return true
}

// KnightCell is the path cell the knight stands on; false before the first step.
func (b *BoardWalk) KnightCell() (Cell, bool) {
	if b.step < 0 {
		return Cell{}, false
	}
	return b.path[b.step], true
}

// KnightPosition is the knight's pixel location.
func (b *BoardWalk) KnightPosition() Point {
	c, ok := b.KnightCell()
	if !ok {
		return knightStart
	}
	return b.board[c.Y][c.X]
}

func (b *BoardWalk) Step() int { return b.step }
