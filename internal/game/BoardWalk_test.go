package game

import (
	"errors"
	"testing"
	"time"
)

func TestNewBoardWalkPlacesPathBricks(t *testing.T) {
	b, err := NewBoardWalk(KnightPath)
	if err != nil {
		t.Fatalf("NewBoardWalk: %v", err)
	}
	if got := len(b.Bricks()); got != len(KnightPath) {
		t.Errorf("%d bricks, want %d", got, len(KnightPath))
	}
	if got := b.BrickPosition(Cell{3, 2}); got != (Point{96, 64}) {
		t.Errorf("brick drawn at %v", got)
	}
}

func TestPlaceBrickOutsideBoard(t *testing.T) {
	b, err := NewBoardWalk(KnightPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []Cell{{-1, 0}, {0, -1}, {BoardCols, 3}, {3, BoardRows}} {
		if err := b.PlaceBrick(c); !errors.Is(err, ErrOutsideBoard) {
			t.Errorf("PlaceBrick(%s) = %v, want ErrOutsideBoard", c, err)
		}
	}

	if _, err := NewBoardWalk([]Cell{{0, 0}, {BoardCols, 0}}); !errors.Is(err, ErrOutsideBoard) {
		t.Errorf("NewBoardWalk with off-board path: %v", err)
	}
	if _, err := NewBoardWalk(nil); err == nil {
		t.Error("empty path accepted")
	}
}

func TestKnightWalksPath(t *testing.T) {
	b, err := NewBoardWalk(KnightPath)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := b.KnightCell(); ok {
		t.Fatal("knight on the path before the first step")
	}
	if b.KnightPosition() != (Point{-32, 0}) {
		t.Errorf("idle position %v", b.KnightPosition())
	}
	if b.Update(time.Second) {
		t.Fatal("stepped before the interval")
	}

	now := BoardWalkInterval
	if !b.Update(now) {
		t.Fatal("did not step at the interval")
	}
	if c, _ := b.KnightCell(); c != KnightPath[0] {
		t.Errorf("first cell %s", c)
	}
	if b.Update(now + BoardWalkInterval/2) {
		t.Error("stepped twice within one interval")
	}

	now += BoardWalkInterval
	b.Update(now)
	if c, _ := b.KnightCell(); c != KnightPath[1] {
		t.Errorf("second cell %s", c)
	}
	if b.KnightPosition() != (Point{0, 0}) {
		t.Errorf("position on (1, 1) = %v, want (0, 0)", b.KnightPosition())
	}

	for i := 2; i < len(KnightPath); i++ {
		now += BoardWalkInterval
		b.Update(now)
	}
	now += BoardWalkInterval
	b.Update(now)
	if c, _ := b.KnightCell(); c != KnightPath[0] || b.Step() != 0 {
		t.Errorf("did not cycle back to the start: %s step %d", c, b.Step())
	}
}
