package game

import (
	"errors"
	"testing"
	"time"
)

func newTestSnake(t *testing.T, body []Cell, dir Heading) *Snake {
	t.Helper()
	s, err := NewSnake(DefaultGrid(), body[0])
	if err != nil {
		t.Fatalf("NewSnake: %v", err)
	}
	s.body = append([]Cell(nil), body...)
	s.direction = dir
	s.heading = dir
	return s
}

func TestNewSnakeOutsideBoard(t *testing.T) {
	for _, c := range []Cell{{-1, 0}, {0, -1}, {GridWidth, 0}, {0, GridHeight}} {
		if _, err := NewSnake(DefaultGrid(), c); !errors.Is(err, ErrOutsideBoard) {
			t.Errorf("NewSnake(%s) error = %v, want ErrOutsideBoard", c, err)
		}
	}
}

func TestNewSnakeDefaults(t *testing.T) {
	s, err := NewSnake(DefaultGrid(), Cell{SnakeStartX, SnakeStartY})
	if err != nil {
		t.Fatal(err)
	}
	if s.Head() != (Cell{8, 8}) || s.Len() != 1 {
		t.Fatalf("head %s len %d", s.Head(), s.Len())
	}
	if s.Direction() != Right || s.Heading() != Right {
		t.Errorf("direction %s heading %s, want RIGHT", s.Direction(), s.Heading())
	}
	if s.Speed() != 100*time.Millisecond || !s.Alive() {
		t.Errorf("speed %v alive %v", s.Speed(), s.Alive())
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	s := newTestSnake(t, []Cell{{5, 5}}, Right)

	if s.Turn(Left) {
		t.Error("Turn(LEFT) accepted while moving RIGHT")
	}
	if s.Heading() != Right {
		t.Errorf("heading changed to %s", s.Heading())
	}
	if !s.Turn(Up) || s.Heading() != Up {
		t.Errorf("Turn(UP) rejected, heading %s", s.Heading())
	}
	if !s.Turn(Down) || s.Heading() != Down {
		t.Errorf("Turn(DOWN) rejected, heading %s", s.Heading())
	}
}

func TestTurnThenAdvance(t *testing.T) {
	tests := []struct {
		turn     Heading
		accepted bool
		want     Cell
	}{
		{Up, true, Cell{10, 9}},
		{Down, true, Cell{10, 11}},
		{Left, false, Cell{11, 10}},
		{Right, false, Cell{11, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.turn.String(), func(t *testing.T) {
			s := newTestSnake(t, []Cell{{10, 10}}, Right)
			if got := s.Turn(tt.turn); got != tt.accepted {
				t.Fatalf("Turn(%s) = %v, want %v", tt.turn, got, tt.accepted)
			}
			if status := s.Update(0); status != Moved {
				t.Fatalf("Update = %s, want moved", status)
			}
			if s.Head() != tt.want {
				t.Errorf("head %s, want %s", s.Head(), tt.want)
			}
			if tt.accepted && s.Direction() != tt.turn {
				t.Errorf("direction %s, want %s", s.Direction(), tt.turn)
			}
		})
	}
}

func TestAdvanceWrapsAround(t *testing.T) {
	tests := []struct {
		name  string
		start Cell
		dir   Heading
		want  Cell
	}{
		{"left edge", Cell{0, 5}, Left, Cell{GridWidth - 1, 5}},
		{"right edge", Cell{GridWidth - 1, 5}, Right, Cell{0, 5}},
		{"top edge", Cell{7, 0}, Up, Cell{7, GridHeight - 1}},
		{"bottom edge", Cell{7, GridHeight - 1}, Down, Cell{7, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnake(t, []Cell{tt.start}, tt.dir)
			s.Update(0)
			if s.Head() != tt.want {
				t.Errorf("head %s, want %s", s.Head(), tt.want)
			}
		})
	}
}

func TestUpdateWaitsForMoveTime(t *testing.T) {
	s := newTestSnake(t, []Cell{{5, 5}}, Right)

	if s.Update(0) != Moved {
		t.Fatal("first update should move")
	}
	if s.MoveTime() != InitialSnakeSpeed {
		t.Fatalf("moveTime %v, want %v", s.MoveTime(), InitialSnakeSpeed)
	}
	if s.Update(50*time.Millisecond) != Idle {
		t.Error("moved before moveTime")
	}
	if s.Head() != (Cell{6, 5}) {
		t.Errorf("head %s after idle update", s.Head())
	}
	if s.Update(100*time.Millisecond) != Moved {
		t.Error("did not move at moveTime")
	}
}

func TestShiftKeepsBodyFollowingHead(t *testing.T) {
	s := newTestSnake(t, []Cell{{5, 5}, {4, 5}, {3, 5}}, Right)
	s.Update(0)

	want := []Cell{{6, 5}, {5, 5}, {4, 5}}
	got := s.Body()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body %v, want %v", got, want)
		}
	}
	if s.Tail() != (Cell{3, 5}) {
		t.Errorf("tail %s, want (3, 5)", s.Tail())
	}
}

func TestSelfCollisionKillsSnake(t *testing.T) {
	body := []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
	s := newTestSnake(t, body, Left)
	s.moveTime = 40 * time.Millisecond

	if !s.Turn(Down) {
		t.Fatal("Turn(DOWN) rejected")
	}
	if status := s.Update(time.Second); status != Died {
		t.Fatalf("Update = %s, want died", status)
	}
	if s.Alive() {
		t.Error("snake still alive")
	}
	if s.MoveTime() != 40*time.Millisecond {
		t.Errorf("moveTime changed to %v", s.MoveTime())
	}
	if s.Head() != (Cell{5, 6}) {
		t.Errorf("head %s, want the collision cell (5, 6)", s.Head())
	}

	before := s.Body()
	if s.Update(10*time.Second) != Idle {
		t.Error("dead snake moved")
	}
	after := s.Body()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("dead snake body changed: %v -> %v", before, after)
		}
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	s := newTestSnake(t, []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}}, Left)
	s.Turn(Down)

	if status := s.Update(0); status != Moved {
		t.Fatalf("Update = %s, want moved", status)
	}
	if !s.Alive() {
		t.Error("snake died chasing its own tail")
	}
}

func TestGrowAtPreviousTail(t *testing.T) {
	s := newTestSnake(t, []Cell{{8, 8}}, Right)
	food, err := NewFood(DefaultGrid(), Cell{9, 8})
	if err != nil {
		t.Fatal(err)
	}

	s.Update(0)
	if !s.CollideWithFood(food) {
		t.Fatal("CollideWithFood = false with head on food")
	}
	if s.Len() != 2 {
		t.Fatalf("len %d, want 2", s.Len())
	}
	if got := s.Body()[1]; got != (Cell{8, 8}) {
		t.Errorf("new segment at %s, want (8, 8)", got)
	}
	if food.Total() != 1 {
		t.Errorf("food total %d, want 1", food.Total())
	}
}

func TestCollideWithFoodMiss(t *testing.T) {
	s := newTestSnake(t, []Cell{{8, 8}}, Right)
	food, _ := NewFood(DefaultGrid(), Cell{3, 4})

	if s.CollideWithFood(food) {
		t.Error("collided with food on another cell")
	}
	if s.Len() != 1 || food.Total() != 0 {
		t.Errorf("len %d total %d", s.Len(), food.Total())
	}
}

func TestSpeedScaling(t *testing.T) {
	s := newTestSnake(t, []Cell{{8, 8}}, Right)
	food, _ := NewFood(DefaultGrid(), Cell{8, 8})

	eat := func(n int) {
		for i := 0; i < n; i++ {
			if !s.CollideWithFood(food) {
				t.Fatal("expected to eat")
			}
		}
	}

	eat(4)
	if s.Speed() != 100*time.Millisecond {
		t.Fatalf("speed after 4: %v", s.Speed())
	}
	eat(1)
	if s.Speed() != 95*time.Millisecond {
		t.Fatalf("speed after 5: %v, want 95ms", s.Speed())
	}
	eat(4)
	if s.Speed() != 95*time.Millisecond {
		t.Fatalf("speed after 9: %v, want 95ms", s.Speed())
	}

	for food.Total() < 500 {
		eat(1)
		if s.Speed() < MinSnakeSpeed {
			t.Fatalf("speed %v below floor after %d", s.Speed(), food.Total())
		}
	}
	if s.Speed() != MinSnakeSpeed {
		t.Errorf("speed %v, want %v", s.Speed(), MinSnakeSpeed)
	}
}

func TestOccupiedCells(t *testing.T) {
	body := []Cell{{1, 1}, {2, 1}, {3, 1}}
	s := newTestSnake(t, body, Left)

	cells := s.OccupiedCells()
	if len(cells) != len(body) {
		t.Fatalf("got %d cells, want %d", len(cells), len(body))
	}
	for _, c := range body {
		if !cells.Has(c) {
			t.Errorf("missing %s", c)
		}
	}
}
