package game

import "testing"

func TestDefaultStrategyHeadsForFood(t *testing.T) {
	view := Snapshot{
		Grid:      DefaultGrid(),
		Head:      Cell{10, 10},
		Body:      []Cell{{10, 10}},
		Food:      Cell{10, 4},
		Direction: Right,
	}

	h, ok := DefaultStrategy{}.NextHeading(view)
	if !ok || h != Up {
		t.Fatalf("got %s %v, want UP", h, ok)
	}
}

func TestDefaultStrategyUsesWraparound(t *testing.T) {
	view := Snapshot{
		Grid:      DefaultGrid(),
		Head:      Cell{1, 10},
		Body:      []Cell{{1, 10}},
		Food:      Cell{1, GridHeight - 2},
		Direction: Right,
	}

	h, ok := DefaultStrategy{}.NextHeading(view)
	if !ok || h != Up {
		t.Fatalf("got %s %v, want UP across the top edge", h, ok)
	}
}

func TestDefaultStrategyNeverReverses(t *testing.T) {
	view := Snapshot{
		Grid:      DefaultGrid(),
		Head:      Cell{10, 10},
		Body:      []Cell{{10, 10}},
		Food:      Cell{5, 10},
		Direction: Right,
	}

	h, ok := DefaultStrategy{}.NextHeading(view)
	if !ok || h == Left {
		t.Fatalf("got %s %v, reversal into the body", h, ok)
	}
}

func TestDefaultStrategyAvoidsBody(t *testing.T) {
	view := Snapshot{
		Grid:      DefaultGrid(),
		Head:      Cell{10, 10},
		Body:      []Cell{{10, 10}, {9, 10}, {9, 9}, {10, 9}, {11, 9}, {12, 9}},
		Food:      Cell{10, 2},
		Direction: Right,
	}

	h, ok := DefaultStrategy{}.NextHeading(view)
	if !ok || h == Up {
		t.Fatalf("got %s %v, steered into its own body", h, ok)
	}
}

func TestDefaultStrategyTrapped(t *testing.T) {
	view := Snapshot{
		Grid:      DefaultGrid(),
		Head:      Cell{10, 10},
		Body:      []Cell{{10, 10}, {9, 10}, {9, 9}, {10, 9}, {11, 9}, {11, 10}, {11, 11}, {10, 11}, {9, 11}, {8, 11}},
		Food:      Cell{0, 0},
		Direction: Right,
	}

	if _, ok := (DefaultStrategy{}).NextHeading(view); ok {
		t.Fatal("trapped snake got a heading")
	}
}
