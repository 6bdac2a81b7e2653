package game

import "math"

// Strategy steers a snake without a human at the controls.
type Strategy interface {
	NextHeading(view Snapshot) (Heading, bool)
}

// DefaultStrategy heads for the food, keeps off its own body and prefers to
// keep going straight.
type DefaultStrategy struct{}

func (s DefaultStrategy) NextHeading(view Snapshot) (Heading, bool) {
	if len(view.Body) == 0 {
		return Up, false
	}

	// the last segment moves away on the next advance
	blocked := make(CellSet, len(view.Body))
	for _, c := range view.Body[:len(view.Body)-1] {
		blocked[c] = struct{}{}
	}

	best := view.Direction
	bestScore := math.MaxInt32
	found := false

	for _, h := range Headings {
		if h == view.Direction.Opposite() {
			continue
		}

		next := view.Head.Step(h, view.Grid)
		if blocked.Has(next) {
			continue
		}

		score := GetManhattanDistance(next, view.Food, view.Grid) * 4
		if h == view.Direction {
			score -= 2
		}
		score -= s.freedom(next, h, view.Grid, blocked)

		if score < bestScore {
			bestScore = score
			best = h
			found = true
		}
	}

	if !found {
		// trapped
		return view.Direction, false
	}
	return best, true
}

// freedom counts open neighbours of a cell so the snake avoids dead ends.
func (s DefaultStrategy) freedom(c Cell, arrivedBy Heading, g Grid, blocked CellSet) int {
	open := 0
	for _, h := range Headings {
		if h == arrivedBy.Opposite() {
			continue
		}
		if !blocked.Has(c.Step(h, g)) {
			open++
		}
	}
	return open
}

// NewAutopilotFactory returns a constructor for per-session strategies. An
// empty script path means the built-in strategy; otherwise the Lua script is
// loaded fresh for every session since a Lua state cannot be shared.
func NewAutopilotFactory(scriptPath string) func() (Strategy, error) {
	if scriptPath == "" {
		return func() (Strategy, error) { return DefaultStrategy{}, nil }
	}
	return func() (Strategy, error) {
		strategy, err := LoadLuaStrategy(scriptPath)
		if err != nil {
			return nil, err
		}
		return strategy, nil
	}
}
