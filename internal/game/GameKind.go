package game

import "fmt"

// GamePreferenceKey stores the last game a player picked.
const GamePreferenceKey = "GAME"

type GameKind string

const (
	GameSnake GameKind = "Snake"
	GameBoard GameKind = "Board"
)

var GameKinds = []GameKind{GameSnake, GameBoard}

func ParseGameKind(s string) (GameKind, error) {
	for _, k := range GameKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return GameSnake, fmt.Errorf("unknown game %q", s)
}
