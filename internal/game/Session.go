package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type Status int

const (
	StatusPlaying Status = iota
	StatusDead
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusDead:
		return "dead"
	case StatusWon:
		return "won"
	default:
		return "playing"
	}
}

// Snapshot is an immutable copy of a session handed to renderers and strategies.
type Snapshot struct {
	SessionID  string
	PlayerName string
	Grid       Grid
	Head       Cell
	Body       []Cell
	Food       Cell
	Eaten      int
	Speed      time.Duration
	Heading    Heading
	Direction  Heading
	Mode       DeviceMode
	Status     Status
}

// Result is what is left of a session once it is over.
type Result struct {
	SessionID  string
	PlayerName string
	Game       GameKind
	Eaten      int
	Length     int
	Status     Status
}

type SessionOptions struct {
	PlayerName string
	Mode       DeviceMode
	Autopilot  Strategy
	Grid       Grid
	SnakeStart Cell
	FoodStart  Cell
	// Seed of 0 picks one from the clock.
	Seed int64
}

// DefaultSessionOptions starts the snake at (8,8) and the food at (3,4) on a 40x30 grid.
func DefaultSessionOptions(playerName string, mode DeviceMode) SessionOptions {
	return SessionOptions{
		PlayerName: playerName,
		Mode:       mode,
		Grid:       DefaultGrid(),
		SnakeStart: Cell{X: SnakeStartX, Y: SnakeStartY},
		FoodStart:  Cell{X: FoodStartX, Y: FoodStartY},
	}
}

// Session is one game of snake; it is not safe for concurrent use.
type Session struct {
	ID         string
	PlayerName string
	Grid       Grid
	Snake      *Snake
	Food       *Food
	Input      InputResolver

	rng    *rand.Rand
	status Status
}

func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Grid == (Grid{}) {
		opts.Grid = DefaultGrid()
	}

	snake, err := NewSnake(opts.Grid, opts.SnakeStart)
	if err != nil {
		return nil, err
	}
	food, err := NewFood(opts.Grid, opts.FoodStart)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		ID:         uuid.NewString(),
		PlayerName: opts.PlayerName,
		Grid:       opts.Grid,
		Snake:      snake,
		Food:       food,
		Input: InputResolver{
			Mode:      opts.Mode,
			Autopilot: opts.Autopilot,
		},
		rng:    rand.New(rand.NewSource(seed)),
		status: StatusPlaying,
	}
	log.Debug("Session created", "session", session.ID, "player", session.PlayerName, "mode", opts.Mode)
	return session, nil
}

func (s *Session) Status() Status { return s.status }

// TickResult reports what happened during one Tick.
type TickResult struct {
	Turned bool
	Move   MoveStatus
	Ate    bool
	Status Status
}

// Tick runs one simulation step: input, movement, food.
func (s *Session) Tick(now time.Duration) TickResult {
	if s.status != StatusPlaying {
		return TickResult{Status: s.status}
	}

	var result TickResult
	if h, ok := s.Input.Resolve(s.Snapshot()); ok {
		result.Turned = s.Snake.Turn(h)
	}

	result.Move = s.Snake.Update(now)
	switch result.Move {
	case Died:
		s.status = StatusDead
		log.Info("Snake died", "session", s.ID, "player", s.PlayerName, "eaten", s.Food.Total(), "length", s.Snake.Len())
	case Moved:
		if s.Snake.CollideWithFood(s.Food) {
			result.Ate = true
			if !s.Food.Reposition(s.Grid, s.Snake.OccupiedCells(), s.rng) {
				s.status = StatusWon
				log.Info("Board is full", "session", s.ID, "player", s.PlayerName, "length", s.Snake.Len())
			}
		}
	}

	result.Status = s.status
	return result
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  s.ID,
		PlayerName: s.PlayerName,
		Grid:       s.Grid,
		Head:       s.Snake.Head(),
		Body:       s.Snake.Body(),
		Food:       s.Food.Cell(),
		Eaten:      s.Food.Total(),
		Speed:      s.Snake.Speed(),
		Heading:    s.Snake.Heading(),
		Direction:  s.Snake.Direction(),
		Mode:       s.Input.Mode,
		Status:     s.status,
	}
}

func (s *Session) Result() Result {
	return Result{
		SessionID:  s.ID,
		PlayerName: s.PlayerName,
		Game:       GameSnake,
		Eaten:      s.Food.Total(),
		Length:     s.Snake.Len(),
		Status:     s.status,
	}
}
