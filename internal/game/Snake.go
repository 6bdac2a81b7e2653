package game

import "time"

// MoveStatus is what a call to Snake.Update did.
type MoveStatus int

const (
	Idle MoveStatus = iota
	Moved
	Died
)

func (s MoveStatus) String() string {
	switch s {
	case Moved:
		return "moved"
	case Died:
		return "died"
	default:
		return "idle"
	}
}

// Snake owns its body; segments are only created by Grow and only moved by Update.
type Snake struct {
	grid      Grid
	body      []Cell // head first
	tail      Cell
	heading   Heading
	direction Heading
	speed     time.Duration
	moveTime  time.Duration
	alive     bool
}

func NewSnake(grid Grid, start Cell) (*Snake, error) {
	if err := grid.checkCell(start); err != nil {
		return nil, err
	}

	return &Snake{
		grid:      grid,
		body:      []Cell{start},
		tail:      start,
		heading:   Right,
		direction: Right,
		speed:     InitialSnakeSpeed,
		moveTime:  0,
		alive:     true,
	}, nil
}

func (s *Snake) Head() Cell              { return s.body[0] }
func (s *Snake) Tail() Cell              { return s.tail }
func (s *Snake) Len() int                { return len(s.body) }
func (s *Snake) Heading() Heading        { return s.heading }
func (s *Snake) Direction() Heading      { return s.direction }
func (s *Snake) Speed() time.Duration    { return s.speed }
func (s *Snake) MoveTime() time.Duration { return s.moveTime }
func (s *Snake) Alive() bool             { return s.alive }

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Turn sets the pending heading. Only quarter turns relative to the last committed
// direction are accepted.
func (s *Snake) Turn(h Heading) bool {
	if !s.direction.Perpendicular(h) {
		return false
	}
	s.heading = h
	return true
}

func (s *Snake) Update(now time.Duration) MoveStatus {
	if !s.alive || now < s.moveTime {
		return Idle
	}
	return s.advance(now)
}

func (s *Snake) advance(now time.Duration) MoveStatus {
	s.direction = s.heading
	next := s.body[0].Step(s.direction, s.grid)

	s.tail = s.body[len(s.body)-1]
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next

	for _, segment := range s.body[1:] {
		if segment == next {
			s.alive = false
			return Died
		}
	}

	s.moveTime = now + s.speed
	return Moved
}

// Grow adds a segment on the cell the tail vacated during the last advance.
func (s *Snake) Grow() {
	s.body = append(s.body, s.tail)
}

func (s *Snake) CollideWithFood(food *Food) bool {
	if s.Head() != food.Cell() {
		return false
	}

	s.Grow()
	food.Eat()

	if s.speed > MinSnakeSpeed && food.Total()%SpeedupEvery == 0 {
		s.speed = max(MinSnakeSpeed, s.speed-SpeedStep)
	}
	return true
}

func (s *Snake) OccupiedCells() CellSet {
	cells := make(CellSet, len(s.body))
	for _, c := range s.body {
		cells[c] = struct{}{}
	}
	return cells
}
