package game

// Point is a pointer position in host units (pixels, terminal cells).
type Point struct {
	X int
	Y int
}

// SwipeDetector turns a single pointer press-drag-release into a heading.
type SwipeDetector struct {
	isSwiping bool
	start     Point
	end       Point
}

func (s *SwipeDetector) Press(p Point) {
	s.isSwiping = true
	s.start = p
}

func (s *SwipeDetector) Move(p Point) {
	if s.isSwiping {
		s.end = p
	}
}

func (s *SwipeDetector) Release(p Point) {
	s.isSwiping = false
	s.end = p
}

func (s *SwipeDetector) Swiping() bool { return s.isSwiping }

// Direction resolves a finished swipe. Diagonal drags pick the dominant axis;
// equal magnitudes resolve vertically. A resolved swipe is forgotten so it is
// not reported twice.
func (s *SwipeDetector) Direction() (Heading, bool) {
	dx := s.end.X - s.start.X
	dy := s.end.Y - s.start.Y
	if dx == 0 && dy == 0 {
		return Up, false
	}
	if s.isSwiping {
		return Up, false
	}

	horizontal := Left
	if dx > 0 {
		horizontal = Right
	}
	vertical := Up
	if dy > 0 {
		vertical = Down
	}

	s.start = Point{}
	s.end = Point{}

	if abs(dx) > abs(dy) {
		return horizontal, true
	}
	return vertical, true
}
