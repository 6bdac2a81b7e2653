package game

// Picker is the random source used for placement; *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Food is never destroyed, only moved once eaten.
type Food struct {
	cell  Cell
	total int
}

func NewFood(grid Grid, at Cell) (*Food, error) {
	if err := grid.checkCell(at); err != nil {
		return nil, err
	}
	return &Food{cell: at}, nil
}

func (f *Food) Cell() Cell { return f.cell }
func (f *Food) Total() int { return f.total }
func (f *Food) Eat()       { f.total++ }

// FreeCells lists every grid cell not in excluded, row by row.
func FreeCells(grid Grid, excluded CellSet) []Cell {
	free := make([]Cell, 0, max(0, grid.Size()-len(excluded)))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := Cell{X: x, Y: y}
			if !excluded.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// Reposition moves the food to a random free cell. It returns false when the
// board is full, which means the snake has won.
func (f *Food) Reposition(grid Grid, excluded CellSet, rng Picker) bool {
	free := FreeCells(grid, excluded)
	if len(free) == 0 {
		return false
	}
	f.cell = free[rng.Intn(len(free))]
	return true
}
