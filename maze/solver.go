package maze

// Solving moves one cell at a time; compare carveDirections, which steps
// across the coarse lattice. The order is fixed so ties between
// equally-short paths break the same way every run.
var solveDirections = [4]CellPosition{
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
}

// Solver finds shortest entrance-to-exit paths through a maze.
//
// The search is a plain breadth-first traversal: grid edges are unweighted,
// so the first time the exit is dequeued its distance from the entrance is
// minimal. Predecessors live in a separate map rather than in the cells, so
// the only grid mutation is the annotation pass.
type Solver struct{}

// NewSolver creates a Solver.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve runs a breadth-first search from the maze entrance and returns the
// shortest path to the exit, both endpoints included. Cells expanded during
// the search are marked Visited and cells on the final path OnPath; the
// entrance and exit keep their own state for rendering. Annotated cells
// stay traversable, so re-solving an already annotated maze returns the
// same path.
//
// A nil result means the exit is unreachable. That never happens for grids
// produced by Generate, but manually built grids may legitimately be
// disconnected, so it is a normal return rather than an error.
func (s *Solver) Solve(m *GridMaze) []CellPosition {
	entrance, exit := m.Entrance(), m.Exit()

	frontier := []CellPosition{entrance}
	parents := make(map[CellPosition]CellPosition)
	discovered := map[CellPosition]bool{entrance: true}

	found := false
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		if current != entrance && current != exit {
			m.setState(current, Visited)
		}
		if current == exit {
			found = true
			break
		}

		for _, d := range solveDirections {
			next := CellPosition{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if m.StateAt(next) == Wall || discovered[next] {
				continue
			}
			discovered[next] = true
			parents[next] = current
			frontier = append(frontier, next)
		}
	}
	if !found {
		return nil
	}

	// Walk the predecessor chain back from the exit, then flip it so the
	// path reads entrance to exit.
	var path []CellPosition
	for current := exit; ; current = parents[current] {
		path = append(path, current)
		if current == entrance {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, pos := range path {
		if pos != entrance && pos != exit {
			m.setState(pos, OnPath)
		}
	}
	return path
}
