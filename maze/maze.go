/*
Package maze provides tools for creating and solving rectangular grid mazes.

It defines the `GridMaze` structure, a height×width grid of `CellState`
values with a fixed border entrance and exit. Generation carves a perfect
maze (exactly one simple path between any two carved cells) with an
iterative randomized depth-first search over the coarse lattice of
odd-coordinate cells, so the cells between lattice points stay available as
removable walls.

The package also includes a breadth-first `Solver` that finds the shortest
entrance-to-exit path and annotates the grid for rendering, plus an ASCII
visualization of the maze.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const minDimension = 3

// ErrInvalidDimensions is returned when a requested grid cannot hold at
// least one interior cell.
var ErrInvalidDimensions = errors.New("maze: width and height must be at least 3")

// Carving steps across the coarse lattice. The wall between the current
// cell and the chosen neighbor sits at half the step.
var carveDirections = [4]CellPosition{
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 0, Col: -2},
	{Row: -2, Col: 0},
}

// Options configures maze construction.
type Options struct {
	// Seed for the random source. Non-positive means derive one from the
	// current time.
	Seed int64

	// Rand, when set, overrides Seed with an explicit random source.
	Rand *rand.Rand
}

// GridMaze represents a rectangular maze as a flat row-major buffer of cell
// states. Create using New; the grid is allocated once and never resized.
type GridMaze struct {
	width    int
	height   int
	cells    []CellState // row-major, index row*width+col
	entrance CellPosition
	exit     CellPosition
	rng      *rand.Rand
	seed     int64
}

// New allocates an all-Wall grid of the given dimensions. Both dimensions
// must be at least 3; odd dimensions are recommended so the entrance and
// exit land next to carved lattice cells, but even dimensions work too.
func New(width, height int, opts *Options) (*GridMaze, error) {
	if width < minDimension || height < minDimension {
		return nil, ErrInvalidDimensions
	}

	if opts == nil {
		opts = &Options{}
	}
	seed := opts.Seed
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}

	m := &GridMaze{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
		rng:    rng,
		seed:   seed,
	}
	m.entrance, m.exit = m.borderEndpoints()
	return m, nil
}

// borderEndpoints returns the fixed entrance and exit positions: one column
// in from the corner on the top edge, and on the nearest coarse-lattice
// column of the bottom edge so the exit always faces carved interior.
func (m *GridMaze) borderEndpoints() (CellPosition, CellPosition) {
	exitCol := m.width - 2
	if exitCol%2 == 0 {
		exitCol--
	}
	return CellPosition{Row: 0, Col: 1}, CellPosition{Row: m.height - 1, Col: exitCol}
}

// Generate carves a perfect maze into the grid, replacing any previous
// topology and annotations, and punches the entrance and exit through the
// border. Every coarse-lattice cell is visited exactly once, so the carved
// cells form a spanning tree: no cycles, full connectivity.
//
// Generation is deterministic for a fixed seed.
func (m *GridMaze) Generate() {
	for i := range m.cells {
		m.cells[i] = Wall
	}

	start := CellPosition{Row: 1, Col: 1}
	m.setState(start, Passage)
	stack := []CellPosition{start}

	dirs := carveDirections
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		// Shuffling the probe order each step is what removes directional
		// bias from the carved corridors.
		m.rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		carved := false
		for _, d := range dirs {
			next := CellPosition{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if !m.inInterior(next) || m.stateAt(next) != Wall {
				continue
			}
			wall := CellPosition{Row: current.Row + d.Row/2, Col: current.Col + d.Col/2}
			m.setState(wall, Passage)
			m.setState(next, Passage)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	m.setState(m.entrance, Passage)
	m.setState(m.exit, Passage)

	// On even-height grids the cell above the exit misses the coarse
	// lattice; carve it so the exit joins the spanning tree as a leaf.
	above := CellPosition{Row: m.exit.Row - 1, Col: m.exit.Col}
	if m.stateAt(above) == Wall {
		m.setState(above, Passage)
	}
}

// Width returns the number of columns in the maze.
func (m *GridMaze) Width() int {
	return m.width
}

// Height returns the number of rows in the maze.
func (m *GridMaze) Height() int {
	return m.height
}

// Entrance returns the fixed entrance position on the top border.
func (m *GridMaze) Entrance() CellPosition {
	return m.entrance
}

// Exit returns the fixed exit position on the bottom border.
func (m *GridMaze) Exit() CellPosition {
	return m.exit
}

// Seed returns the seed the random source was created from.
func (m *GridMaze) Seed() int64 {
	return m.seed
}

// InBound checks whether the position falls inside the grid.
func (m *GridMaze) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.height && pos.Col >= 0 && pos.Col < m.width
}

// StateAt returns the state of the cell at the position. Out-of-bounds
// positions read as Wall, which lets callers probe neighbors without bound
// checks of their own.
func (m *GridMaze) StateAt(pos CellPosition) CellState {
	if !m.InBound(pos) {
		return Wall
	}
	return m.stateAt(pos)
}

// inInterior checks whether the position is strictly inside the border, the
// region generation is allowed to carve.
func (m *GridMaze) inInterior(pos CellPosition) bool {
	return pos.Row > 0 && pos.Row < m.height-1 && pos.Col > 0 && pos.Col < m.width-1
}

func (m *GridMaze) index(pos CellPosition) int {
	return pos.Row*m.width + pos.Col
}

func (m *GridMaze) stateAt(pos CellPosition) CellState {
	return m.cells[m.index(pos)]
}

func (m *GridMaze) setState(pos CellPosition, s CellState) {
	m.cells[m.index(pos)] = s
}

// String provides a textual representation of the maze. The entrance and
// exit render as S and E, walls as '#', passages as spaces, and solver
// annotations as '.' (visited) and '*' (path).
func (m *GridMaze) String() string {
	var b strings.Builder
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			switch {
			case pos == m.entrance:
				b.WriteByte('S')
			case pos == m.exit:
				b.WriteByte('E')
			default:
				switch m.stateAt(pos) {
				case Passage:
					b.WriteByte(' ')
				case Visited:
					b.WriteByte('.')
				case OnPath:
					b.WriteByte('*')
				default:
					b.WriteByte('#')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
