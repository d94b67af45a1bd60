package maze

import "fmt"

// CellState describes the role of a single grid cell. Wall and Passage make
// up the maze topology; Visited and OnPath are solver annotations meant for
// rendering and never change the carved structure.
type CellState uint8

const (
	// Wall is an uncarved cell. Freshly allocated grids are all Wall.
	Wall CellState = iota
	// Passage is a carved cell that can be walked through.
	Passage
	// Visited marks a cell the solver expanded while searching.
	Visited
	// OnPath marks a cell on the final entrance-to-exit path.
	OnPath
)

func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Visited:
		return "visited"
	case OnPath:
		return "path"
	}
	return fmt.Sprintf("unknown cell state: %d", uint8(s))
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}
