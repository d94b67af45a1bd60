// Package mazeapi provides structures and utilities for generating,
// solving and rendering mazes over HTTP.
package mazeapi

import (
	"time"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/google/uuid"
)

// CreateMazeRequest asks for a new maze of the given dimensions. Seed is
// optional; non-positive values let the server pick one.
type CreateMazeRequest struct {
	Width  int   `json:"width" binding:"required"`
	Height int   `json:"height" binding:"required"`
	Seed   int64 `json:"seed"`
}

// PositionResponse is a single grid coordinate.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse describes a stored maze. Grid rows hold the raw cell states
// (0 wall, 1 passage, 2 visited, 3 path).
type MazeResponse struct {
	ID          string           `json:"id"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Entrance    PositionResponse `json:"entrance"`
	Exit        PositionResponse `json:"exit"`
	Grid        [][]uint8        `json:"grid"`
	GeneratedMS float64          `json:"generated_ms,omitempty"`
}

// SolveMazeResponse carries the shortest path found through a maze.
type SolveMazeResponse struct {
	Path     []PositionResponse `json:"path"`
	Length   int                `json:"length"`
	SolvedMS float64            `json:"solved_ms"`
}

func newPositionResponse(pos maze.CellPosition) PositionResponse {
	return PositionResponse{Row: pos.Row, Col: pos.Col}
}

func newMazeResponse(id uuid.UUID, m *maze.GridMaze, generated time.Duration) *MazeResponse {
	grid := make([][]uint8, m.Height())
	for row := range grid {
		grid[row] = make([]uint8, m.Width())
		for col := range grid[row] {
			grid[row][col] = uint8(m.StateAt(maze.CellPosition{Row: row, Col: col}))
		}
	}

	return &MazeResponse{
		ID:          id.String(),
		Width:       m.Width(),
		Height:      m.Height(),
		Entrance:    newPositionResponse(m.Entrance()),
		Exit:        newPositionResponse(m.Exit()),
		Grid:        grid,
		GeneratedMS: float64(generated.Microseconds()) / 1000,
	}
}
