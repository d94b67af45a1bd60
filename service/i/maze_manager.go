package i

import (
	"context"
	"errors"
	"time"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/google/uuid"
)

// ErrDimensionTooLarge is returned when a requested maze exceeds the
// configured maximum dimension.
var ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured maximum")

// MazeRecord describes a stored maze and how long it took to generate.
type MazeRecord struct {
	ID       uuid.UUID
	Maze     *maze.GridMaze
	Duration time.Duration
}

// SolveResult carries the path found through a maze and how long the
// search took. An empty path means the exit was unreachable.
type SolveResult struct {
	Path     []maze.CellPosition
	Duration time.Duration
}

// MazeManager is the maze lifecycle service consumed by API controllers.
type MazeManager interface {
	// Create generates and stores a new maze of the given dimensions. A
	// non-positive seed lets the service pick one.
	Create(ctx context.Context, width, height int, seed int64) (*MazeRecord, error)

	// ByID reconstructs the stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*maze.GridMaze, error)

	// Solve finds the shortest path through the stored maze and persists
	// the annotated grid.
	Solve(ctx context.Context, id uuid.UUID) (*SolveResult, error)

	// Remove deletes the stored maze.
	Remove(ctx context.Context, id uuid.UUID) error
}
