package i

import (
	"context"
	"errors"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by stores when no maze exists for an ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeStore keeps maze snapshots between API calls.
type MazeStore interface {
	// Save stores the snapshot under the ID, overwriting any previous one.
	Save(ctx context.Context, id uuid.UUID, snapshot *maze.Snapshot) error

	// ByID returns the snapshot stored under the ID, or ErrMazeNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*maze.Snapshot, error)

	// Remove deletes the snapshot stored under the ID.
	Remove(ctx context.Context, id uuid.UUID) error
}

// UnlockFunc releases a lock taken with MazeLocker.Lock.
type UnlockFunc func() error

// MazeLocker serializes read-modify-write access to a stored maze. A grid
// is a single-writer resource, so anything that loads, mutates and saves a
// maze holds its lock for the whole update.
type MazeLocker interface {
	Lock(ctx context.Context, id uuid.UUID) (UnlockFunc, error)
}
