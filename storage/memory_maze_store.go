package storage

import (
	"context"
	"sync"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/BartekFo/maze-lab/service/i"
	"github.com/google/uuid"
)

// MemoryMazeStore keeps maze snapshots in an in-process map. It is the
// default store when no Redis is configured, and doubles as the test
// double for everything that needs a MazeStore.
type MemoryMazeStore struct {
	mu    sync.RWMutex
	mazes map[uuid.UUID]*maze.Snapshot

	lockMu sync.Mutex
	locks  map[uuid.UUID]*sync.Mutex
}

// NewMemoryMazeStore initializes an empty MemoryMazeStore.
func NewMemoryMazeStore() *MemoryMazeStore {
	return &MemoryMazeStore{
		mazes: make(map[uuid.UUID]*maze.Snapshot),
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Save stores the snapshot under the ID, overwriting any previous one.
func (ms *MemoryMazeStore) Save(_ context.Context, id uuid.UUID, snapshot *maze.Snapshot) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.mazes[id] = snapshot
	return nil
}

// ByID returns the snapshot stored under the ID.
func (ms *MemoryMazeStore) ByID(_ context.Context, id uuid.UUID) (*maze.Snapshot, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	snapshot, ok := ms.mazes[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return snapshot, nil
}

// Remove deletes the snapshot and its lock entry.
func (ms *MemoryMazeStore) Remove(_ context.Context, id uuid.UUID) error {
	ms.mu.Lock()
	delete(ms.mazes, id)
	ms.mu.Unlock()

	ms.lockMu.Lock()
	delete(ms.locks, id)
	ms.lockMu.Unlock()
	return nil
}

// Lock takes the per-maze mutex and returns its release function.
func (ms *MemoryMazeStore) Lock(_ context.Context, id uuid.UUID) (i.UnlockFunc, error) {
	ms.lockMu.Lock()
	l, ok := ms.locks[id]
	if !ok {
		l = &sync.Mutex{}
		ms.locks[id] = l
	}
	ms.lockMu.Unlock()

	l.Lock()
	return func() error {
		l.Unlock()
		return nil
	}, nil
}
