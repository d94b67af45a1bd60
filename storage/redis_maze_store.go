// Package storage provides the maze store implementations: an in-process
// map for standalone runs and tests, and a Redis-backed store for sharing
// mazes between API replicas.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/BartekFo/maze-lab/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// key string formats
	mazeKeyFmt     = "maze:%s"
	mazeLockKeyFmt = "maze:%s:solve_lock"
)

// RedisMazeStore keeps maze snapshots as JSON values in Redis with a TTL,
// and backs the per-maze solve lock with redsync mutexes so multiple API
// replicas never mutate the same maze concurrently.
type RedisMazeStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeStore initializes a RedisMazeStore with the provided Redis
// client and TTL.
func NewRedisMazeStore(client *redis.Client, ttlSeconds int) (*RedisMazeStore, error) {
	store := &RedisMazeStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Save stores the snapshot under the ID, refreshing its TTL.
func (rs *RedisMazeStore) Save(ctx context.Context, id uuid.UUID, snapshot *maze.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, rs.mazeKey(id), raw, rs.ttl).Err()
}

// ByID returns the snapshot stored under the ID.
func (rs *RedisMazeStore) ByID(ctx context.Context, id uuid.UUID) (*maze.Snapshot, error) {
	raw, err := rs.client.Get(ctx, rs.mazeKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrMazeNotFound
	}
	if err != nil {
		return nil, err
	}

	var snapshot maze.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding stored maze %s: %w", id, err)
	}
	return &snapshot, nil
}

// Remove deletes the snapshot stored under the ID.
func (rs *RedisMazeStore) Remove(ctx context.Context, id uuid.UUID) error {
	return rs.client.Del(ctx, rs.mazeKey(id)).Err()
}

// Lock takes the distributed per-maze mutex and returns its release
// function.
func (rs *RedisMazeStore) Lock(ctx context.Context, id uuid.UUID) (i.UnlockFunc, error) {
	mutex := rs.locker.NewMutex(fmt.Sprintf(mazeLockKeyFmt, id))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() error {
		ok, err := mutex.Unlock()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("redis eval func returned 0 while releasing")
		}
		return nil
	}, nil
}

func (rs *RedisMazeStore) mazeKey(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, id)
}
