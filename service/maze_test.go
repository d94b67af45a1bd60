package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/BartekFo/maze-lab/service/i"
	"github.com/BartekFo/maze-lab/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts *Options) i.MazeManager {
	t.Helper()
	if opts == nil {
		opts = &Options{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	store := storage.NewMemoryMazeStore()
	svc, err := NewMazeService(store, store, opts)
	require.NoError(t, err)
	return svc
}

func TestMazeService(t *testing.T) {
	ctx := context.Background()

	t.Run("create generates and stores a maze", func(t *testing.T) {
		svc := newTestService(t, nil)

		record, err := svc.Create(ctx, 15, 11, 42)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID)
		assert.Equal(t, 15, record.Maze.Width())
		assert.Equal(t, 11, record.Maze.Height())
		assert.GreaterOrEqual(t, record.Duration, time.Duration(0))

		stored, err := svc.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Maze.String(), stored.String())
	})

	t.Run("create rejects invalid dimensions", func(t *testing.T) {
		svc := newTestService(t, nil)
		_, err := svc.Create(ctx, 2, 2, 1)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("create caps the dimensions", func(t *testing.T) {
		svc := newTestService(t, &Options{MaxDimension: 31})
		_, err := svc.Create(ctx, 33, 15, 1)
		assert.ErrorIs(t, err, i.ErrDimensionTooLarge)
	})

	t.Run("solve returns the shortest path and persists annotations", func(t *testing.T) {
		svc := newTestService(t, nil)
		record, err := svc.Create(ctx, 31, 31, 7)
		require.NoError(t, err)

		result, err := svc.Solve(ctx, record.ID)
		require.NoError(t, err)
		require.NotEmpty(t, result.Path)
		assert.Equal(t, record.Maze.Entrance(), result.Path[0])
		assert.Equal(t, record.Maze.Exit(), result.Path[len(result.Path)-1])

		stored, err := svc.ByID(ctx, record.ID)
		require.NoError(t, err)
		mid := result.Path[len(result.Path)/2]
		assert.Equal(t, maze.OnPath, stored.StateAt(mid))
	})

	t.Run("solve twice returns the same path", func(t *testing.T) {
		svc := newTestService(t, nil)
		record, err := svc.Create(ctx, 21, 21, 3)
		require.NoError(t, err)

		first, err := svc.Solve(ctx, record.ID)
		require.NoError(t, err)
		second, err := svc.Solve(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Path, second.Path)
	})

	t.Run("solve on an unknown maze fails", func(t *testing.T) {
		svc := newTestService(t, nil)
		_, err := svc.Solve(ctx, uuid.New())
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})

	t.Run("remove forgets the maze", func(t *testing.T) {
		svc := newTestService(t, nil)
		record, err := svc.Create(ctx, 9, 9, 2)
		require.NoError(t, err)

		require.NoError(t, svc.Remove(ctx, record.ID))
		_, err = svc.ByID(ctx, record.ID)
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})
}
