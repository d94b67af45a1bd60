// Package service implements the maze lifecycle behind the API: generating
// mazes, storing them between calls, and solving them on demand.
package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/BartekFo/maze-lab/service/i"
	"github.com/google/uuid"
)

const defaultMaxDimension = 101

// Options configures a MazeService.
type Options struct {
	// MaxDimension caps requested widths and heights. Non-positive means
	// the default.
	MaxDimension int

	// Logger for service events. Defaults to a stderr logger.
	Logger *log.Logger
}

// MazeService generates, stores and solves mazes. Generation and solving
// durations are measured here and handed back as plain values; the engine
// itself carries no instrumentation.
type MazeService struct {
	store  i.MazeStore
	locker i.MazeLocker
	solver *maze.Solver
	opts   *Options
}

// NewMazeService creates a MazeService on top of the given store and
// locker.
func NewMazeService(store i.MazeStore, locker i.MazeLocker, opts *Options) (i.MazeManager, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "maze-service: ", log.LstdFlags)
	}

	return &MazeService{
		store:  store,
		locker: locker,
		solver: maze.NewSolver(),
		opts:   opts,
	}, nil
}

// Create generates a maze, stores its snapshot and returns the record with
// the generation duration.
func (s *MazeService) Create(ctx context.Context, width, height int, seed int64) (*i.MazeRecord, error) {
	if max(width, height) > s.opts.MaxDimension {
		return nil, i.ErrDimensionTooLarge
	}

	m, err := maze.New(width, height, &maze.Options{Seed: seed})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m.Generate()
	elapsed := time.Since(start)

	id := uuid.New()
	if err := s.store.Save(ctx, id, m.Snapshot()); err != nil {
		s.opts.Logger.Printf("saving maze %s: %s", id, err)
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	s.opts.Logger.Printf("generated %dx%d maze %s in %s", width, height, id, elapsed)
	return &i.MazeRecord{ID: id, Maze: m, Duration: elapsed}, nil
}

// ByID reconstructs the stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*maze.GridMaze, error) {
	snapshot, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return maze.FromSnapshot(snapshot)
}

// Solve loads the stored maze, runs the shortest-path search and persists
// the annotated grid. The per-maze lock keeps concurrent solve requests
// from interleaving their read-modify-write cycles.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID) (*i.SolveResult, error) {
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("locking maze %s: %w", id, err)
	}
	defer func() {
		if err := unlock(); err != nil {
			s.opts.Logger.Printf("releasing solve lock for %s: %s", id, err)
		}
	}()

	snapshot, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := maze.FromSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	path := s.solver.Solve(m)
	elapsed := time.Since(start)

	if err := s.store.Save(ctx, id, m.Snapshot()); err != nil {
		s.opts.Logger.Printf("saving solved maze %s: %s", id, err)
		return nil, fmt.Errorf("saving solved maze: %w", err)
	}

	s.opts.Logger.Printf("solved maze %s in %s, path length %d", id, elapsed, len(path))
	return &i.SolveResult{Path: path, Duration: elapsed}, nil
}

// Remove deletes the stored maze.
func (s *MazeService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.store.Remove(ctx, id)
}
