package maze

import "errors"

// ErrCorruptSnapshot is returned when a snapshot's cell buffer or endpoints
// do not match its dimensions.
var ErrCorruptSnapshot = errors.New("maze: snapshot does not match its dimensions")

// Snapshot is a serializable copy of a maze, suitable for JSON transport
// and storage between API calls.
type Snapshot struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Cells    []CellState  `json:"cells"`
	Entrance CellPosition `json:"entrance"`
	Exit     CellPosition `json:"exit"`
	Seed     int64        `json:"seed"`
}

// Snapshot copies the maze into its serializable form. The cell buffer is
// copied, so later mutations of the maze do not leak into the snapshot.
func (m *GridMaze) Snapshot() *Snapshot {
	cells := make([]CellState, len(m.cells))
	copy(cells, m.cells)
	return &Snapshot{
		Width:    m.width,
		Height:   m.height,
		Cells:    cells,
		Entrance: m.entrance,
		Exit:     m.exit,
		Seed:     m.seed,
	}
}

// FromSnapshot reconstructs a maze from its serialized form. The snapshot
// may come from an untrusted store, so dimensions, buffer length and
// endpoint positions are all validated.
func FromSnapshot(s *Snapshot) (*GridMaze, error) {
	m, err := New(s.Width, s.Height, &Options{Seed: s.Seed})
	if err != nil {
		return nil, err
	}
	if len(s.Cells) != s.Width*s.Height || !m.InBound(s.Entrance) || !m.InBound(s.Exit) {
		return nil, ErrCorruptSnapshot
	}
	copy(m.cells, s.Cells)
	m.entrance = s.Entrance
	m.exit = s.Exit
	return m, nil
}
