package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmap/grid"
)

// New constructs a width×height map whose cells are all grid.Gap except the
// base cell, which holds grid.None. Returns ErrBadDims for non-positive
// dimensions and ErrOutOfBounds when the configured base or boss point lies
// off the grid.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDims
	}
	cells := make([]grid.Direction, width*height)
	for i := range cells {
		cells[i] = grid.Gap
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.base.InBounds(width, height) {
		cells[cfg.base.Y*width+cfg.base.X] = grid.None
	}

	return newMap(width, height, cells, cfg)
}

// NewFromCells constructs a map from a dense row-major cell slice, as
// produced by an external capture/classification collaborator. The slice is
// deep-copied. Unless WithoutValidation is given, the stored directions are
// checked to encode a single tree rooted at the base (ErrMalformedGrid
// otherwise).
// Complexity: O(W×H) time and memory, validation included.
func NewFromCells(width, height int, cells []grid.Direction, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDims
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %d×%d", ErrCellCount, len(cells), width, height)
	}
	cp := make([]grid.Direction, len(cells))
	copy(cp, cells)

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newMap(width, height, cp, cfg)
}

// newMap assembles and checks a Map from an owned cell slice.
func newMap(width, height int, cells []grid.Direction, cfg mapConfig) (*Map, error) {
	// 1. Dimension and anchor-point checks.
	if width <= 0 || height <= 0 {
		return nil, ErrBadDims
	}
	if !cfg.base.InBounds(width, height) {
		return nil, fmt.Errorf("%w: base %s", ErrOutOfBounds, cfg.base)
	}
	if !cfg.bossSet {
		cfg.boss = cfg.base
	}
	if !cfg.boss.InBounds(width, height) {
		return nil, fmt.Errorf("%w: boss %s", ErrOutOfBounds, cfg.boss)
	}

	m := &Map{
		width:    width,
		height:   height,
		cells:    cells,
		base:     cfg.base,
		boss:     cfg.boss,
		critEnds: mapset.New[grid.Point](),
	}

	// 2. Critical endpoints must be rooms of the assembled grid.
	for _, p := range cfg.endpoints {
		if !m.IsRoom(p) {
			return nil, fmt.Errorf("%w: critical endpoint %s", ErrNotARoom, p)
		}
		m.critEnds.Put(p)
	}

	// 3. Structural validation, unless the caller vouches for the grid.
	if !cfg.skipCheck {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Width returns the grid width.
func (m *Map) Width() int { return m.width }

// Height returns the grid height.
func (m *Map) Height() int { return m.height }

// MaxRooms returns the cell count W×H, the upper bound on rooms and on any
// parent-chain length.
func (m *Map) MaxRooms() int { return m.width * m.height }

// Base returns the root point of the tree.
func (m *Map) Base() grid.Point { return m.base }

// Boss returns the boss point.
func (m *Map) Boss() grid.Point { return m.boss }

// SetBoss moves the boss point. Returns ErrOutOfBounds off the grid; no
// structural constraint is enforced on the boss.
func (m *Map) SetBoss(p grid.Point) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: boss %s", ErrOutOfBounds, p)
	}
	m.boss = p

	return nil
}

// InBounds reports whether p lies on the grid.
func (m *Map) InBounds(p grid.Point) bool {
	return p.InBounds(m.width, m.height)
}

// At returns the stored direction at p, or ErrOutOfBounds.
func (m *Map) At(p grid.Point) (grid.Direction, error) {
	if !m.InBounds(p) {
		return grid.Gap, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}

	return m.at(p), nil
}

// at reads a cell without a bounds check; callers guarantee p is on grid.
func (m *Map) at(p grid.Point) grid.Direction {
	return m.cells[p.Y*m.width+p.X]
}

// set writes a cell without a bounds check; callers guarantee p is on grid.
func (m *Map) set(p grid.Point, d grid.Direction) {
	m.cells[p.Y*m.width+p.X] = d
}

// Parent returns the point the cell at p links to: p plus its stored
// direction. Sentinel cells and off-grid points return p unchanged.
func (m *Map) Parent(p grid.Point) grid.Point {
	if !m.InBounds(p) {
		return p
	}

	return p.Add(m.at(p))
}

// Cells returns a copy of the row-major cell slice.
func (m *Map) Cells() []grid.Direction {
	cp := make([]grid.Direction, len(m.cells))
	copy(cp, m.cells)

	return cp
}

// Clone returns a deep copy sharing no state with m. Useful before
// destructive pruning or re-rooting experiments.
func (m *Map) Clone() *Map {
	cp := &Map{
		width:    m.width,
		height:   m.height,
		cells:    m.Cells(),
		base:     m.base,
		boss:     m.boss,
		critEnds: mapset.New[grid.Point](),
	}
	m.critEnds.Each(func(p grid.Point) { cp.critEnds.Put(p) })

	return cp
}

// Clear resets every cell to grid.None and empties the critical-endpoint
// set. Base and boss points are retained.
func (m *Map) Clear() {
	for i := range m.cells {
		m.cells[i] = grid.None
	}
	m.critEnds = mapset.New[grid.Point]()
}
