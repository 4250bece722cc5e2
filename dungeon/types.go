package dungeon

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmap/grid"
)

// Sentinel errors for map construction and mutation.
var (
	// ErrBadDims indicates non-positive grid dimensions.
	ErrBadDims = errors.New("dungeon: width and height must be positive")

	// ErrCellCount indicates a cell slice whose length is not width*height.
	ErrCellCount = errors.New("dungeon: cell slice length must equal width*height")

	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("dungeon: point outside the grid")

	// ErrNotARoom indicates an operation that requires a room cell.
	ErrNotARoom = errors.New("dungeon: point is not a room")

	// ErrNotDeadEnd indicates RemoveDeadEnd was called on a point that is
	// not removable (see IsPrunable).
	ErrNotDeadEnd = errors.New("dungeon: point is not a removable dead end")

	// ErrNotEndpoint indicates BacktrackCritEndpoint was called on a point
	// absent from the critical-endpoint set.
	ErrNotEndpoint = errors.New("dungeon: point is not a critical endpoint")

	// ErrMalformedGrid indicates stored directions that do not form a single
	// tree rooted at the base.
	ErrMalformedGrid = errors.New("dungeon: grid does not encode a tree rooted at the base")
)

// Map is the explored-map spanning tree. Each cell stores the direction of
// its parent room; the base cell stores grid.None and is always a room.
// The zero value is not usable; construct with New or NewFromCells.
type Map struct {
	width, height int
	cells         []grid.Direction
	base          grid.Point
	boss          grid.Point
	critEnds      mapset.Set[grid.Point]
}

// Option configures map construction. Use with New or NewFromCells.
type Option func(*mapConfig)

// mapConfig collects construction parameters before validation.
type mapConfig struct {
	base      grid.Point
	boss      grid.Point
	bossSet   bool
	endpoints []grid.Point
	skipCheck bool
}

// defaultConfig returns the construction defaults: base at the origin and
// the boss co-located with the base.
func defaultConfig() mapConfig {
	return mapConfig{}
}

// WithBase places the root at p. Defaults to the origin.
func WithBase(p grid.Point) Option {
	return func(c *mapConfig) {
		c.base = p
	}
}

// WithBoss places the boss point at p. Defaults to the base point. The boss
// carries no structural constraint; it only has to lie on the grid.
func WithBoss(p grid.Point) Option {
	return func(c *mapConfig) {
		c.boss = p
		c.bossSet = true
	}
}

// WithCritEndpoints seeds the critical-endpoint set. Every point must be a
// room of the constructed map.
func WithCritEndpoints(pts ...grid.Point) Option {
	return func(c *mapConfig) {
		c.endpoints = append(c.endpoints, pts...)
	}
}

// WithoutValidation skips the structural tree check in NewFromCells.
// Intended for grids already validated by a previous pass (e.g. a decoder
// that re-reads its own output); malformed input then surfaces later as
// ErrMalformedGrid from parent-chain walks.
func WithoutValidation() Option {
	return func(c *mapConfig) {
		c.skipCheck = true
	}
}
