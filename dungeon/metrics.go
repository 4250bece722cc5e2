package dungeon

import (
	"github.com/katalvlaran/dungeonmap/grid"
)

// DistanceToBase returns the number of parent-chain hops from p to the
// base; zero when p is the base. Returns ErrNotARoom or ErrMalformedGrid
// from the underlying walk. Complexity: O(path length).
func (m *Map) DistanceToBase(p grid.Point) (int, error) {
	hops := 0
	if err := m.TraverseToBase(p, func(grid.Point) error {
		hops++

		return nil
	}); err != nil {
		return 0, err
	}

	return hops, nil
}

// SubtreeSize returns the number of points in the subtree rooted at p,
// p included; zero when p is off the grid. Complexity: O(subtree size).
func (m *Map) SubtreeSize(p grid.Point) int {
	n := 0
	_ = m.TraverseSubtree(p, func(grid.Point, int) error {
		n++

		return nil
	})

	return n
}

// TreeHeight returns the maximum depth of any room below the base; zero for
// a map whose only room is the base. Complexity: O(W×H).
func (m *Map) TreeHeight() int {
	height := 0
	_ = m.TraverseSubtree(m.base, func(_ grid.Point, depth int) error {
		if depth > height {
			height = depth
		}

		return nil
	})

	return height
}

// FarthestPoint returns the room farthest from p in hop distance, together
// with that distance. Ties resolve to the first point the whole-tree walk
// reaches at the maximum depth. Returns ErrNotARoom when p is no room.
// Complexity: O(W×H).
func (m *Map) FarthestPoint(p grid.Point) (grid.Point, int, error) {
	best, bestDepth := p, 0
	err := m.TraverseWholeTree(p, func(q grid.Point, _ grid.Direction, depth int) error {
		if depth > bestDepth {
			best, bestDepth = q, depth
		}

		return nil
	})
	if err != nil {
		return grid.Point{}, 0, err
	}

	return best, bestDepth, nil
}

// Eccentricity returns the maximum hop distance from p to any room.
func (m *Map) Eccentricity(p grid.Point) (int, error) {
	_, d, err := m.FarthestPoint(p)

	return d, err
}

// Diameter returns the maximum pairwise hop distance between any two rooms,
// via the classic double sweep: the farthest point from the base is one
// endpoint of a longest path, and its own eccentricity is the diameter.
// Correct only because the grid encodes a tree (Validate guarantees it).
// Complexity: O(W×H), two sweeps.
func (m *Map) Diameter() (int, error) {
	end, _, err := m.FarthestPoint(m.base)
	if err != nil {
		return 0, err
	}

	return m.Eccentricity(end)
}
