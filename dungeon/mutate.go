package dungeon

import (
	"fmt"

	"github.com/katalvlaran/dungeonmap/grid"
)

// AddCritEndpoint marks p as a must-reach branch tip. Returns ErrNotARoom
// when p is not a room (the endpoint set is always a subset of the rooms).
func (m *Map) AddCritEndpoint(p grid.Point) error {
	if !m.IsRoom(p) {
		return fmt.Errorf("%w: %s", ErrNotARoom, p)
	}
	m.critEnds.Put(p)

	return nil
}

// BacktrackCritEndpoint shifts the must-reach requirement at p one step
// toward the base: p leaves the endpoint set and its parent enters it. A
// base endpoint is simply removed, the requirement having been consumed at
// the root. Returns ErrNotEndpoint when p is not in the set.
func (m *Map) BacktrackCritEndpoint(p grid.Point) error {
	if !m.critEnds.Has(p) {
		return fmt.Errorf("%w: %s", ErrNotEndpoint, p)
	}
	m.critEnds.Remove(p)
	if p != m.base {
		m.critEnds.Put(m.Parent(p))
	}

	return nil
}

// RemoveDeadEnd prunes the dead end at p, turning its cell into a gap.
// Removing the base hands the root over to its single child: the child's
// link is cleared to grid.None, it leaves the endpoint set if present, and
// it becomes the new base. Removing a critical endpoint moves the
// requirement to its parent. Returns ErrNotDeadEnd unless IsPrunable(p).
func (m *Map) RemoveDeadEnd(p grid.Point) error {
	if !m.IsPrunable(p) {
		return fmt.Errorf("%w: %s", ErrNotDeadEnd, p)
	}

	if p == m.base {
		// IsPrunable guarantees exactly one child here.
		d := m.ChildrenDirs(p)[0]
		child := p.Add(d)
		m.set(child, grid.None)
		m.critEnds.Remove(child)
		m.base = child
	} else if m.critEnds.Has(p) {
		m.critEnds.Put(m.Parent(p))
	}
	m.critEnds.Remove(p)
	m.set(p, grid.Gap)

	return nil
}

// Rebase re-roots the tree at newBase without rebuilding any adjacency
// structure: a single whole-tree walk over the current rooting rewrites
// every cell with the direction toward its parent under the new rooting
// (grid.None for newBase itself). No-op when newBase is already the base;
// ErrNotARoom when it is no room. Complexity: O(W×H).
func (m *Map) Rebase(newBase grid.Point) error {
	if !m.IsRoom(newBase) {
		return fmt.Errorf("%w: %s", ErrNotARoom, newBase)
	}
	if newBase == m.base {
		return nil
	}

	err := m.TraverseWholeTree(newBase, func(p grid.Point, toParent grid.Direction, _ int) error {
		m.set(p, toParent)

		return nil
	})
	if err != nil {
		return fmt.Errorf("dungeon: rebase at %s: %w", newBase, err)
	}
	m.base = newBase

	return nil
}
