package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmap/grid"
)

// TraverseToBase walks the parent chain p → Parent(p) → … → base, invoking
// visit on every non-base point along the way (p included when p is not the
// base). The walk is bounded by W×H steps; overrunning the bound, or
// stepping onto a non-room cell, reports ErrMalformedGrid — a safety valve,
// not a substitute for Validate. Returns ErrNotARoom when p is no room.
// Complexity: O(path length).
func (m *Map) TraverseToBase(p grid.Point, visit func(grid.Point) error) error {
	if !m.IsRoom(p) {
		return fmt.Errorf("%w: %s", ErrNotARoom, p)
	}
	cur := p
	for steps := 0; cur != m.base; steps++ {
		if steps >= m.MaxRooms() {
			return fmt.Errorf("%w: parent chain from %s exceeds %d steps", ErrMalformedGrid, p, m.MaxRooms())
		}
		if err := visit(cur); err != nil {
			return err
		}
		next := cur.Add(m.at(cur))
		if !m.IsRoom(next) {
			return fmt.Errorf("%w: dangling parent link at %s", ErrMalformedGrid, cur)
		}
		cur = next
	}

	return nil
}

// TraverseSubtree descends depth-first from p through child edges only,
// invoking visit with each point and its depth below p (p itself at 0).
// Children are recovered per cell via ChildrenDirs, so termination relies
// on the grid encoding a tree; validate first when in doubt. Returns
// ErrOutOfBounds when p is off the grid. Complexity: O(subtree size).
func (m *Map) TraverseSubtree(p grid.Point, visit func(p grid.Point, depth int) error) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}

	return m.descend(p, 0, visit)
}

// descend is the recursive body of TraverseSubtree.
func (m *Map) descend(p grid.Point, depth int, visit func(grid.Point, int) error) error {
	if err := visit(p, depth); err != nil {
		return err
	}
	for _, d := range m.ChildrenDirs(p) {
		if err := m.descend(p.Add(d), depth+1, visit); err != nil {
			return err
		}
	}

	return nil
}

// treeWalker carries the visited set of an undirected whole-tree walk.
type treeWalker struct {
	m    *Map
	seen mapset.Set[grid.Point]
}

// TraverseWholeTree walks the tree as an undirected graph, rooted at an
// arbitrary room — not necessarily the base. From each point it explores
// the original parent edge as well as every child edge, guarded by a
// visited set. visit receives each newly reached point, the direction from
// that point back toward the point it was discovered from (its parent under
// rooting at root; grid.None for root itself), and its depth below root.
// This generalization over downward traversal is what enables re-rooting
// and farthest-point queries from non-base points.
// Returns ErrNotARoom when root is no room. Complexity: O(W×H).
func (m *Map) TraverseWholeTree(root grid.Point, visit func(p grid.Point, toParent grid.Direction, depth int) error) error {
	if !m.IsRoom(root) {
		return fmt.Errorf("%w: %s", ErrNotARoom, root)
	}
	w := &treeWalker{m: m, seen: mapset.New[grid.Point]()}

	return w.walk(root, grid.None, 0, visit)
}

// walk visits p and recurses over every unvisited tree edge at p.
func (w *treeWalker) walk(p grid.Point, toParent grid.Direction, depth int, visit func(grid.Point, grid.Direction, int) error) error {
	w.seen.Put(p)

	// Capture the upward edge before visit runs: Rebase's hook overwrites
	// the cell at p, and the original parent link must survive until both
	// sides of the edge have been explored.
	up := grid.Gap
	if p != w.m.base && w.m.at(p).IsCardinal() {
		up = w.m.at(p)
	}

	if err := visit(p, toParent, depth); err != nil {
		return err
	}

	// Upward: the original parent edge, walked away from root.
	if up.IsCardinal() {
		if q := p.Add(up); w.m.IsRoom(q) && !w.seen.Has(q) {
			if err := w.walk(q, up.Flip(), depth+1, visit); err != nil {
				return err
			}
		}
	}

	// Downward: every child edge.
	for _, d := range w.m.ChildrenDirs(p) {
		if q := p.Add(d); !w.seen.Has(q) {
			if err := w.walk(q, d.Flip(), depth+1, visit); err != nil {
				return err
			}
		}
	}

	return nil
}
