package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmap/grid"
)

// ChildrenDirs returns the directions from p toward each of its child
// rooms. A neighbor q = p+d is a child of p exactly when the cell at q
// stores Flip(d), i.e. points back at p; no child list is ever stored.
// Off-grid points have no children. O(1): four neighbor checks.
func (m *Map) ChildrenDirs(p grid.Point) []grid.Direction {
	if !m.InBounds(p) {
		return nil
	}
	var dirs []grid.Direction
	for _, d := range grid.Directions() {
		q := p.Add(d)
		if q.InBounds(m.width, m.height) && m.at(q) == d.Flip() {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// RoomType classifies which sides of the cell at p connect to neighboring
// rooms. Non-room cells other than the base return their sentinel
// classification directly (RoomTypeGap, RoomTypeNone). For rooms, the mask
// combines the side toward the parent with the side toward every child; a
// base cell left with no connections at all degrades to RoomTypeGap, since
// an unconnected cell has no through-room rendering.
func (m *Map) RoomType(p grid.Point) grid.RoomType {
	if !m.InBounds(p) {
		return grid.RoomTypeGap
	}
	rt := m.at(p).RoomType()
	if p != m.base && rt <= grid.RoomTypeNone {
		return rt
	}
	for _, d := range m.ChildrenDirs(p) {
		rt |= d.RoomType()
	}
	if rt == grid.RoomTypeNone {
		rt = grid.RoomTypeGap
	}

	return rt
}

// IsRoom reports whether p is part of the explored tree: the base cell
// (always a room) or an in-bounds cell storing a cardinal direction.
func (m *Map) IsRoom(p grid.Point) bool {
	if p == m.base {
		return true
	}

	return m.InBounds(p) && m.at(p).IsCardinal()
}

// isDeadEnd applies the dead-end rules. With includeBaseAndBoss unset the
// boss is never a dead end; with it set, the base counts as a dead end only
// when it has exactly one child (the tree then survives its removal).
func (m *Map) isDeadEnd(p grid.Point, includeBaseAndBoss bool) bool {
	if !m.IsRoom(p) {
		return false
	}
	if p == m.boss && !includeBaseAndBoss {
		return false
	}
	children := m.ChildrenDirs(p)
	if p == m.base && includeBaseAndBoss {
		return len(children) == 1
	}

	return len(children) == 0
}

// IsDeadEnd reports whether p is a childless room, excluding the boss.
func (m *Map) IsDeadEnd(p grid.Point) bool {
	return m.isDeadEnd(p, false)
}

// IsPrunable reports whether RemoveDeadEnd may be applied to p: a childless
// room (boss included), or the base when it has exactly one child.
func (m *Map) IsPrunable(p grid.Point) bool {
	return m.isDeadEnd(p, true)
}

// IsBonusDeadEnd reports whether p is a dead end that no critical endpoint
// requires: prunable without losing any must-reach branch.
func (m *Map) IsBonusDeadEnd(p grid.Point) bool {
	return m.IsDeadEnd(p) && !m.critEnds.Has(p)
}

// scan collects all grid points satisfying pred, in canonical (row-major)
// order. O(W×H).
func (m *Map) scan(pred func(grid.Point) bool) []grid.Point {
	var pts []grid.Point
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if p := (grid.Point{X: x, Y: y}); pred(p) {
				pts = append(pts, p)
			}
		}
	}

	return pts
}

// Rooms returns every room cell in canonical order.
func (m *Map) Rooms() []grid.Point { return m.scan(m.IsRoom) }

// RoomCount returns the number of room cells.
func (m *Map) RoomCount() int { return len(m.Rooms()) }

// Gaps returns every cell storing grid.Gap, in canonical order.
func (m *Map) Gaps() []grid.Point {
	return m.scan(func(p grid.Point) bool { return m.at(p) == grid.Gap })
}

// NonRooms returns every cell that is not a room, in canonical order.
func (m *Map) NonRooms() []grid.Point {
	return m.scan(func(p grid.Point) bool { return !m.IsRoom(p) })
}

// DeadEnds returns every dead-end room in canonical order.
func (m *Map) DeadEnds() []grid.Point { return m.scan(m.IsDeadEnd) }

// BonusDeadEnds returns every dead end outside the critical-endpoint set,
// in canonical order.
func (m *Map) BonusDeadEnds() []grid.Point { return m.scan(m.IsBonusDeadEnd) }

// Density returns how many of the four neighbors of p are rooms (0–4),
// a local crowding metric.
func (m *Map) Density(p grid.Point) int {
	n := 0
	for _, d := range grid.Directions() {
		if m.IsRoom(p.Add(d)) {
			n++
		}
	}

	return n
}

// HasCritEndpoint reports whether p is in the critical-endpoint set.
func (m *Map) HasCritEndpoint(p grid.Point) bool {
	return m.critEnds.Has(p)
}

// CritEndpoints returns a snapshot of the critical-endpoint set in
// canonical order.
func (m *Map) CritEndpoints() []grid.Point {
	pts := make([]grid.Point, 0, m.critEnds.Size())
	m.critEnds.Each(func(p grid.Point) { pts = append(pts, p) })
	grid.SortPoints(pts)

	return pts
}

// CritRooms returns the minimal must-keep room set: the base plus every
// point on the parent-chain from each critical endpoint to the base, in
// canonical order. Returns ErrMalformedGrid if a chain does not reach the
// base. O(k×L) for k endpoints with chains of length L.
func (m *Map) CritRooms() ([]grid.Point, error) {
	seen := mapset.New[grid.Point]()
	seen.Put(m.base)
	var walkErr error
	m.critEnds.Each(func(e grid.Point) {
		if walkErr != nil {
			return
		}
		walkErr = m.TraverseToBase(e, func(p grid.Point) error {
			seen.Put(p)

			return nil
		})
	})
	if walkErr != nil {
		return nil, fmt.Errorf("dungeon: crit rooms: %w", walkErr)
	}

	pts := make([]grid.Point, 0, seen.Size())
	seen.Each(func(p grid.Point) { pts = append(pts, p) })
	grid.SortPoints(pts)

	return pts, nil
}
