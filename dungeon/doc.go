// Package dungeon implements the explored-map spanning tree: a rectangular
// grid in which every room cell stores the direction of its parent room,
// forming an implicit tree rooted at a distinguished base cell.
//
// What:
//
//   - Map wraps a width×height grid of grid.Direction values together with
//     the base (root), the boss point, and an ordered set of critical
//     endpoints. Children are never stored: they are recovered on demand by
//     scanning the four neighbors for a cell that points back (ChildrenDirs).
//   - Classification: RoomType side masks, room/gap predicates, dead-end and
//     bonus-dead-end detection, local density.
//   - Traversal: parent-chain walks (TraverseToBase), downward subtree walks
//     (TraverseSubtree), and undirected whole-tree walks from an arbitrary
//     root (TraverseWholeTree).
//   - Metrics: distance to base, subtree size, tree height, farthest point,
//     eccentricity, and diameter via the double-sweep technique.
//   - Mutation: critical-endpoint bookkeeping, dead-end pruning
//     (RemoveDeadEnd), and in-place re-rooting (Rebase).
//
// Why:
//
//   - One enum per cell is the whole storage cost of the tree; O(1) child
//     recovery keeps every per-cell query constant-time and every full-grid
//     query at O(W×H) without any adjacency structure to maintain.
//
// Complexity:
//
//   - Per-cell queries (ChildrenDirs, RoomType, IsDeadEnd, Density): O(1).
//   - Full-grid scans (Rooms, DeadEnds, ...): O(W×H).
//   - TraverseToBase: O(path length), bounded by W×H.
//   - TraverseSubtree / TraverseWholeTree / Rebase / metrics: O(W×H).
//   - Diameter: two whole-tree sweeps, O(W×H).
//
// Errors:
//
//   - ErrBadDims, ErrCellCount: invalid construction input.
//   - ErrOutOfBounds: a point names no cell of this grid.
//   - ErrNotARoom: operation requires a room cell.
//   - ErrNotDeadEnd: RemoveDeadEnd called on a non-removable point.
//   - ErrNotEndpoint: BacktrackCritEndpoint called on a point outside the
//     critical-endpoint set.
//   - ErrMalformedGrid: the stored directions do not encode a single tree
//     rooted at the base (cycle, dangling parent, mislabeled base cell).
//
// Map is not safe for concurrent use; callers must serialize mutation and
// must not run metric queries concurrently with mutation on one instance.
package dungeon
