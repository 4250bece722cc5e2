// Package dungeonmap analyzes fully-explored dungeon maps laid out on a
// fixed 2D grid, where every visited cell stores the direction of its
// parent room — an implicit spanning tree rooted at a distinguished base.
//
// 🚀 What is dungeonmap?
//
//	An in-memory analysis library that brings together:
//		• Primitives: grid points, cardinal directions, RoomType side masks
//		• Map: the tree container with reverse-lookup child discovery
//		• Classification: rooms, gaps, dead ends, bonus dead ends, density
//		• Traversal: parent chains, subtrees, undirected whole-tree walks
//		• Metrics: distance, subtree size, height, eccentricity, diameter
//		• Mutation: critical-endpoint bookkeeping, pruning, re-rooting
//		• Codec: a canonical one-line text form, both directions
//		• Render: plain and ANSI-colored terminal views
//
// ✨ Why choose dungeonmap?
//
//   - One enum per cell – no pointer graph, no adjacency lists to maintain
//   - Validated up front – corrupted grids are rejected, not defended against
//   - Deterministic – one canonical point order across scans and encodings
//   - Pure Go core – color output is the only presentation dependency
//
// Everything is organized under four subpackages:
//
//	grid/    — Point, Direction, RoomType primitives & canonical ordering
//	dungeon/ — the Map container, traversals, metrics & mutation
//	codec/   — canonical text encoding and its inverse
//	render/  — glyph-grid renderings for terminals and logs
//
// Quick ASCII example (a base with three leaves):
//
//	    ░░░
//	    ╶■╴
//	    ░╵░
//
// Screen capture, pixel matching, and UI loops live with the callers; this
// library only ever sees grid coordinates and direction values.
//
//	go get github.com/katalvlaran/dungeonmap
package dungeonmap
