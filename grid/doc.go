// Package grid provides the primitive vocabulary for dungeon maps:
// integer points on a fixed rectangular grid, cardinal directions with two
// sentinels, and the RoomType side-mask derived from them.
//
// What:
//
//   - Direction: North/South/East/West plus None (root / no link) and Gap
//     (explicitly not a room), with Flip, Delta, and glyph conversions.
//   - RoomType: a bit-flag describing which sides of a room connect to a
//     neighboring room; renderers pick connector glyphs from it.
//   - Point: an (X,Y) cell coordinate with bounds checks, direction
//     addition, and a chess-style textual notation ("a1", "c4", ...).
//   - Less/SortPoints: the canonical row-major ordering used everywhere a
//     deterministic point sequence is required (scans, serialization,
//     endpoint snapshots).
//
// Why:
//
//   - Dungeon analysis (package dungeon) stores one Direction per cell and
//     derives everything else; keeping the vocabulary tiny and allocation
//     free keeps full-grid scans at O(W×H) with zero garbage.
//
// Errors:
//
//   - ErrBadNotation: a coordinate string is not valid chess-style notation.
//   - ErrBadGlyph: a byte is not a recognized cell glyph.
//
// All operations are O(1) except SortPoints, which is O(n log n).
package grid
