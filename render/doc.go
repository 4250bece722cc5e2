// Package render produces human-readable renderings of a dungeon map for
// terminals and logs.
//
// What:
//
//   - Grid: a plain multi-line rendering, one rune per cell. Rooms draw as
//     box connectors chosen from their RoomType side mask, the base as a
//     solid block, the boss as a cross overlay, gaps as shade.
//   - Renderer/Colored: the same layout with ANSI styles (gookit/color)
//     distinguishing base, boss, critical-path rooms, dead ends, and
//     ordinary rooms.
//
// Why:
//
//   - The analysis core exposes classifications (RoomType, dead ends,
//     critical rooms) precisely so a presentation layer can draw them; this
//     package is the terminal half of that layer.
//
// Complexity: O(W×H) per rendering; Colored adds one CritRooms pass.
package render
