// Package codec provides the canonical single-line text encoding of a
// completed dungeon map, and its inverse.
//
// What:
//
//   - Encode renders a map as space-separated fields:
//
//     <W> <H> <rows> <base> <boss> [endpoints...]
//
//     where <rows> joins the row-major cell glyphs with '/' ('-' = gap,
//     '.' = no link, NSEW = parent direction), coordinates use chess-style
//     notation ("a1"), and the critical endpoints are listed in canonical
//     order, the boss excluded.
//   - Decode parses that form back into a validated *dungeon.Map.
//
// Why:
//
//   - The format is the save/exchange surface between the analysis core and
//     its capture-side collaborators; it is deliberately line-oriented so a
//     log line or a clipboard buffer can carry a whole map.
//
// Round-trip: Decode(Encode(m)) reproduces cells, base, boss, and the
// endpoint set — except an endpoint sitting on the boss, which the format
// cannot carry by its "excluding boss" rule.
//
// Errors:
//
//   - ErrBadFormat: wrong field count.
//   - ErrBadDimension: unparsable or non-positive width/height.
//   - ErrBadGlyph: a row byte outside the glyph alphabet, or wrong row shape.
//   - ErrBadCoordinate: unparsable or out-of-grid coordinate.
//
// Complexity: O(W×H) both ways.
package codec
