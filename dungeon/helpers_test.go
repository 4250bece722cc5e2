package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonmap/dungeon"
	"github.com/katalvlaran/dungeonmap/grid"
)

// parseRows turns glyph rows ('-' gap, '.' none, NSEW parent links) into a
// row-major cell slice.
func parseRows(t testing.TB, rows []string) (width, height int, cells []grid.Direction) {
	t.Helper()
	height = len(rows)
	width = len(rows[0])
	cells = make([]grid.Direction, 0, width*height)
	for _, row := range rows {
		require.Len(t, row, width, "ragged test rows")
		for i := 0; i < len(row); i++ {
			d, err := grid.ParseGlyph(row[i])
			require.NoError(t, err, "glyph %q", row[i])
			cells = append(cells, d)
		}
	}

	return width, height, cells
}

// mustMap builds a validated map from glyph rows.
func mustMap(t testing.TB, rows []string, opts ...dungeon.Option) *dungeon.Map {
	t.Helper()
	w, h, cells := parseRows(t, rows)
	m, err := dungeon.NewFromCells(w, h, cells, opts...)
	require.NoError(t, err)

	return m
}

// crossMap is the reference fixture: a base at the center of a 3×3 grid
// with leaf rooms to the west, east, and south, the southern one a
// critical endpoint.
//
//	░░░
//	╶■╴
//	░╵░
func crossMap(t testing.TB) *dungeon.Map {
	t.Helper()

	return mustMap(t,
		[]string{
			"---",
			"E.W",
			"-N-",
		},
		dungeon.WithBase(grid.Point{X: 1, Y: 1}),
		dungeon.WithBoss(grid.Point{X: 1, Y: 1}),
		dungeon.WithCritEndpoints(grid.Point{X: 1, Y: 2}),
	)
}

// combMap builds a width×height comb tree: the top row is a west-linked
// spine hanging every column below it. Useful for metric checks at size.
func combMap(t testing.TB, width, height int) *dungeon.Map {
	t.Helper()
	cells := make([]grid.Direction, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x == 0 && y == 0:
				cells[0] = grid.None
			case y == 0:
				cells[x] = grid.West
			default:
				cells[y*width+x] = grid.North
			}
		}
	}
	m, err := dungeon.NewFromCells(width, height, cells)
	require.NoError(t, err)

	return m
}
