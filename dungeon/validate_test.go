package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonmap/dungeon"
	"github.com/katalvlaran/dungeonmap/grid"
)

// TestValidate_Accepts verifies well-formed grids pass, including larger
// memoized chains.
func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, crossMap(t).Validate())
	assert.NoError(t, combMap(t, 6, 5).Validate())

	fresh, err := dungeon.New(3, 3)
	require.NoError(t, err)
	assert.NoError(t, fresh.Validate())
}

// TestValidate_Rejects covers the malformation taxonomy: mislabeled base,
// cycles, links off the grid, and dangling links onto non-rooms.
func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		cells []grid.Direction
		w, h  int
	}{
		// Base cell stores a direction instead of None.
		{"BaseStoresLink", []grid.Direction{grid.East, grid.West, grid.West}, 3, 1},
		// Two cells point at each other.
		{"Cycle", []grid.Direction{grid.None, grid.East, grid.West}, 3, 1},
		// A link leaving the grid.
		{"LinkOffGrid", []grid.Direction{grid.None, grid.North, grid.West}, 3, 1},
		// A link onto a gap.
		{"DanglingOntoGap", []grid.Direction{grid.None, grid.Gap, grid.West}, 3, 1},
		// A room disconnected from the base: its chain ends in a bare cell.
		{"DanglingOntoBare", []grid.Direction{grid.None, grid.Gap, grid.None, grid.West}, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dungeon.NewFromCells(tc.w, tc.h, tc.cells)
			assert.ErrorIs(t, err, dungeon.ErrMalformedGrid)

			// WithoutValidation admits the grid; Validate still rejects it.
			m, err := dungeon.NewFromCells(tc.w, tc.h, tc.cells, dungeon.WithoutValidation())
			require.NoError(t, err)
			assert.ErrorIs(t, m.Validate(), dungeon.ErrMalformedGrid)
		})
	}
}

// TestValidate_EndpointContract verifies that non-room endpoints are
// rejected at construction even when the structural check is skipped.
func TestValidate_EndpointContract(t *testing.T) {
	cells := []grid.Direction{grid.None, grid.West, grid.Gap}
	_, err := dungeon.NewFromCells(3, 1, cells,
		dungeon.WithCritEndpoints(grid.Point{X: 2, Y: 0}),
		dungeon.WithoutValidation(),
	)
	assert.ErrorIs(t, err, dungeon.ErrNotARoom)
}
