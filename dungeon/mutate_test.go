package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonmap/dungeon"
	"github.com/katalvlaran/dungeonmap/grid"
)

// TestAddCritEndpoint verifies the rooms-only contract.
func TestAddCritEndpoint(t *testing.T) {
	m := crossMap(t)

	require.NoError(t, m.AddCritEndpoint(grid.Point{X: 2, Y: 1}))
	assert.True(t, m.HasCritEndpoint(grid.Point{X: 2, Y: 1}))

	assert.ErrorIs(t, m.AddCritEndpoint(grid.Point{X: 0, Y: 0}), dungeon.ErrNotARoom)
	assert.ErrorIs(t, m.AddCritEndpoint(grid.Point{X: 5, Y: 5}), dungeon.ErrNotARoom)
}

// TestBacktrackCritEndpoint verifies the one-step shift toward the base
// and the explicit rejection of absent points.
func TestBacktrackCritEndpoint(t *testing.T) {
	m := mustMap(t,
		[]string{".WW"},
		dungeon.WithCritEndpoints(grid.Point{X: 2, Y: 0}),
	)

	require.NoError(t, m.BacktrackCritEndpoint(grid.Point{X: 2, Y: 0}))
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}}, m.CritEndpoints())

	require.NoError(t, m.BacktrackCritEndpoint(grid.Point{X: 1, Y: 0}))
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}}, m.CritEndpoints(), "requirement reaches the base")

	// A base endpoint is consumed outright.
	require.NoError(t, m.BacktrackCritEndpoint(grid.Point{X: 0, Y: 0}))
	assert.Empty(t, m.CritEndpoints())

	assert.ErrorIs(t, m.BacktrackCritEndpoint(grid.Point{X: 2, Y: 0}), dungeon.ErrNotEndpoint)
}

// TestRemoveDeadEnd_Leaf verifies leaf pruning: room count drops by one and
// the cell becomes a gap.
func TestRemoveDeadEnd_Leaf(t *testing.T) {
	m := crossMap(t)
	west := grid.Point{X: 0, Y: 1}

	require.NoError(t, m.RemoveDeadEnd(west))
	assert.Equal(t, 3, m.RoomCount())
	d, err := m.At(west)
	require.NoError(t, err)
	assert.Equal(t, grid.Gap, d)

	// Non-leaves are rejected.
	assert.ErrorIs(t, m.RemoveDeadEnd(m.Base()), dungeon.ErrNotDeadEnd)
	// So are gaps.
	assert.ErrorIs(t, m.RemoveDeadEnd(west), dungeon.ErrNotDeadEnd)
}

// TestRemoveDeadEnd_Endpoint verifies the critical requirement moving one
// level up when its endpoint is pruned.
func TestRemoveDeadEnd_Endpoint(t *testing.T) {
	m := crossMap(t)
	south := grid.Point{X: 1, Y: 2}

	require.NoError(t, m.RemoveDeadEnd(south))
	assert.False(t, m.HasCritEndpoint(south))
	assert.True(t, m.HasCritEndpoint(m.Base()), "requirement moved to the parent")
}

// TestRemoveDeadEnd_BaseHandoff verifies pruning the base: its single
// child takes over as root with its link cleared.
func TestRemoveDeadEnd_BaseHandoff(t *testing.T) {
	m := mustMap(t,
		[]string{".WW"},
		dungeon.WithCritEndpoints(grid.Point{X: 1, Y: 0}),
	)
	oldBase := m.Base()
	child := grid.Point{X: 1, Y: 0}

	require.NoError(t, m.RemoveDeadEnd(oldBase))
	assert.Equal(t, child, m.Base())
	d, err := m.At(child)
	require.NoError(t, err)
	assert.Equal(t, grid.None, d, "new base stores no link")
	d, err = m.At(oldBase)
	require.NoError(t, err)
	assert.Equal(t, grid.Gap, d)
	assert.False(t, m.HasCritEndpoint(child), "endpoint on the new base is dropped")
	require.NoError(t, m.Validate())

	// A base with two children cannot be pruned.
	cross := crossMap(t)
	assert.ErrorIs(t, cross.RemoveDeadEnd(cross.Base()), dungeon.ErrNotDeadEnd)
}

// TestRebase verifies in-place re-rooting on the cross fixture.
func TestRebase(t *testing.T) {
	m := crossMap(t)
	south := grid.Point{X: 1, Y: 2}

	require.NoError(t, m.Rebase(south))
	assert.Equal(t, south, m.Base())
	d, err := m.At(south)
	require.NoError(t, err)
	assert.Equal(t, grid.None, d)

	// The old base now links south; the leaves still link toward it.
	d, err = m.At(grid.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.South, d)
	require.NoError(t, m.Validate())

	dist, err := m.DistanceToBase(grid.Point{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, dist)

	// Rebasing to the current base is a no-op; to a gap, an error.
	require.NoError(t, m.Rebase(south))
	assert.ErrorIs(t, m.Rebase(grid.Point{X: 0, Y: 0}), dungeon.ErrNotARoom)
}

// TestRebase_RoundTrip verifies that re-rooting anywhere and back restores
// the stored grid exactly, for every room of a non-trivial tree.
func TestRebase_RoundTrip(t *testing.T) {
	m := combMap(t, 4, 3)
	original := m.Cells()
	base := m.Base()

	for _, x := range m.Rooms() {
		cp := m.Clone()
		require.NoError(t, cp.Rebase(x))
		require.NoError(t, cp.Validate(), "rebased at %s", x)
		require.NoError(t, cp.Rebase(base))
		assert.Equal(t, original, cp.Cells(), "round trip through %s", x)
		assert.Equal(t, base, cp.Base())
	}
}

// TestScenario_CrossGrid walks the reference scenario end to end: counts,
// dead-end classification, diameter, pruning, and re-rooting.
func TestScenario_CrossGrid(t *testing.T) {
	m := crossMap(t)
	west := grid.Point{X: 0, Y: 1}
	south := grid.Point{X: 1, Y: 2}
	east := grid.Point{X: 2, Y: 1}

	assert.Equal(t, 4, m.RoomCount())
	assert.True(t, m.IsDeadEnd(west))
	assert.True(t, m.IsBonusDeadEnd(west))
	assert.False(t, m.IsBonusDeadEnd(south))

	diam, err := m.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 2, diam, "west to east via the base")

	require.NoError(t, m.RemoveDeadEnd(west))
	assert.Equal(t, 3, m.RoomCount())
	d, err := m.At(west)
	require.NoError(t, err)
	assert.Equal(t, grid.Gap, d)

	require.NoError(t, m.Rebase(south))
	assert.Equal(t, south, m.Base())
	dist, err := m.DistanceToBase(east)
	require.NoError(t, err)
	assert.Equal(t, 2, dist)
}
