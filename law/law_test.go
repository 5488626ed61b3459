package law_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// TestTable_Defaults verifies absent dimensions are Free and the zero table works.
func TestTable_Defaults(t *testing.T) {
	var tbl law.Table
	require.Equal(t, law.Free, tbl.Law(1))
	require.Equal(t, law.Free, tbl.Law(42))
	require.False(t, tbl.NoBan)
	require.Equal(t, []law.Law{law.Free, law.Free}, tbl.Laws(2))
	require.Empty(t, tbl.Dimensions())
}

// TestTable_Set covers assignment and validation.
func TestTable_Set(t *testing.T) {
	tbl, err := law.NewTable(law.WithLaw(2, law.Blocked), law.WithLaw(4, law.Forward), law.WithNoBan(true))
	require.NoError(t, err)
	require.Equal(t, []law.Law{law.Free, law.Blocked, law.Free, law.Forward}, tbl.Laws(4))
	require.Equal(t, []int{2, 4}, tbl.Dimensions())
	require.True(t, tbl.NoBan)

	require.ErrorIs(t, tbl.Set(0, law.Free), law.ErrBadDimension)
	require.ErrorIs(t, tbl.Set(1, law.Law(9)), law.ErrUnknownLaw)

	_, err = law.NewTable(law.WithLaw(-1, law.Free))
	require.ErrorIs(t, err, law.ErrBadDimension)
}

// TestTable_CloneEqual checks deep copies and the Free-equals-absent rule.
func TestTable_CloneEqual(t *testing.T) {
	a, _ := law.NewTable(law.WithLaw(1, law.JumpForward))
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(1, law.Backward))
	require.Equal(t, law.JumpForward, a.Law(1), "clone must not alias")
	require.False(t, a.Equal(b))

	explicit, _ := law.NewTable(law.WithLaw(3, law.Free))
	require.True(t, explicit.Equal(law.Table{}))

	noBan := law.Table{NoBan: true}
	require.False(t, noBan.Equal(law.Table{}))
}

// TestLaw_Names round-trips names through Parse.
func TestLaw_Names(t *testing.T) {
	for l := law.Free; l <= law.JumpBackward; l++ {
		got, err := law.Parse(l.String())
		require.NoError(t, err)
		require.Equal(t, l, got)
	}
	_, err := law.Parse("sideways")
	require.ErrorIs(t, err, law.ErrUnknownLaw)
	require.Equal(t, "7", law.Law(7).String())
}

// TestAdjacent_Free mirrors the classic five-candidate neighborhood.
func TestAdjacent_Free(t *testing.T) {
	got := law.Adjacent(grid.Coord{2, 10}, law.Table{}, false)
	want := []grid.Coord{{2, 10}, {1, 10}, {3, 10}, {2, 9}, {2, 11}}
	require.Equal(t, want, got)

	got = law.Adjacent(grid.Coord{2, 10}, law.Table{}, true)
	require.Equal(t, want[1:], got)
}

// TestAdjacent_Directional covers Blocked, Forward and Backward.
func TestAdjacent_Directional(t *testing.T) {
	tbl, _ := law.NewTable(law.WithLaw(1, law.Blocked))
	require.Equal(t, []grid.Coord{{2, 9}, {2, 11}}, law.Adjacent(grid.Coord{2, 10}, tbl, true))

	tbl, _ = law.NewTable(law.WithLaw(1, law.Forward), law.WithLaw(2, law.Backward))
	require.Equal(t, []grid.Coord{{3, 10}, {2, 9}}, law.Adjacent(grid.Coord{2, 10}, tbl, true))
}

// TestAdjacent_Jump verifies the jump pre-step shifts every candidate by
// exactly one along the jump dimension and never moves it further.
func TestAdjacent_Jump(t *testing.T) {
	center := grid.Coord{5, 1, 1}
	tbl, _ := law.NewTable(law.WithLaw(1, law.JumpForward))
	got := law.Adjacent(center, tbl, false)
	require.Len(t, got, 5) // center + 2 free dimensions × 2
	for _, c := range got {
		require.Equal(t, 6, c[0], "candidate %v", c)
	}
	require.Equal(t, grid.Coord{5, 1, 1}, center, "input must not be mutated")

	tbl, _ = law.NewTable(law.WithLaw(2, law.JumpBackward), law.WithLaw(1, law.Blocked), law.WithLaw(3, law.Blocked))
	got = law.Adjacent(center, tbl, false)
	require.Equal(t, []grid.Coord{{5, 0, 1}}, got)

	// force drops the landed center too
	require.Empty(t, law.Adjacent(center, tbl, true))
}

// TestNeighbors_Filter drops out-of-grid candidates in order.
func TestNeighbors_Filter(t *testing.T) {
	g, err := grid.Filled(grid.Shape{2, 2}, grid.Path)
	require.NoError(t, err)

	got := law.Neighbors(grid.Coord{1, 0}, g, law.Table{})
	require.Equal(t, []grid.Coord{{1, 0}, {0, 0}, {1, 1}}, got)

	tbl, _ := law.NewTable(law.WithLaw(1, law.Forward))
	got = law.Neighbors(grid.Coord{1, 0}, g, tbl)
	require.Equal(t, []grid.Coord{{1, 0}, {1, 1}}, got)

	// a jump off the edge leaves nothing legal
	tbl, _ = law.NewTable(law.WithLaw(1, law.JumpForward))
	require.Empty(t, law.Neighbors(grid.Coord{1, 0}, g, tbl))
}
