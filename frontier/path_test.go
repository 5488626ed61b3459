package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/frontier"
	"github.com/katalvlaran/pathfinder/grid"
)

// TestPath_ExtendSharesPrefix ensures branching leaves the parent intact.
func TestPath_ExtendSharesPrefix(t *testing.T) {
	root := frontier.NewPath(grid.Coord{0, 0})
	a := root.Extend(grid.Coord{0, 1})
	b := root.Extend(grid.Coord{1, 0})

	require.Equal(t, 1, root.Len())
	require.Equal(t, []grid.Coord{{0, 0}, {0, 1}}, a.Coords())
	require.Equal(t, []grid.Coord{{0, 0}, {1, 0}}, b.Coords())
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(frontier.NewPath(grid.Coord{0, 0}, grid.Coord{0, 1})))
}

// TestPath_CopiesCoordinates ensures callers cannot mutate stored history.
func TestPath_CopiesCoordinates(t *testing.T) {
	c := grid.Coord{3, 4}
	p := frontier.NewPath(c)
	c[0] = 99
	require.Equal(t, grid.Coord{3, 4}, p.Last())

	last := p.Last()
	last[1] = 99
	require.Equal(t, grid.Coord{3, 4}, p.Last())

	coords := p.Coords()
	coords[0][0] = 7
	require.Equal(t, grid.Coord{3, 4}, p.Last())
}

// TestPath_Accessors covers At, IsZero and String.
func TestPath_Accessors(t *testing.T) {
	var empty frontier.Path
	require.True(t, empty.IsZero())
	require.Nil(t, empty.Last())
	require.Empty(t, empty.Coords())
	_, ok := empty.At(0)
	require.False(t, ok)

	p := frontier.NewPath(grid.Coord{0, 0}, grid.Coord{0, 1}, grid.Coord{1, 1})
	c, ok := p.At(1)
	require.True(t, ok)
	require.Equal(t, grid.Coord{0, 1}, c)
	_, ok = p.At(3)
	require.False(t, ok)
	require.Equal(t, "(0,0) -> (0,1) -> (1,1)", p.String())

	f := frontier.Frontier{p, empty, frontier.NewPath(grid.Coord{2, 2})}
	require.Equal(t, []grid.Coord{{1, 1}, {2, 2}}, f.Heads())
}
