package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/codec"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// TestYAML_RoundTrip verifies DecodeYAML(EncodeYAML(g, t)) == (g, t).
func TestYAML_RoundTrip(t *testing.T) {
	g := build(t, [][][]int{{{2, 0}, {1, 0}}, {{0, 0}, {1, 3}}})
	tbl, _ := law.NewTable(law.WithLaw(1, law.JumpForward), law.WithNoBan(true))

	data, err := codec.EncodeYAML(g, tbl)
	require.NoError(t, err)
	require.Contains(t, string(data), "jump_forward")

	g2, tbl2, err := codec.DecodeYAML(data)
	require.NoError(t, err)
	require.True(t, g.Equal(g2))
	require.True(t, tbl.Equal(tbl2))
}

// TestYAML_HandWritten parses the documented layout.
func TestYAML_HandWritten(t *testing.T) {
	doc := `
shape: [2, 3]
laws: {2: blocked}
no_ban: false
cells:
  - [2, 0, 1]
  - [1, 0, 3]
`
	g, tbl, err := codec.DecodeYAML([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, grid.Shape{2, 3}, g.Shape())
	require.Equal(t, law.Blocked, tbl.Law(2))
	require.Equal(t, law.Free, tbl.Law(1))

	// the text form of the same labyrinth
	require.Equal(t, "2:3:\n0:1:\n2:0:1:1:0:3:\n0", codec.Encode(g, tbl))
}

// TestYAML_Errors covers shape mismatch, bad laws and bad syntax.
func TestYAML_Errors(t *testing.T) {
	bad := []string{
		"shape: [3]\ncells: [2, 3]\n",
		"laws: {1: sideways}\ncells: [2, 3]\n",
		"laws: {0: free}\ncells: [2, 3]\n",
		"cells: 7\n",
		"cells: [[2, 3], [0]]\n",
		"shape: [\n",
	}
	for _, in := range bad {
		_, _, err := codec.DecodeYAML([]byte(in))
		require.ErrorIs(t, err, codec.ErrMalformed, "input %q", in)
	}
}
