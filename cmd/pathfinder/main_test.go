package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const corridor = "1:4:\n0:0:\n2:0:0:3:\n0"

const walled = "1:3:\n0:0:\n2:1:3:\n0"

func init() {
	logger = zap.NewNop()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, formatYAML, detectFormat("a/maze.yaml", formatAuto))
	require.Equal(t, formatYAML, detectFormat("maze.YML", ""))
	require.Equal(t, formatText, detectFormat("maze.txt", formatAuto))
	require.Equal(t, formatText, detectFormat("maze", formatAuto))
	require.Equal(t, formatText, detectFormat("maze.yaml", formatText))
}

func TestRunSolve_Corridor(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)
	var out, errOut bytes.Buffer

	err := runSolve(context.Background(), p, solveOptions{format: formatAuto}, &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, "(0,0)\n(0,1)\n(0,2)\n(0,3)\nlength: 4\n", out.String())
	require.Empty(t, errOut.String())
}

func TestRunSolve_Mark(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)
	var out bytes.Buffer

	err := runSolve(context.Background(), p, solveOptions{mark: true}, &out, &bytes.Buffer{})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out.String(), "1:4:\n0:0:\n2:5:5:3:\n0\n"), out.String())
}

func TestRunSolve_RenderAndTrace(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)
	var out, errOut bytes.Buffer

	err := runSolve(context.Background(), p, solveOptions{draw: true, trace: true}, &out, &errOut)
	require.NoError(t, err)
	require.Contains(t, out.String(), "S * * E")
	require.Contains(t, errOut.String(), "step 0: 1 route(s)")
}

func TestRunSolve_NoSolution(t *testing.T) {
	p := writeFile(t, "walled.txt", walled)
	var out bytes.Buffer

	err := runSolve(context.Background(), p, solveOptions{}, &out, &bytes.Buffer{})
	require.True(t, errors.Is(err, errNoSolution))
	require.Contains(t, err.Error(), "frontier exhausted")
	require.Empty(t, out.String())
}

func TestRunSolve_StepLimit(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)

	err := runSolve(context.Background(), p, solveOptions{maxSteps: 1}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, errNoSolution)
	require.Contains(t, err.Error(), "step limit reached")
}

func TestRunSolve_Cancelled(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runSolve(ctx, p, solveOptions{}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunSolve_MissingFile(t *testing.T) {
	err := runSolve(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), solveOptions{}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunDecodeEncode_RoundTrip(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)

	var doc bytes.Buffer
	require.NoError(t, runDecode(p, formatAuto, &doc))
	require.Contains(t, doc.String(), "shape: [1, 4]")
	require.Contains(t, doc.String(), "no_ban: false")

	y := writeFile(t, "corridor.yaml", doc.String())
	var text bytes.Buffer
	require.NoError(t, runEncode(y, formatAuto, &text))
	require.Equal(t, corridor+"\n", text.String())
}

func TestRunRender(t *testing.T) {
	p := writeFile(t, "corridor.txt", corridor)
	var out bytes.Buffer

	require.NoError(t, runRender(p, formatText, &out))
	require.Contains(t, out.String(), "S . . E")
}
