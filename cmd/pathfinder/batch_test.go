package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBatch_Mixed(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, "ok.txt", corridor)
	blocked := writeFile(t, "blocked.txt", walled)
	missing := filepath.Join(dir, "missing.txt")

	var out bytes.Buffer
	err := runBatch(context.Background(), []string{ok, blocked, missing}, formatAuto, 0, 2, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 3 file(s)")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, ok+": length 4 in 3 step(s)", lines[0])
	require.Equal(t, blocked+": no solution (frontier exhausted) after 1 step(s)", lines[1])
	require.True(t, strings.HasPrefix(lines[2], missing+": error: read puzzle:"), lines[2])
}

func TestRunBatch_AllSolved(t *testing.T) {
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = writeFile(t, "c.txt", corridor)
	}
	var out bytes.Buffer
	require.NoError(t, runBatch(context.Background(), paths, formatText, 0, 0, &out))
	require.Equal(t, len(paths), strings.Count(out.String(), "length 4"))
}

func TestRunBatch_Unsolved(t *testing.T) {
	p := writeFile(t, "c.txt", corridor)
	err := runBatch(context.Background(), []string{p}, formatAuto, 1, 1, &bytes.Buffer{})
	require.ErrorIs(t, err, errNoSolution)
}

func TestRunBatch_Cancelled(t *testing.T) {
	p := writeFile(t, "c.txt", corridor)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runBatch(ctx, []string{p, p}, formatAuto, 0, 1, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}
