package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/codec"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

const (
	formatAuto = "auto"
	formatText = "text"
	formatYAML = "yaml"
)

// detectFormat resolves "auto" from the file extension.
func detectFormat(path, format string) string {
	if format != "" && format != formatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatText
}

// loadPuzzle reads and decodes a labyrinth file.
func loadPuzzle(path, format string) (*grid.Grid, law.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, law.Table{}, fmt.Errorf("read puzzle: %w", err)
	}
	f := detectFormat(path, format)
	logger.Debug("loading puzzle", zap.String("path", path), zap.String("format", f), zap.Int("bytes", len(data)))

	var (
		g *grid.Grid
		t law.Table
	)
	switch f {
	case formatYAML:
		g, t, err = codec.DecodeYAML(data)
	case formatText:
		g, t, err = codec.Decode(string(data))
	default:
		return nil, law.Table{}, fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, law.Table{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return g, t, nil
}
