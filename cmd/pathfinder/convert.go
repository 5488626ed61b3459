package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/codec"
)

var encodeCmd = &cobra.Command{
	Use:   "encode FILE",
	Short: "Convert a labyrinth to the four-line text form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(args[0], cfg.Format, cmd.OutOrStdout())
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Convert a labyrinth to a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(args[0], cfg.Format, cmd.OutOrStdout())
	},
}

func runEncode(path, format string, out io.Writer) error {
	g, t, err := loadPuzzle(path, format)
	if err != nil {
		return err
	}
	if err := codec.Write(out, g, t); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = fmt.Fprintln(out)
	return err
}

func runDecode(path, format string, out io.Writer) error {
	g, t, err := loadPuzzle(path, format)
	if err != nil {
		return err
	}
	data, err := codec.EncodeYAML(g, t)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	_, err = out.Write(data)
	return err
}
