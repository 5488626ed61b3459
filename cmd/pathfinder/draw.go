package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/render"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Draw a labyrinth as 2-D planes",
	Long: `Draws the labyrinth in FILE as one framed plane per combination of the
leading coordinates; the last two dimensions are the rows and columns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(args[0], cfg.Format, cmd.OutOrStdout())
	},
}

func runRender(path, format string, out io.Writer) error {
	g, _, err := loadPuzzle(path, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render.New(out).Grid(g))
	return nil
}
