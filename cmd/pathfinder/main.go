// Command pathfinder solves, converts and draws N-dimensional labyrinths
// stored in the four-line text form or the YAML document form.
//
//	pathfinder solve maze.txt --render
//	pathfinder solve timetravel.yaml --trace --max-steps 500
//	pathfinder batch -j 8 puzzles/*.txt
//	pathfinder encode maze.yaml > maze.txt
//	pathfinder decode maze.txt > maze.yaml
//	pathfinder render maze.txt
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNoSolution) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
