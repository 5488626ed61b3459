package codec_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/codec"
	"github.com/katalvlaran/pathfinder/law"
	"github.com/katalvlaran/pathfinder/resolve"
)

// ExampleDecode loads a puzzle from its text form, solves it, and saves the
// solved grid back.
func ExampleDecode() {
	text := "2:3:\n0:0:\n2:0:1:1:0:3:\n0"
	g, laws, err := codec.Decode(text)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := resolve.Resolve(g, laws)
	fmt.Println(res.Path)
	_ = res.Grid.MarkSolution(res.Coords())
	fmt.Printf("%q\n", codec.Encode(res.Grid, law.Table{}))
	// Output:
	// (0,0) -> (0,1) -> (1,1) -> (1,2)
	// "2:3:\n0:0:\n2:5:1:1:5:3:\n0"
}
