package frontier

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// Step expands every Path of f by one coordinate on g under t.
//
// Behavior:
//  1. For each Path in order, compute law.Neighbors of its last coordinate
//     and read their cells.
//  2. If any neighbor is End, return the Path extended by the first such
//     neighbor with Found=true. Remaining Paths are not scanned.
//  3. Otherwise each neighbor holding Path becomes a new branch in Next and,
//     unless t.NoBan, is rewritten to Banned in g immediately.
//  4. Paths without a free or End neighbor are dropped.
//
// g is mutated in place. Empty Paths in f are skipped.
// Complexity: O(|f|·D²).
func Step(f Frontier, g *grid.Grid, t law.Table) (StepResult, error) {
	if g == nil {
		return StepResult{}, ErrNilGrid
	}
	res := StepResult{Next: make(Frontier, 0, len(f))}

	for _, p := range f {
		if p.tail == nil {
			continue
		}
		dirs := law.Neighbors(p.tail.coord, g, t)
		cells, err := g.Cells(dirs)
		if err != nil {
			return StepResult{}, fmt.Errorf("%w: expanding %v: %v", ErrStep, p.tail.coord, err)
		}

		for k, v := range cells {
			if v == grid.End {
				return StepResult{Solution: p.Extend(dirs[k]), Found: true}, nil
			}
		}

		pushed := 0
		for k, v := range cells {
			if v != grid.Path {
				continue
			}
			res.Next = append(res.Next, p.Extend(dirs[k]))
			pushed++
			if !t.NoBan {
				if err := g.Ban(dirs[k]); err != nil {
					return StepResult{}, fmt.Errorf("%w: banning %v: %v", ErrStep, dirs[k], err)
				}
			}
		}
		if pushed == 0 {
			res.Dropped++
		}
		res.Claimed += pushed
	}

	return res, nil
}
