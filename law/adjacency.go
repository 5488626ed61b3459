package law

import "github.com/katalvlaran/pathfinder/grid"

// Adjacent returns the candidate next coordinates of center under t,
// without any bounds check.
//
// Behavior:
//  1. Every JumpForward/JumpBackward dimension shifts the center by +1/-1 and
//     is treated as Blocked for the rest of the call.
//  2. Unless force is true, the (jump-adjusted) center is the first candidate.
//     It stands for waiting in place along the non-jump dimensions.
//  3. For each dimension in order: Forward adds +1, Backward adds -1,
//     Free adds -1 then +1, Blocked adds nothing.
//
// center itself is never modified.
// Complexity: O(D²) for D dimensions.
func Adjacent(center grid.Coord, t Table, force bool) []grid.Coord {
	c := center.Clone()
	effective := make([]Law, len(c))
	for d := range c {
		switch l := t.Law(d + 1); l {
		case JumpForward:
			c[d]++
			effective[d] = Blocked
		case JumpBackward:
			c[d]--
			effective[d] = Blocked
		default:
			effective[d] = l
		}
	}

	out := make([]grid.Coord, 0, 2*len(c)+1)
	if !force {
		out = append(out, c)
	}
	shifted := func(d, delta int) grid.Coord {
		n := c.Clone()
		n[d] += delta
		return n
	}
	for d, l := range effective {
		switch l {
		case Blocked:
		case Forward:
			out = append(out, shifted(d, +1))
		case Backward:
			out = append(out, shifted(d, -1))
		default:
			out = append(out, shifted(d, -1), shifted(d, +1))
		}
	}
	return out
}

// Neighbors returns Adjacent(center, t, false) restricted to coordinates
// inside g, preserving order.
func Neighbors(center grid.Coord, g *grid.Grid, t Table) []grid.Coord {
	cand := Adjacent(center, t, false)
	out := cand[:0]
	for _, c := range cand {
		if g.Legal(c) {
			out = append(out, c)
		}
	}
	return out
}
