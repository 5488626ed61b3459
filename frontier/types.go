package frontier

import (
	"errors"
	"strings"

	"github.com/katalvlaran/pathfinder/grid"
)

// Sentinel errors for frontier expansion.
var (
	// ErrNilGrid is returned when Step is given a nil grid.
	ErrNilGrid = errors.New("frontier: grid is nil")
	// ErrStep is returned when a Path cannot be expanded against the grid.
	ErrStep = errors.New("frontier: step failed")
)

// node is one link of a Path; links are shared between branches.
type node struct {
	coord grid.Coord
	prev  *node
	n     int
}

// Path is an append-only sequence of coordinates from an origin.
// The zero value is the empty Path. Paths are values: Extend returns a new
// Path and leaves the receiver untouched.
type Path struct {
	tail *node
}

// NewPath builds a Path from coordinates in order. Each one is copied.
func NewPath(coords ...grid.Coord) Path {
	var p Path
	for _, c := range coords {
		p = p.Extend(c)
	}
	return p
}

// Len returns the number of coordinates.
func (p Path) Len() int {
	if p.tail == nil {
		return 0
	}
	return p.tail.n
}

// IsZero reports whether p is empty.
func (p Path) IsZero() bool { return p.tail == nil }

// Last returns a copy of the final coordinate, or nil for an empty Path.
func (p Path) Last() grid.Coord {
	if p.tail == nil {
		return nil
	}
	return p.tail.coord.Clone()
}

// Extend returns p with c appended. c is copied.
// Complexity: O(D).
func (p Path) Extend(c grid.Coord) Path {
	return Path{tail: &node{coord: c.Clone(), prev: p.tail, n: p.Len() + 1}}
}

// At returns a copy of the i-th coordinate (0 = origin).
// Complexity: O(Len-i).
func (p Path) At(i int) (grid.Coord, bool) {
	if i < 0 || i >= p.Len() {
		return nil, false
	}
	cur := p.tail
	for k := p.Len() - 1; k > i; k-- {
		cur = cur.prev
	}
	return cur.coord.Clone(), true
}

// Coords returns copies of all coordinates, origin first.
func (p Path) Coords() []grid.Coord {
	out := make([]grid.Coord, p.Len())
	for cur, i := p.tail, p.Len()-1; cur != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.coord.Clone()
	}
	return out
}

// Equal reports whether p and o visit the same coordinates in order.
func (p Path) Equal(o Path) bool {
	if p.Len() != o.Len() {
		return false
	}
	for a, b := p.tail, o.tail; a != nil; a, b = a.prev, b.prev {
		if a == b {
			return true
		}
		if !a.coord.Equal(b.coord) {
			return false
		}
	}
	return true
}

// String formats p as "(0,0) -> (0,1) -> ...".
func (p Path) String() string {
	parts := make([]string, 0, p.Len())
	for _, c := range p.Coords() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " -> ")
}

// Frontier is the ordered set of Paths alive at one depth.
type Frontier []Path

// Heads returns copies of the last coordinate of every Path.
func (f Frontier) Heads() []grid.Coord {
	out := make([]grid.Coord, 0, len(f))
	for _, p := range f {
		if !p.IsZero() {
			out = append(out, p.Last())
		}
	}
	return out
}

// StepResult is the outcome of one expansion.
//   - Found: Solution holds the winning Path (its last cell is End); Next is nil.
//   - otherwise: Next is the following Frontier, possibly empty.
type StepResult struct {
	Solution Path
	Found    bool
	Next     Frontier

	// Claimed counts cells pushed into Next.
	Claimed int
	// Dropped counts Paths that dead-ended in this step.
	Dropped int
}
