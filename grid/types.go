// Package grid defines cell codes, coordinates, shapes and sentinel errors
// for the N-dimensional labyrinth grid.
package grid

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyShape indicates a shape with no dimensions or an empty nested level.
	ErrEmptyShape = errors.New("grid: shape must have at least one dimension")
	// ErrBadExtent indicates a non-positive extent.
	ErrBadExtent = errors.New("grid: extents must be positive")
	// ErrSizeMismatch indicates the cell count does not match the shape.
	ErrSizeMismatch = errors.New("grid: cell count does not match shape")
	// ErrLeafGrid indicates a bare leaf was passed where a nested grid was expected.
	ErrLeafGrid = errors.New("grid: nested grid is a bare leaf")
	// ErrNonRectangular indicates siblings of differing extents in a nested grid.
	ErrNonRectangular = errors.New("grid: all siblings at a depth must share the same extent")
	// ErrBadLeaf indicates a nested leaf that is not an integer.
	ErrBadLeaf = errors.New("grid: nested leaf is not an integer")
	// ErrOutOfRange indicates a coordinate or linear index outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrDimensionMismatch indicates incompatible shapes or coordinate lengths.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// Cell is the integer code stored at every leaf of a labyrinth.
type Cell int

const (
	// Path is a free, traversable cell.
	Path Cell = iota
	// Wall is never traversed.
	Wall
	// Start is the origin; only the first one in row-major order is used.
	Start
	// End is a goal; several are allowed.
	End
	// Banned marks a free cell already claimed by some route.
	Banned
	// Solution marks cells on a found route (see Grid.MarkSolution).
	Solution
)

var cellNames = [...]string{"path", "wall", "start", "end", "banned", "solution"}

// Valid reports whether c is one of the known cell codes.
func (c Cell) Valid() bool { return c >= Path && c <= Solution }

// String returns the lower-case cell name, or the decimal code if unknown.
func (c Cell) String() string {
	if c.Valid() {
		return cellNames[c]
	}
	return strconv.Itoa(int(c))
}

// Coord is a position in grid-index order, one component per dimension.
type Coord []int

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// Equal reports whether c and o have the same components.
func (c Coord) Equal(o Coord) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// String formats c as a tuple, e.g. "(0,1,2)".
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Shape lists the extent of every dimension, outermost first.
type Shape []int

// Dimensions returns the number of dimensions.
func (s Shape) Dimensions() int { return len(s) }

// Size returns the product of all extents (0 for an empty shape).
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}
	return n
}

// Legal reports whether every component of c lies in [0, extent) of the
// corresponding dimension. Dimensions are checked in order and the check stops
// at the first violation. A coordinate of the wrong length is never legal.
func (s Shape) Legal(c Coord) bool {
	if len(c) != len(s) {
		return false
	}
	for d, x := range c {
		if x < 0 || x >= s[d] {
			return false
		}
	}
	return true
}

// Equal reports whether s and o describe the same extents.
func (s Shape) Equal(o Shape) bool {
	return Coord(s).Equal(Coord(o))
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return Shape(Coord(s).Clone())
}

// validate checks that s has at least one dimension and only positive extents.
func (s Shape) validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	for d, e := range s {
		if e <= 0 {
			return fmtExtent(d, e)
		}
	}
	return nil
}

// strides returns row-major strides: the last dimension has stride 1.
func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for d := len(s) - 1; d >= 0; d-- {
		st[d] = acc
		acc *= s[d]
	}
	return st
}
