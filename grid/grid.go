package grid

import "fmt"

// Grid is an N-dimensional labyrinth stored as a flat row-major buffer.
// The shape is fixed at construction; cells may be mutated in place through
// Set, Ban and MarkSolution. A Grid is not safe for concurrent mutation.
type Grid struct {
	shape   Shape
	strides []int
	cells   []Cell
}

func fmtExtent(d, e int) error {
	return fmt.Errorf("%w: dimension %d has extent %d", ErrBadExtent, d+1, e)
}

// New builds a Grid of the given shape from row-major cells.
// Both inputs are copied. Returns ErrEmptyShape, ErrBadExtent or
// ErrSizeMismatch on invalid input.
// Complexity: O(K) time and memory.
func New(shape Shape, cells []Cell) (*Grid, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(cells) != shape.Size() {
		return nil, fmt.Errorf("%w: shape %v needs %d cells, got %d",
			ErrSizeMismatch, []int(shape), shape.Size(), len(cells))
	}
	buf := make([]Cell, len(cells))
	copy(buf, cells)

	return &Grid{
		shape:   shape.Clone(),
		strides: shape.strides(),
		cells:   buf,
	}, nil
}

// Filled builds a Grid of the given shape with every cell set to v.
func Filled(shape Shape, v Cell) (*Grid, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	cells := make([]Cell, shape.Size())
	for i := range cells {
		cells[i] = v
	}

	return New(shape, cells)
}

// Unflatten is the inverse of Flatten: it gives the row-major values the
// requested shape. Unflatten(g.Flatten(), g.Shape()) equals g.
func Unflatten(values []Cell, shape Shape) (*Grid, error) {
	return New(shape, values)
}

// Dimensions returns the number of dimensions.
func (g *Grid) Dimensions() int { return len(g.shape) }

// Shape returns a copy of the grid's extents.
func (g *Grid) Shape() Shape { return g.shape.Clone() }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Legal reports whether c addresses a cell of g.
func (g *Grid) Legal(c Coord) bool { return g.shape.Legal(c) }

// index converts a legal coordinate to its linear position.
func (g *Grid) index(c Coord) (int, bool) {
	if !g.shape.Legal(c) {
		return 0, false
	}
	i := 0
	for d, x := range c {
		i += x * g.strides[d]
	}
	return i, true
}

// Index returns the row-major linear index of c, or ErrOutOfRange. A
// coordinate of the wrong length also matches ErrDimensionMismatch.
func (g *Grid) Index(c Coord) (int, error) {
	if len(c) != len(g.shape) {
		return 0, fmt.Errorf("%w: %w: %v has %d components, grid has %d dimensions",
			ErrOutOfRange, ErrDimensionMismatch, c, len(c), len(g.shape))
	}
	i, ok := g.index(c)
	if !ok {
		return 0, fmt.Errorf("%w: %v in shape %v", ErrOutOfRange, c, []int(g.shape))
	}
	return i, nil
}

// CoordOf converts a linear index back to its coordinate.
func (g *Grid) CoordOf(i int) (Coord, error) {
	if i < 0 || i >= len(g.cells) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrOutOfRange, i, len(g.cells))
	}
	c := make(Coord, len(g.shape))
	for d, st := range g.strides {
		c[d] = i / st
		i %= st
	}
	return c, nil
}

// At returns the cell at c, or ErrOutOfRange.
// Complexity: O(D).
func (g *Grid) At(c Coord) (Cell, error) {
	i, err := g.Index(c)
	if err != nil {
		return 0, err
	}
	return g.cells[i], nil
}

// Set writes v at c in place, or returns ErrOutOfRange.
// Complexity: O(D).
func (g *Grid) Set(c Coord, v Cell) error {
	i, err := g.Index(c)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

// Cells reads every coordinate in order. It fails on the first illegal one.
func (g *Grid) Cells(coords []Coord) ([]Cell, error) {
	out := make([]Cell, len(coords))
	for k, c := range coords {
		v, err := g.At(c)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Ban marks the cell at c as Banned.
func (g *Grid) Ban(c Coord) error {
	return g.Set(c, Banned)
}

// FindStart returns the first Start cell in row-major order, which is the
// same as a depth-first, index-ascending scan of the nested form.
// The boolean is false if the grid has no Start cell.
// Complexity: O(K).
func (g *Grid) FindStart() (Coord, bool) {
	for i, v := range g.cells {
		if v == Start {
			c, _ := g.CoordOf(i)
			return c, true
		}
	}
	return nil, false
}

// Count returns how many cells hold v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, x := range g.cells {
		if x == v {
			n++
		}
	}
	return n
}

// MarkSolution writes Solution over every Path or Banned cell along route.
// Start, End and Wall cells are left unchanged. Returns ErrOutOfRange if any
// coordinate is illegal; in that case the grid is not modified.
func (g *Grid) MarkSolution(route []Coord) error {
	idx := make([]int, len(route))
	for k, c := range route {
		i, err := g.Index(c)
		if err != nil {
			return err
		}
		idx[k] = i
	}
	for _, i := range idx {
		if v := g.cells[i]; v == Path || v == Banned {
			g.cells[i] = Solution
		}
	}
	return nil
}

// Flatten returns a copy of the cells in row-major order.
func (g *Grid) Flatten() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c, _ := New(g.shape, g.cells)
	return c
}

// Equal reports whether g and o have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if !g.shape.Equal(o.shape) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
