package law

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Sentinel errors for law tables.
var (
	// ErrBadDimension indicates a dimension number below 1.
	ErrBadDimension = errors.New("law: dimension numbers start at 1")
	// ErrUnknownLaw indicates a law value outside the known kinds.
	ErrUnknownLaw = errors.New("law: unknown law")
)

// Law is a movement policy for one dimension. Values are persisted by the
// text codec and must not be reordered.
type Law int

const (
	// Free allows -1 and +1.
	Free Law = iota
	// Blocked allows no movement.
	Blocked
	// Forward allows +1 only.
	Forward
	// JumpForward forces a +1 step, then blocks the dimension for that step.
	JumpForward
	// Backward allows -1 only.
	Backward
	// JumpBackward forces a -1 step, then blocks the dimension for that step.
	JumpBackward
)

var lawNames = [...]string{"free", "blocked", "forward", "jump_forward", "backward", "jump_backward"}

// Valid reports whether l is a known law.
func (l Law) Valid() bool { return l >= Free && l <= JumpBackward }

// String returns the snake_case law name, or the decimal code if unknown.
func (l Law) String() string {
	if l.Valid() {
		return lawNames[l]
	}
	return strconv.Itoa(int(l))
}

// Parse maps a law name (as returned by String) to its Law.
func Parse(name string) (Law, error) {
	for i, n := range lawNames {
		if n == name {
			return Law(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLaw, name)
}

// Table maps 1-based dimension numbers to laws. Absent dimensions are Free.
// The zero value is an empty, usable table with banning enabled.
type Table struct {
	laws map[int]Law

	// NoBan disables marking visited free cells as Banned.
	NoBan bool
}

// TableOption configures a Table built by NewTable.
type TableOption func(*Table) error

// WithLaw sets law l on dimension dim.
func WithLaw(dim int, l Law) TableOption {
	return func(t *Table) error {
		return t.Set(dim, l)
	}
}

// WithNoBan sets the NoBan flag.
func WithNoBan(noBan bool) TableOption {
	return func(t *Table) error {
		t.NoBan = noBan
		return nil
	}
}

// NewTable builds a Table from options. The first failing option aborts.
func NewTable(opts ...TableOption) (Table, error) {
	var t Table
	for _, opt := range opts {
		if err := opt(&t); err != nil {
			return Table{}, err
		}
	}
	return t, nil
}

// Set assigns law l to dimension dim (1-based). Setting Free keeps an
// explicit entry; it behaves exactly like an absent one.
func (t *Table) Set(dim int, l Law) error {
	if dim < 1 {
		return fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}
	if !l.Valid() {
		return fmt.Errorf("%w: %d on dimension %d", ErrUnknownLaw, int(l), dim)
	}
	if t.laws == nil {
		t.laws = make(map[int]Law)
	}
	t.laws[dim] = l
	return nil
}

// Law returns the law of dimension dim, or Free if none is set.
func (t Table) Law(dim int) Law {
	if l, ok := t.laws[dim]; ok {
		return l
	}
	return Free
}

// Laws returns the laws of dimensions 1..n in order, Free where unset.
func (t Table) Laws(n int) []Law {
	out := make([]Law, n)
	for d := range out {
		out[d] = t.Law(d + 1)
	}
	return out
}

// Dimensions returns the explicitly set dimension numbers in ascending order.
func (t Table) Dimensions() []int {
	dims := make([]int, 0, len(t.laws))
	for d := range t.laws {
		dims = append(dims, d)
	}
	sort.Ints(dims)
	return dims
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	c := Table{NoBan: t.NoBan}
	if t.laws != nil {
		c.laws = make(map[int]Law, len(t.laws))
		for d, l := range t.laws {
			c.laws[d] = l
		}
	}
	return c
}

// Equal reports whether t and o behave identically: same NoBan flag and the
// same effective law on every dimension (explicit Free equals absent).
func (t Table) Equal(o Table) bool {
	if t.NoBan != o.NoBan {
		return false
	}
	for d, l := range t.laws {
		if o.Law(d) != l {
			return false
		}
	}
	for d, l := range o.laws {
		if t.Law(d) != l {
			return false
		}
	}
	return true
}
