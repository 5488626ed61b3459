package grid

import (
	"fmt"
	"reflect"
)

// Nested-form helpers. A nested grid is any value whose containers are slices
// or arrays (including []any) and whose leaves are integers, e.g.
// [][]int{{2, 0}, {1, 3}} or []any{[]any{2, 0}, []any{1, 3}}.

// deref unwraps interfaces and pointers so the caller sees the concrete value.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// leafValue converts an integer leaf to a Cell.
func leafValue(v reflect.Value) (Cell, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Cell(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Cell(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		// decoded YAML/JSON numbers may arrive as floats
		f := v.Float()
		if f == float64(int64(f)) {
			return Cell(int64(f)), nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrBadLeaf, v)
}

// DimensionCount descends through index 0 at every level and counts the
// levels until a leaf is reached. A bare leaf yields ErrLeafGrid.
func DimensionCount(nested any) (int, error) {
	s, err := ShapeOf(nested)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// ShapeOf performs the same descent as DimensionCount and records the extent
// of every level. Siblings are assumed, not checked, to share extents; use
// FlattenNested or FromNested for a checked conversion.
func ShapeOf(nested any) (Shape, error) {
	v := deref(reflect.ValueOf(nested))
	if !isList(v) {
		return nil, ErrLeafGrid
	}
	var s Shape
	for isList(v) {
		if v.Len() == 0 {
			return nil, ErrEmptyShape
		}
		s = append(s, v.Len())
		v = deref(v.Index(0))
	}
	if _, err := leafValue(v); err != nil {
		return nil, err
	}
	return s, nil
}

// FlattenNested concatenates all leaves depth-first, leftmost first
// (row-major order). Siblings must share extents; a jagged input yields
// ErrNonRectangular.
func FlattenNested(nested any) ([]Cell, error) {
	s, err := ShapeOf(nested)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, 0, s.Size())
	if err := flattenInto(&out, deref(reflect.ValueOf(nested)), s); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out *[]Cell, v reflect.Value, s Shape) error {
	if len(s) == 0 {
		c, err := leafValue(v)
		if err != nil {
			return err
		}
		*out = append(*out, c)
		return nil
	}
	if !isList(v) || v.Len() != s[0] {
		return fmt.Errorf("%w: expected extent %d at depth with %d dimensions left",
			ErrNonRectangular, s[0], len(s))
	}
	for i := 0; i < v.Len(); i++ {
		if err := flattenInto(out, deref(v.Index(i)), s[1:]); err != nil {
			return err
		}
	}
	return nil
}

// UnflattenNested is the inverse of FlattenNested. It splits values into
// shape[0] contiguous chunks of len(values)/shape[0] and recursively
// unflattens each chunk against the remaining shape. When one dimension is
// left the chunk is returned unchanged, as a []Cell.
//
// UnflattenNested(FlattenNested(g), ShapeOf(g)) reproduces g leaf for leaf.
// The caller guarantees len(values) == shape.Size().
func UnflattenNested(values []Cell, shape Shape) any {
	if len(shape) <= 1 {
		return values
	}
	step := len(values) / shape[0]
	out := make([]any, 0, shape[0])
	for i := 0; i+step <= len(values) && step > 0; i += step {
		chunk := make([]Cell, step)
		copy(chunk, values[i:i+step])
		out = append(out, UnflattenNested(chunk, shape[1:]))
	}
	return out
}

// FromNested builds a Grid from a nested grid.
// Complexity: O(K).
func FromNested(nested any) (*Grid, error) {
	s, err := ShapeOf(nested)
	if err != nil {
		return nil, err
	}
	cells, err := FlattenNested(nested)
	if err != nil {
		return nil, err
	}
	return New(s, cells)
}

// Nested returns the grid in nested form: []any down to the innermost
// dimension, which is a []Cell.
func (g *Grid) Nested() any {
	return UnflattenNested(g.Flatten(), g.shape)
}
