package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// Document is the YAML exchange form of a labyrinth.
type Document struct {
	// Shape is informational on encode and checked against Cells on decode
	// when present.
	Shape []int `yaml:"shape,flow"`
	// Laws maps 1-based dimensions to law names (see law.Law.String).
	Laws map[int]string `yaml:"laws,omitempty"`
	// NoBan disables banning of visited cells.
	NoBan bool `yaml:"no_ban"`
	// Cells is the nested grid, outermost dimension first.
	Cells any `yaml:"cells"`
}

// NewDocument builds the YAML document of g and t. Free laws are omitted.
func NewDocument(g *grid.Grid, t law.Table) Document {
	doc := Document{
		Shape: g.Shape(),
		NoBan: t.NoBan,
		Cells: toInts(g.Nested()),
	}
	for _, d := range t.Dimensions() {
		if l := t.Law(d); l != law.Free {
			if doc.Laws == nil {
				doc.Laws = make(map[int]string)
			}
			doc.Laws[d] = l.String()
		}
	}
	return doc
}

// toInts rewrites the []Cell leaves of a nested grid as []int so the YAML
// output carries plain integers.
func toInts(nested any) any {
	switch v := nested.(type) {
	case []grid.Cell:
		out := make([]int, len(v))
		for i, c := range v {
			out[i] = int(c)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = toInts(x)
		}
		return out
	}
	return nested
}

// Labyrinth converts the document back to a grid and law table.
func (d Document) Labyrinth() (*grid.Grid, law.Table, error) {
	g, err := grid.FromNested(d.Cells)
	if err != nil {
		return nil, law.Table{}, fmt.Errorf("%w: cells: %v", ErrMalformed, err)
	}
	if len(d.Shape) > 0 && !g.Shape().Equal(grid.Shape(d.Shape)) {
		return nil, law.Table{}, fmt.Errorf("%w: shape %v does not match cells %v",
			ErrMalformed, d.Shape, []int(g.Shape()))
	}

	t := law.Table{NoBan: d.NoBan}
	for dim, name := range d.Laws {
		l, err := law.Parse(name)
		if err != nil {
			return nil, law.Table{}, fmt.Errorf("%w: dimension %d: %v", ErrMalformed, dim, err)
		}
		if err := t.Set(dim, l); err != nil {
			return nil, law.Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	return g, t, nil
}

// EncodeYAML renders g and t as a YAML Document.
func EncodeYAML(g *grid.Grid, t law.Table) ([]byte, error) {
	return yaml.Marshal(NewDocument(g, t))
}

// DecodeYAML parses a YAML Document into a grid and law table.
func DecodeYAML(data []byte) (*grid.Grid, law.Table, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, law.Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc.Labyrinth()
}
