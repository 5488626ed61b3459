package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// ErrMalformed indicates text that cannot be turned into a grid at all.
var ErrMalformed = errors.New("codec: malformed labyrinth text")

const (
	sep     = ':'
	lineSep = "\n"
)

// Encode renders g and t in the four-line text form.
// Complexity: O(K + D).
func Encode(g *grid.Grid, t law.Table) string {
	shape := g.Shape()
	var sb strings.Builder
	for _, e := range shape {
		writeValue(&sb, e)
	}
	sb.WriteString(lineSep)
	for _, l := range t.Laws(len(shape)) {
		writeValue(&sb, int(l))
	}
	sb.WriteString(lineSep)
	for _, v := range g.Flatten() {
		writeValue(&sb, int(v))
	}
	sb.WriteString(lineSep)
	if t.NoBan {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	return sb.String()
}

func writeValue(sb *strings.Builder, v int) {
	sb.WriteString(strconv.Itoa(v))
	sb.WriteByte(sep)
}

// Decode parses the four-line text form. Laws are assigned to dimensions
// 1..n by position. See the package doc for the no-validation contract.
func Decode(text string) (*grid.Grid, law.Table, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", lineSep), lineSep)
	if len(lines) < 3 {
		return nil, law.Table{}, fmt.Errorf("%w: want 4 lines, got %d", ErrMalformed, len(lines))
	}

	shape := grid.Shape(parseList(lines[0]))
	codes := parseList(lines[1])
	raw := parseList(lines[2])

	cells := make([]grid.Cell, len(raw))
	for i, v := range raw {
		cells[i] = grid.Cell(v)
	}
	g, err := grid.Unflatten(cells, shape)
	if err != nil {
		return nil, law.Table{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var t law.Table
	for i, c := range codes {
		// unknown codes are kept out of the table; the dimension stays Free
		_ = t.Set(i+1, law.Law(c))
	}
	if len(lines) > 3 && strings.HasPrefix(lines[3], "1") {
		t.NoBan = true
	}
	return g, t, nil
}

// parseList splits "a:b:c:" into integers, dropping the segment after the
// final separator. Unparsable tokens become 0.
func parseList(line string) []int {
	line = strings.TrimSpace(line)
	parts := strings.Split(line, string(sep))
	parts = parts[:len(parts)-1]
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			v = 0
		}
		out[i] = v
	}
	return out
}

// Write encodes g and t to w.
func Write(w io.Writer, g *grid.Grid, t law.Table) error {
	_, err := io.WriteString(w, Encode(g, t))
	return err
}

// Read decodes a labyrinth from r.
func Read(r io.Reader) (*grid.Grid, law.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, law.Table{}, err
	}
	return Decode(string(data))
}
