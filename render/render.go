package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathfinder/frontier"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/resolve"
)

// ErrFixedLength indicates a plane selector of the wrong length.
var ErrFixedLength = errors.New("render: fixed coordinates must cover all but the last two dimensions")

var glyphs = map[grid.Cell]string{
	grid.Path:     ".",
	grid.Wall:     "#",
	grid.Start:    "S",
	grid.End:      "E",
	grid.Banned:   "x",
	grid.Solution: "*",
}

const headGlyph = "@"

// Renderer holds lipgloss styles bound to one output.
type Renderer struct {
	cells map[grid.Cell]lipgloss.Style
	head  lipgloss.Style
	label lipgloss.Style
	frame lipgloss.Style
}

// New returns a Renderer whose color profile matches w. Non-terminal
// writers get plain text.
func New(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style { return lr.NewStyle().Foreground(lipgloss.Color(c)) }
	return &Renderer{
		cells: map[grid.Cell]lipgloss.Style{
			grid.Path:     fg("240"),
			grid.Wall:     fg("252").Bold(true),
			grid.Start:    fg("42").Bold(true),
			grid.End:      fg("203").Bold(true),
			grid.Banned:   fg("60"),
			grid.Solution: fg("220").Bold(true),
		},
		head:  fg("45").Bold(true),
		label: lr.NewStyle().Faint(true),
		frame: lr.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (r *Renderer) glyph(v grid.Cell) string {
	g, ok := glyphs[v]
	if !ok {
		g = "?"
	}
	if st, ok := r.cells[v]; ok {
		return st.Render(g)
	}
	return g
}

// Plane renders the 2-D slice of g selected by fixed, which lists the
// leading D-2 coordinates (empty for 1-D and 2-D grids).
func (r *Renderer) Plane(g *grid.Grid, fixed grid.Coord) (string, error) {
	return r.plane(g, fixed, nil)
}

func (r *Renderer) plane(g *grid.Grid, fixed grid.Coord, heads map[string]bool) (string, error) {
	shape := g.Shape()
	lead := len(shape) - 2
	if lead < 0 {
		lead = 0
	}
	if len(fixed) != lead {
		return "", fmt.Errorf("%w: got %d, want %d", ErrFixedLength, len(fixed), lead)
	}

	rows, cols := 1, shape[len(shape)-1]
	if len(shape) >= 2 {
		rows = shape[len(shape)-2]
	}
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			c := append(fixed.Clone(), y, x)
			if len(shape) == 1 {
				c = grid.Coord{x}
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			if heads[c.String()] {
				sb.WriteString(r.head.Render(headGlyph))
				continue
			}
			v, err := g.At(c)
			if err != nil {
				return "", err
			}
			sb.WriteString(r.glyph(v))
		}
	}
	return r.frame.Render(sb.String()), nil
}

// Grid renders every plane of g, each under a label naming its leading
// coordinates.
func (r *Renderer) Grid(g *grid.Grid) string {
	return r.grid(g, nil)
}

func (r *Renderer) grid(g *grid.Grid, heads map[string]bool) string {
	shape := g.Shape()
	if len(shape) <= 2 {
		out, _ := r.plane(g, nil, heads)
		return out
	}
	leadShape := shape[:len(shape)-2]
	var blocks []string
	for _, fixed := range enumerate(leadShape) {
		out, err := r.plane(g, fixed, heads)
		if err != nil {
			continue
		}
		blocks = append(blocks, r.label.Render(planeLabel(fixed))+"\n"+out)
	}
	return strings.Join(blocks, "\n")
}

// Route renders a copy of g with the route marked as Solution cells.
func (r *Renderer) Route(g *grid.Grid, route []grid.Coord) (string, error) {
	c := g.Clone()
	if err := c.MarkSolution(route); err != nil {
		return "", err
	}
	return r.Grid(c), nil
}

// TraceHook returns a resolve.Hook that writes the step number, the number
// of live routes and the grid with route heads highlighted to w. It never
// overrides resolver state.
func TraceHook(w io.Writer) resolve.Hook {
	r := New(w)
	return func(s resolve.State) resolve.Override {
		fmt.Fprintf(w, "step %d: %d route(s)\n", s.Step, len(s.Frontier))
		fmt.Fprintln(w, r.grid(s.Grid, headSet(s.Frontier)))
		return resolve.Override{}
	}
}

func headSet(f frontier.Frontier) map[string]bool {
	heads := make(map[string]bool, len(f))
	for _, c := range f.Heads() {
		heads[c.String()] = true
	}
	return heads
}

// planeLabel formats leading coordinates as "(1,0,·,·)".
func planeLabel(fixed grid.Coord) string {
	parts := make([]string, 0, len(fixed)+2)
	for _, x := range fixed {
		parts = append(parts, fmt.Sprint(x))
	}
	parts = append(parts, "·", "·")
	return "(" + strings.Join(parts, ",") + ")"
}

// enumerate lists every coordinate of shape in row-major order.
func enumerate(shape grid.Shape) []grid.Coord {
	n := shape.Size()
	out := make([]grid.Coord, 0, n)
	cur := make(grid.Coord, len(shape))
	for i := 0; i < n; i++ {
		out = append(out, cur.Clone())
		for d := len(cur) - 1; d >= 0; d-- {
			cur[d]++
			if cur[d] < shape[d] {
				break
			}
			cur[d] = 0
		}
	}
	return out
}
