// Package render draws labyrinths in the terminal with lipgloss.
//
// A D-dimensional grid is shown as a sequence of 2-D planes spanned by its
// last two dimensions; the leading D-2 coordinates label each plane. A 1-D
// grid is a single row.
//
// Glyphs:
//
//	.  path       #  wall      S  start
//	E  end        x  banned    *  solution
//	@  live route head (trace only)
//
// TraceHook adapts a Renderer to resolve.Hook so each resolution step is
// written out as the frontier grows.
package render
