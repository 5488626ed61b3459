// Package codec converts a labyrinth (grid plus law table) to and from its
// persisted forms.
//
// Text form
//
// Four newline-separated lines. Every list value is followed by ':'.
//
//	3:2:          shape, one extent per dimension
//	0:0:          law code of dimensions 1..D (Free where unset)
//	1:2:3:4:4:5:  cells in row-major order
//	0             NoBan flag, '1' or '0'
//
// Decode does not validate: a token that does not parse as an integer decodes
// as 0. Only inputs that cannot form a grid (fewer than three lines, or a
// value count that does not fit the shape) are rejected with ErrMalformed. A
// missing fourth line means NoBan is false.
//
// YAML form
//
// EncodeYAML/DecodeYAML exchange the same information as a Document, with
// named laws and the cells in nested form, for hand editing:
//
//	shape: [2, 3]
//	laws: {1: free, 2: blocked}
//	no_ban: false
//	cells:
//	  - [2, 0, 1]
//	  - [1, 0, 3]
package codec
