// Package pathfinder finds shortest routes through N-dimensional labyrinths
// whose dimensions each obey a movement law, time included.
//
// 🚀 What is pathfinder?
//
//	A small, dependency-light toolkit that brings together:
//		• Grids: N-dimensional cell storage with row-major flatten/unflatten
//		• Laws: per-dimension movement rules (free, blocked, forward, backward,
//		  jump_forward, jump_backward) and the neighbor generator built on them
//		• Frontier: persistent routes and the one-step expansion
//		• Resolve: the driver loop with hooks, step limits and cancellation
//		• Codec: the four-line text form and a YAML document form
//		• Render: terminal drawing of planes, routes and live traces
//
// ✨ Why pathfinder?
//
//   - Shortest by construction: breadth-first over unit-cost moves
//   - Time as a dimension: jump laws advance a clock axis every step
//   - Observable: a Hook sees every step and may swap grid, laws or frontier
//
// Packages:
//
//	grid/           Cell, Coord, Shape, Grid and nested-slice conversion
//	law/            Law, Table, Adjacent and Neighbors
//	frontier/       Path, Frontier and Step
//	resolve/        Resolve, Options, Hook and Result
//	codec/          Encode/Decode (text) and EncodeYAML/DecodeYAML
//	render/         lipgloss renderer and TraceHook
//	cmd/pathfinder  solve, batch, encode, decode and render from the shell
//
// Quick ASCII example (S start, # wall, E end):
//
//	S . #
//	# . .
//	E . #
//
//	resolves to (0,0) -> (0,1) -> (1,1) -> (2,1) -> (2,0).
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
