// Package viz renders exponential search traces in the terminal.
//
// The package implements a replay TUI using the Bubble Tea framework:
//
//   - [Model]: paced step-by-step replay of a trace
//   - [Classify]: the color role of every bar in a snapshot
//   - [RenderFrame]: one snapshot as a colored bar chart with its caption
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first step
//	T     - Cycle color themes
//	?     - Show full help
//	[]/←→ - Step backward/forward
//
// # Colors
//
// With the default lab theme bars are red when untouched, yellow once covered
// by the exponential probes, green at the probe being checked, blue inside the
// binary search window, orange at the midpoint and purple where the target
// was found.
package viz
