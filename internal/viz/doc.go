// Package viz provides the terminal front end for the sorting visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: menu shell with random/custom input and algorithm selection
//   - [Model]: live playback of one sort, paced by the speed slider
//   - [BarRenderer]: draws a snapshot as labelled vertical bars
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	←/→   - Slower/Faster
//	T     - Cycle color themes
//	?     - Toggle full help
//	Esc   - Back to the menu
//
// The speed slider also follows the mouse: press on the track row, drag,
// release.
package viz
