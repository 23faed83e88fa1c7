// Package viz is a terminal dashboard for watching a sector run.
//
// [Model] steps a [Source] (usually an experiment) a few days per tick and
// plots the selected firm's workers against its target, its wage and its
// weekly profit with asciigraph.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	+/-   - Double or halve the days simulated per tick
//	Tab   - Next firm
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
