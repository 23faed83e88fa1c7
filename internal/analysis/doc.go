// Package analysis looks for oscillations in control runs.
//
//   - [PowerSpectrum] and [DominantPeriod]: spectrum of a daily series
//   - [Sweep]: parameter sweep recording the values a series settles on
//   - [GeneratePhasePortrait]: workforce against wage trajectory
//
// # Hunting
//
// A workforce that never settles shows a strong non-zero frequency:
//
//	period, power := analysis.DominantPeriod(workers)
//	if power > 0.5 {
//	    // the loops chase each other every period days
//	}
package analysis
