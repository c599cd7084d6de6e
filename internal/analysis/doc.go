// Package analysis looks for periodic structure in population series.
//
//   - [PowerSpectrum]: magnitude spectrum of a mean-removed series
//   - [DominantPeriod]: strongest oscillation, in generations
//   - [Summarize]: basic statistics plus the dominant period
//
// A board that settles into a period-p cycle shows a spectral peak at
// n/p, so a saved run can be checked without replaying it:
//
//	s := analysis.Summarize(pops)
//	fmt.Println(s.Period, s.Strength)
package analysis
