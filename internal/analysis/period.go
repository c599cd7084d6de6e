package analysis

import "math"

// minSamples is the shortest series worth transforming.
const minSamples = 8

// DominantPeriod returns the period, in generations, of the strongest
// non-constant component of pops and that component's share of the total
// spectral magnitude. A flat or too short series returns 0, 0.
func DominantPeriod(pops []int) (period float64, strength float64) {
	if len(pops) < minSamples {
		return 0, 0
	}
	ps := PowerSpectrum(pops)
	n := 2 * (len(ps) - 1)

	total, best, bestIdx := 0.0, 0.0, 0
	for k := 1; k < len(ps); k++ {
		total += ps[k]
		if ps[k] > best {
			best, bestIdx = ps[k], k
		}
	}
	if bestIdx == 0 || total == 0 {
		return 0, 0
	}
	return float64(n) / float64(bestIdx), best / total
}

// Summary describes a population series.
type Summary struct {
	Samples  int
	Min      int
	Max      int
	Mean     float64
	StdDev   float64
	Period   float64
	Strength float64
}

func Summarize(pops []int) Summary {
	s := Summary{Samples: len(pops)}
	if len(pops) == 0 {
		return s
	}

	s.Min, s.Max = pops[0], pops[0]
	sum := 0.0
	for _, p := range pops {
		s.Min = min(s.Min, p)
		s.Max = max(s.Max, p)
		sum += float64(p)
	}
	s.Mean = sum / float64(len(pops))

	variance := 0.0
	for _, p := range pops {
		d := float64(p) - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(len(pops)))

	s.Period, s.Strength = DominantPeriod(pops)
	return s
}
