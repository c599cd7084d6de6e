package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum removes the mean from pops, zero-pads it to a power of two
// and returns the magnitudes of bins 0 through n/2.
func PowerSpectrum(pops []int) []float64 {
	if len(pops) < 2 {
		return nil
	}

	n := 1
	for n < len(pops) {
		n <<= 1
	}

	mean := 0.0
	for _, p := range pops {
		mean += float64(p)
	}
	mean /= float64(len(pops))

	data := make([]float64, n)
	for i, p := range pops {
		data[i] = float64(p) - mean
	}

	spectrum := fft.FFTReal(data)
	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}
