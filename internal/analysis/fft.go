package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT returns the discrete Fourier transform of a real series.
func FFT(data []float64) []complex128 {
	if len(data) == 0 {
		return nil
	}
	return fft.FFTReal(data)
}

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// data after removing its mean and zero padding it to a power of two.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(PadPow2(Detrend(data)))
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// Detrend subtracts the mean.
func Detrend(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}

// PadPow2 appends zeros up to the next power of two.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	out := make([]float64, n)
	copy(out, data)
	return out
}

// DominantPeriod returns the period in samples of the strongest non-zero
// frequency and its share of the total spectral power. A constant series
// has period 0.
func DominantPeriod(data []float64) (period float64, share float64) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, 0
	}

	total := 0.0
	best := 0
	for k := 1; k < len(ps); k++ {
		total += ps[k]
		if ps[k] > ps[best] || best == 0 {
			best = k
		}
	}
	if total == 0 {
		return 0, 0
	}
	n := 2 * len(ps)
	return float64(n) / float64(best), ps[best] / total
}
