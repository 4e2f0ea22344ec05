package spectral

import (
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-spectral/internal/engine"
)

// onesidedLen returns the bin count of a one-sided spectrum: n/2+1, or
// zero for an empty signal. Conjugate symmetry of real-input spectra
// makes the remaining bins redundant.
func onesidedLen(n int) int {
	if n == 0 {
		return 0
	}
	return n/2 + 1
}

// AbsFFT returns the one-sided magnitude spectrum of a real signal:
// 2·|X(k)|/n for k in [0, n/2]. The returned slice has length n/2+1.
// A zero-length signal yields an empty spectrum.
func AbsFFT(signal []float64) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return []float64{}, nil
	}

	re := slices.Clone(signal)
	im := make([]float64, n)
	if err := engine.Transform(re, im); err != nil {
		return nil, err
	}

	mags := make([]float64, onesidedLen(n))
	scale := onesidedScale / float64(n)
	for i := range mags {
		mags[i] = scale * math.Hypot(re[i], im[i])
	}
	return mags, nil
}

// PairSpectra holds the full complex spectra of two real signals
// transformed together by TransformPair.
type PairSpectra struct {
	// X1Re and X1Im are the spectrum of the first signal.
	X1Re, X1Im []float64

	// X2Re and X2Im are the spectrum of the second signal.
	X2Re, X2Im []float64
}

// TransformPair computes the forward DFTs of two independent real signals
// of equal even length using a single complex transform, packing one
// signal into the real channel and the other into the imaginary channel.
// Odd lengths return ErrOddLength.
func TransformPair(s1, s2 []float64) (*PairSpectra, error) {
	x1re, x1im, x2re, x2im, err := engine.TransformPair(s1, s2)
	if err != nil {
		return nil, err
	}
	return &PairSpectra{X1Re: x1re, X1Im: x1im, X2Re: x2re, X2Im: x2im}, nil
}

// AbsFFTPair returns the one-sided magnitude spectra (2·|X(k)|/n, length
// n/2+1) of two real signals of equal even length, computed with a single
// complex transform via TransformPair.
func AbsFFTPair(s1, s2 []float64) (m1, m2 []float64, err error) {
	spectra, err := TransformPair(s1, s2)
	if err != nil {
		return nil, nil, err
	}

	n := len(s1)
	if n == 0 {
		return []float64{}, []float64{}, nil
	}

	m1 = make([]float64, onesidedLen(n))
	m2 = make([]float64, onesidedLen(n))
	scale := onesidedScale / float64(n)
	for i := range m1 {
		m1[i] = scale * math.Hypot(spectra.X1Re[i], spectra.X1Im[i])
		m2[i] = scale * math.Hypot(spectra.X2Re[i], spectra.X2Im[i])
	}
	return m1, m2, nil
}

// AbsDFTInterval returns the one-sided magnitudes 2·|X(k)|/n for bins
// k in [start, stop), evaluated by the defining sum rather than a full
// transform. For a handful of bins this direct evaluation is cheaper
// than an FFT of the whole signal. The interval must satisfy
// 0 <= start <= stop <= n/2+1.
func AbsDFTInterval(signal []float64, start, stop int) ([]float64, error) {
	n := len(signal)
	if start < 0 || stop < start || stop > onesidedLen(n) {
		return nil, fmt.Errorf("%w: [%d, %d) with %d bins available",
			ErrInvalidBinRange, start, stop, onesidedLen(n))
	}

	mags := make([]float64, stop-start)
	scale := onesidedScale / float64(n)
	for k := start; k < stop; k++ {
		var sumRe, sumIm float64
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(t*k%n) / float64(n)
			sin, cos := math.Sincos(angle)
			sumRe += signal[t] * cos
			sumIm += signal[t] * sin
		}
		mags[k-start] = scale * math.Hypot(sumRe, sumIm)
	}
	return mags, nil
}

// SpectrumInfo describes the frequency axis of a one-sided spectrum.
type SpectrumInfo struct {
	// Frequencies maps each one-sided bin index to its physical frequency
	// in Hz. Length n/2+1.
	Frequencies []float64

	// DeltaF is the frequency resolution in Hz: sampleRate/n.
	DeltaF float64
}

// Info returns the frequency axis for an n-point transform of a signal
// sampled at sampleRate Hz: bin i sits at i·sampleRate/n. A non-positive
// n yields an empty axis.
func Info(n int, sampleRate float64) SpectrumInfo {
	if n <= 0 {
		return SpectrumInfo{Frequencies: []float64{}}
	}
	df := sampleRate / float64(n)
	freqs := make([]float64, onesidedLen(n))
	for i := range freqs {
		freqs[i] = df * float64(i)
	}
	return SpectrumInfo{Frequencies: freqs, DeltaF: df}
}
