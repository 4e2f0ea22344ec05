// Package spectral provides discrete Fourier transforms, circular
// convolution, and magnitude spectrum analysis in pure Go.
//
// The transform engine handles signals of arbitrary length: power-of-two
// lengths run the iterative radix-2 Cooley-Tukey algorithm, and every
// other length is reduced to a power-of-two circular convolution with
// Bluestein's chirp-z construction. Callers are never restricted to
// power-of-two frame sizes.
//
// # Features
//
//   - Forward and inverse DFT of split-complex signals, in place, any length
//   - Circular convolution of real or complex sequences via the convolution theorem
//   - One-sided magnitude spectra (2|X(k)|/n) for real signals
//   - Dual-signal analysis: two real signals transformed with a single
//     complex FFT through real/imaginary packing
//   - Narrow-band brute-force magnitudes for callers needing only a few bins
//   - Frequency axis labeling from the sampling rate
//   - Pure Go, no CGO dependencies
//
// # Quick Start
//
// Magnitude spectrum of a real signal:
//
//	spectrum, err := spectral.AbsFFT(signal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info := spectral.Info(len(signal), 44100)
//	for i, mag := range spectrum {
//	    fmt.Printf("%8.1f Hz  %g\n", info.Frequencies[i], mag)
//	}
//
// In-place complex transform and reconstruction:
//
//	err := spectral.Transform(re, im)
//	...
//	err = spectral.InverseTransform(re, im)
//	// The transform pair is unnormalized: divide by len(re) to recover
//	// the original signal.
//
// # Conventions
//
// Signals are split-complex: a real slice and an imaginary slice of equal
// length. The forward transform computes X(k) = Σ x(t)·e^(−2πi·tk/n) and
// the inverse omits the 1/n normalization, following the usual FFT
// convention; the convolution functions apply the rescale internally.
//
// # Thread Safety
//
// The package keeps no state between calls. All functions are reentrant
// and safe to call from concurrent goroutines as long as each call works
// on its own slices.
//
// # Attribution
//
// The transform core follows the "Free small FFT" construction by Project
// Nayuki (https://www.nayuki.io/page/free-small-fft-in-multiple-languages):
// iterative radix-2 decimation in time plus the Bluestein chirp-z adapter
// for arbitrary lengths.
package spectral
