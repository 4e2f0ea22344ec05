// Package engine implements the discrete Fourier transform core: length
// dispatch between the radix-2 and chirp-transform paths, circular
// convolution via the convolution theorem, and the dual-real packing
// adapter. Signals are split-complex: two equal-length float64 slices
// holding the real and imaginary parts.
//
// All transforms are unnormalized. InverseTransform is derived from the
// forward transform by DFT duality (swapping the real and imaginary
// roles), so a forward/inverse round trip scales the signal by its
// length; callers needing true reconstruction divide by n themselves.
// The convolution functions perform that rescale internally.
//
// The engine keeps no state between calls. Every working buffer (twiddle
// tables, chirp tables, convolution temporaries) is allocated on entry
// and becomes garbage when the call returns, on success and failure
// alike, so independent calls are safe from concurrent goroutines.
package engine

import (
	"fmt"

	"github.com/tphakala/go-spectral/internal/mathutil"
)

// Transform computes the forward DFT of (re, im) in place.
// A zero-length signal is a successful no-op. Power-of-two lengths take
// the radix-2 path; all other lengths take the Bluestein chirp path.
// On error the contents of re and im are unspecified.
func Transform(re, im []float64) error {
	n := len(re)
	if len(im) != n {
		return fmt.Errorf("%w: real %d, imaginary %d", ErrLengthMismatch, n, len(im))
	}

	switch {
	case n == 0:
		return nil
	case mathutil.IsPowerOfTwo(n):
		return transformRadix2(re, im)
	default:
		return transformBluestein(re, im)
	}
}

// InverseTransform computes the unnormalized inverse DFT of (re, im) in
// place by applying the forward transform with the components swapped.
func InverseTransform(re, im []float64) error {
	return Transform(im, re)
}
