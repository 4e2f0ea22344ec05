// Package testutil provides brute-force spectral references and testify
// assertion helpers shared by the transform tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for spectral comparisons.
const (
	// TransformTolerance bounds the absolute error when comparing a fast
	// transform against the brute-force reference for small lengths.
	TransformTolerance = 1e-9

	// RoundTripTolerance bounds the absolute error of a forward/inverse
	// round trip at n=1024 on unit-range signals.
	RoundTripTolerance = 1e-9

	// ConvolutionTolerance bounds the error of FFT convolution against
	// the direct wraparound sum.
	ConvolutionTolerance = 1e-8
)

// NaiveDFT computes the DFT of (re, im) by the defining double sum and
// returns the result. It is O(n²) and exists purely as a correctness
// reference. Set inverse for the unnormalized inverse transform.
func NaiveDFT(re, im []float64, inverse bool) (outRe, outIm []float64) {
	n := len(re)
	outRe = make([]float64, n)
	outIm = make([]float64, n)

	coef := -2 * math.Pi
	if inverse {
		coef = 2 * math.Pi
	}

	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for t := 0; t < n; t++ {
			angle := coef * float64(t*k%n) / float64(n)
			sin, cos := math.Sincos(angle)
			sumRe += re[t]*cos - im[t]*sin
			sumIm += re[t]*sin + im[t]*cos
		}
		outRe[k] = sumRe
		outIm[k] = sumIm
	}
	return outRe, outIm
}

// NaiveCircularConvolve computes the circular convolution of two real
// sequences by the direct wraparound sum: out[k] = Σ x[t]·y[(k−t) mod n].
func NaiveCircularConvolve(x, y []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for t := 0; t < n; t++ {
			sum += x[t] * y[((k-t)%n+n)%n]
		}
		out[k] = sum
	}
	return out
}

// RandomSignal returns n samples uniformly distributed in [-1, 1) from a
// deterministically seeded source, so failures reproduce.
func RandomSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

// ZeroSignal returns an n-sample all-zero buffer.
func ZeroSignal(n int) []float64 {
	return make([]float64, n)
}

// AssertSignalClose verifies that two real sequences agree element-wise
// within the given absolute tolerance.
func AssertSignalClose(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"sample %d: want %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertSpectrumClose verifies that two split-complex spectra agree
// bin-for-bin within the given absolute tolerance.
func AssertSpectrumClose(t *testing.T, wantRe, wantIm, gotRe, gotIm []float64, tolerance float64) bool {
	t.Helper()
	return AssertSignalClose(t, wantRe, gotRe, tolerance, "real part") &&
		AssertSignalClose(t, wantIm, gotIm, tolerance, "imaginary part")
}

// AssertNoNaNOrInf verifies that no element of the slice is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}
