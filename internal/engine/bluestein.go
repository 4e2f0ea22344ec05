package engine

import (
	"math"

	"github.com/tphakala/go-spectral/internal/mathutil"
)

// chirpTables precomputes cos and sin of the chirp angle π·(i² mod 2n)/n
// for i in [0, n). Reducing i² modulo 2n before the floating-point
// multiply keeps the angle argument small, which preserves precision for
// large i where i² alone would lose low-order bits.
func chirpTables(n int) (cosTab, sinTab []float64) {
	cosTab = make([]float64, n)
	sinTab = make([]float64, n)
	modulus := uint64(2 * n)
	for i := 0; i < n; i++ {
		reduced := uint64(i) * uint64(i) % modulus
		angle := math.Pi * float64(reduced) / float64(n)
		sinTab[i], cosTab[i] = math.Sincos(angle)
	}
	return cosTab, sinTab
}

// transformBluestein computes the forward DFT of (re, im) in place for an
// arbitrary length n >= 1 by re-expressing it as a circular convolution
// of length m, the smallest power of two with m >= 2n+1 (Bluestein's
// chirp-z construction). The inner convolution therefore always lands on
// the radix-2 path, bounding the mutual recursion between this adapter
// and the convolution engine to depth one.
func transformBluestein(re, im []float64) error {
	n := len(re)

	m, err := mathutil.ConvolutionLength(n)
	if err != nil {
		return err
	}

	cosTab, sinTab := chirpTables(n)

	// Sequence a: the input premultiplied by the conjugate chirp,
	// zero-padded to the convolution length.
	areal := make([]float64, m)
	aimag := make([]float64, m)
	for i := 0; i < n; i++ {
		areal[i] = re[i]*cosTab[i] + im[i]*sinTab[i]
		aimag[i] = -re[i]*sinTab[i] + im[i]*cosTab[i]
	}

	// Sequence b: the chirp itself, mirrored so that b[i] == b[m-i].
	// The symmetric placement makes b Hermitian over the m-point ring.
	breal := make([]float64, m)
	bimag := make([]float64, m)
	breal[0] = cosTab[0]
	bimag[0] = sinTab[0]
	for i := 1; i < n; i++ {
		breal[i], breal[m-i] = cosTab[i], cosTab[i]
		bimag[i], bimag[m-i] = sinTab[i], sinTab[i]
	}

	creal, cimag, err := ConvolveComplex(areal, aimag, breal, bimag)
	if err != nil {
		return err
	}

	// The first n convolution outputs, postmultiplied by the conjugate
	// chirp, are the DFT of the input.
	for i := 0; i < n; i++ {
		re[i] = creal[i]*cosTab[i] + cimag[i]*sinTab[i]
		im[i] = -creal[i]*sinTab[i] + cimag[i]*cosTab[i]
	}

	return nil
}
