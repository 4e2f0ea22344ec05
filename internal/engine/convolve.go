package engine

import (
	"fmt"
	"slices"
)

// ConvolveComplex returns the circular convolution of two equal-length
// complex signals via the convolution theorem: forward-transform both
// operands, multiply pointwise, inverse-transform the product, and scale
// by 1/n. The scale compensates for the unnormalized transform pair and
// must happen exactly once, here. The operands are copied before
// transforming, so the caller's slices are never mutated.
func ConvolveComplex(xr, xi, yr, yi []float64) (outRe, outIm []float64, err error) {
	n := len(xr)
	if len(xi) != n || len(yr) != n || len(yi) != n {
		return nil, nil, fmt.Errorf("%w: x %d/%d, y %d/%d",
			ErrLengthMismatch, n, len(xi), len(yr), len(yi))
	}
	if n == 0 {
		return []float64{}, []float64{}, nil
	}

	ar := slices.Clone(xr)
	ai := slices.Clone(xi)
	br := slices.Clone(yr)
	bi := slices.Clone(yi)

	if err := Transform(ar, ai); err != nil {
		return nil, nil, err
	}
	if err := Transform(br, bi); err != nil {
		return nil, nil, err
	}

	for i := 0; i < n; i++ {
		tre := ar[i]*br[i] - ai[i]*bi[i]
		ai[i] = ai[i]*br[i] + ar[i]*bi[i]
		ar[i] = tre
	}

	if err := InverseTransform(ar, ai); err != nil {
		return nil, nil, err
	}

	scale := 1 / float64(n)
	for i := 0; i < n; i++ {
		ar[i] *= scale
		ai[i] *= scale
	}

	return ar, ai, nil
}

// ConvolveReal returns the circular convolution of two equal-length real
// signals. It is the all-real specialization of ConvolveComplex; the
// imaginary half of the result carries only rounding noise and is
// discarded.
func ConvolveReal(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x %d, y %d", ErrLengthMismatch, len(x), len(y))
	}

	outRe, _, err := ConvolveComplex(x, make([]float64, len(x)), y, make([]float64, len(y)))
	if err != nil {
		return nil, err
	}
	return outRe, nil
}
