package engine

import "fmt"

// TransformPair computes the forward DFTs of two independent real signals
// of even length n using a single complex transform. s1 rides in the real
// channel and s2 in the imaginary channel; the two spectra are then
// separated through conjugate symmetry:
//
//	X1(k) = 1/2    · [X(k) + X*(n−k)]
//	X2(k) = 1/(2j) · [X(k) − X*(n−k)]
//
// Bins 0 and n/2 are their own mirror images, so for real inputs both are
// purely real in each spectrum and are filled directly. Interior bins are
// computed for k in [1, n/2) and mirrored to n−k with conjugated signs.
// The symmetry shortcut needs the n/2 bin to exist, hence the even-length
// precondition; odd lengths are rejected rather than given an ad hoc rule.
func TransformPair(s1, s2 []float64) (x1re, x1im, x2re, x2im []float64, err error) {
	n := len(s1)
	if len(s2) != n {
		return nil, nil, nil, nil, fmt.Errorf("%w: s1 %d, s2 %d", ErrLengthMismatch, n, len(s2))
	}
	if n%2 != 0 {
		return nil, nil, nil, nil, fmt.Errorf("%w: %d", ErrOddLength, n)
	}
	if n == 0 {
		return []float64{}, []float64{}, []float64{}, []float64{}, nil
	}

	re := make([]float64, n)
	im := make([]float64, n)
	copy(re, s1)
	copy(im, s2)

	if err := Transform(re, im); err != nil {
		return nil, nil, nil, nil, err
	}

	x1re = make([]float64, n)
	x1im = make([]float64, n)
	x2re = make([]float64, n)
	x2im = make([]float64, n)

	x1re[0] = re[0]
	x2re[0] = im[0]
	x1re[n/2] = re[n/2]
	x2re[n/2] = im[n/2]

	for k := 1; k < n/2; k++ {
		x1re[k] = 0.5 * (re[k] + re[n-k])
		x2re[k] = 0.5 * (im[k] + im[n-k])
		x1im[k] = 0.5 * (im[k] - im[n-k])
		x2im[k] = -0.5 * (re[k] - re[n-k])

		// Real-input spectra are conjugate symmetric; mirror instead of
		// recomputing.
		x1re[n-k] = x1re[k]
		x2re[n-k] = x2re[k]
		x1im[n-k] = -x1im[k]
		x2im[n-k] = -x2im[k]
	}

	return x1re, x1im, x2re, x2im, nil
}
