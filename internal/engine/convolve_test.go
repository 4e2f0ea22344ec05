package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-spectral/internal/testutil"
)

// TestConvolveReal_MatchesDirectSum verifies the convolution theorem
// implementation against the direct wraparound sum, including lengths
// that force the Bluestein path inside the transforms.
func TestConvolveReal_MatchesDirectSum(t *testing.T) {
	lengths := []int{1, 2, 4, 7, 16, 25, 33, 64}

	for _, n := range lengths {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x := testutil.RandomSignal(n, int64(n)*2)
			y := testutil.RandomSignal(n, int64(n)*2+1)
			want := testutil.NaiveCircularConvolve(x, y)

			got, err := ConvolveReal(x, y)
			require.NoError(t, err)
			testutil.AssertSignalClose(t, want, got, testutil.ConvolutionTolerance)
		})
	}
}

// TestConvolveComplex_Delta verifies that convolving with a unit impulse
// reproduces the other operand, the simplest closed-form identity.
func TestConvolveComplex_Delta(t *testing.T) {
	const n = 12

	xr := testutil.RandomSignal(n, 7)
	xi := testutil.RandomSignal(n, 8)
	delta := testutil.ZeroSignal(n)
	delta[0] = 1

	outRe, outIm, err := ConvolveComplex(xr, xi, delta, testutil.ZeroSignal(n))
	require.NoError(t, err)
	testutil.AssertSpectrumClose(t, xr, xi, outRe, outIm, testutil.ConvolutionTolerance)
}

// TestConvolveComplex_DoesNotMutateOperands verifies the copy-before-
// transform contract.
func TestConvolveComplex_DoesNotMutateOperands(t *testing.T) {
	const n = 9

	xr := testutil.RandomSignal(n, 9)
	xi := testutil.RandomSignal(n, 10)
	yr := testutil.RandomSignal(n, 11)
	yi := testutil.RandomSignal(n, 12)

	_, _, err := ConvolveComplex(xr, xi, yr, yi)
	require.NoError(t, err)

	testutil.AssertSignalClose(t, testutil.RandomSignal(n, 9), xr, 0)
	testutil.AssertSignalClose(t, testutil.RandomSignal(n, 10), xi, 0)
	testutil.AssertSignalClose(t, testutil.RandomSignal(n, 11), yr, 0)
	testutil.AssertSignalClose(t, testutil.RandomSignal(n, 12), yi, 0)
}

// TestConvolveComplex_ZeroLength verifies the empty-input contract.
func TestConvolveComplex_ZeroLength(t *testing.T) {
	outRe, outIm, err := ConvolveComplex(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, outRe)
	assert.Empty(t, outIm)
}

// TestConvolveComplex_LengthMismatch verifies operand validation.
func TestConvolveComplex_LengthMismatch(t *testing.T) {
	_, _, err := ConvolveComplex(make([]float64, 4), make([]float64, 4),
		make([]float64, 4), make([]float64, 3))
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = ConvolveReal(make([]float64, 4), make([]float64, 5))
	require.ErrorIs(t, err, ErrLengthMismatch)
}
