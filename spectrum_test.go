package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	spectral "github.com/tphakala/go-spectral"
	"github.com/tphakala/go-spectral/internal/testutil"
)

// sineSignal returns n samples of sin(2π·cycles·i/n).
func sineSignal(n int, cycles float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * cycles * float64(i) / float64(n))
	}
	return s
}

// TestAbsFFT_UnitSine verifies the one-sided scaling: a unit-amplitude
// sine at an exact bin reads as magnitude 1 at that bin and ~0 elsewhere.
func TestAbsFFT_UnitSine(t *testing.T) {
	const n = 64
	const bin = 5

	spectrum, err := spectral.AbsFFT(sineSignal(n, bin))
	require.NoError(t, err)
	require.Len(t, spectrum, n/2+1)

	for k, mag := range spectrum {
		if k == bin {
			assert.InDelta(t, 1.0, mag, 1e-9, "tone bin")
		} else {
			assert.InDelta(t, 0.0, mag, 1e-9, "quiet bin %d", k)
		}
	}
}

// TestAbsFFT_AgainstGonumRealFFT cross-validates the one-sided magnitudes
// against gonum's real-input FFT.
func TestAbsFFT_AgainstGonumRealFFT(t *testing.T) {
	const n = 128

	signal := testutil.RandomSignal(n, 61)

	got, err := spectral.AbsFFT(signal)
	require.NoError(t, err)

	coeffs := fourier.NewFFT(n).Coefficients(nil, signal)
	require.Len(t, got, len(coeffs))
	for k, c := range coeffs {
		want := 2 * math.Hypot(real(c), imag(c)) / n
		assert.InDelta(t, want, got[k], 1e-9, "bin %d", k)
	}
}

// TestAbsFFT_OddLength verifies the one-sided length contract for odd
// signal lengths, which only the single-signal path supports.
func TestAbsFFT_OddLength(t *testing.T) {
	spectrum, err := spectral.AbsFFT(testutil.RandomSignal(33, 62))
	require.NoError(t, err)
	assert.Len(t, spectrum, 33/2+1)
	testutil.AssertNoNaNOrInf(t, spectrum)
}

// TestAbsFFT_Empty verifies the zero-length contract.
func TestAbsFFT_Empty(t *testing.T) {
	spectrum, err := spectral.AbsFFT(nil)
	require.NoError(t, err)
	assert.Empty(t, spectrum)
}

// TestTransformPair_PublicEquivalence verifies the packed dual transform
// against two independent public transforms for even n.
func TestTransformPair_PublicEquivalence(t *testing.T) {
	const n = 16

	s1 := testutil.RandomSignal(n, 63)
	s2 := testutil.RandomSignal(n, 64)

	spectra, err := spectral.TransformPair(s1, s2)
	require.NoError(t, err)

	re1, im1 := append([]float64(nil), s1...), make([]float64, n)
	require.NoError(t, spectral.Transform(re1, im1))
	re2, im2 := append([]float64(nil), s2...), make([]float64, n)
	require.NoError(t, spectral.Transform(re2, im2))

	testutil.AssertSpectrumClose(t, re1, im1, spectra.X1Re, spectra.X1Im, testutil.TransformTolerance)
	testutil.AssertSpectrumClose(t, re2, im2, spectra.X2Re, spectra.X2Im, testutil.TransformTolerance)
}

// TestAbsFFTPair_MatchesSingleSignalPath verifies that the packed
// magnitude path agrees with AbsFFT run separately on each signal.
func TestAbsFFTPair_MatchesSingleSignalPath(t *testing.T) {
	const n = 40

	s1 := sineSignal(n, 3)
	s2 := testutil.RandomSignal(n, 65)

	m1, m2, err := spectral.AbsFFTPair(s1, s2)
	require.NoError(t, err)
	require.Len(t, m1, n/2+1)
	require.Len(t, m2, n/2+1)

	want1, err := spectral.AbsFFT(s1)
	require.NoError(t, err)
	want2, err := spectral.AbsFFT(s2)
	require.NoError(t, err)

	testutil.AssertSignalClose(t, want1, m1, 1e-9)
	testutil.AssertSignalClose(t, want2, m2, 1e-9)
}

// TestAbsFFTPair_RejectsOddLength verifies the odd-length decision at the
// public surface.
func TestAbsFFTPair_RejectsOddLength(t *testing.T) {
	odd := testutil.RandomSignal(9, 66)
	_, _, err := spectral.AbsFFTPair(odd, odd)
	require.ErrorIs(t, err, spectral.ErrOddLength)

	_, err = spectral.TransformPair(odd, odd)
	require.ErrorIs(t, err, spectral.ErrOddLength)
}

// TestAbsDFTInterval_AgreesWithAbsFFT verifies the narrow-band direct
// evaluation against the full transform on the covered bins.
func TestAbsDFTInterval_AgreesWithAbsFFT(t *testing.T) {
	const n = 50

	signal := testutil.RandomSignal(n, 67)

	full, err := spectral.AbsFFT(signal)
	require.NoError(t, err)

	const start, stop = 5, 12
	band, err := spectral.AbsDFTInterval(signal, start, stop)
	require.NoError(t, err)
	require.Len(t, band, stop-start)

	testutil.AssertSignalClose(t, full[start:stop], band, 1e-9)
}

// TestAbsDFTInterval_Validation verifies the bin-range checks.
func TestAbsDFTInterval_Validation(t *testing.T) {
	signal := testutil.RandomSignal(16, 68)

	_, err := spectral.AbsDFTInterval(signal, -1, 4)
	require.ErrorIs(t, err, spectral.ErrInvalidBinRange)

	_, err = spectral.AbsDFTInterval(signal, 4, 2)
	require.ErrorIs(t, err, spectral.ErrInvalidBinRange)

	_, err = spectral.AbsDFTInterval(signal, 0, 10)
	require.ErrorIs(t, err, spectral.ErrInvalidBinRange)

	band, err := spectral.AbsDFTInterval(signal, 3, 3)
	require.NoError(t, err)
	assert.Empty(t, band)
}

// TestInfo verifies the frequency axis math.
func TestInfo(t *testing.T) {
	info := spectral.Info(1000, 44100)

	assert.InDelta(t, 44.1, info.DeltaF, 1e-12)
	require.Len(t, info.Frequencies, 501)
	assert.Zero(t, info.Frequencies[0])
	assert.InDelta(t, 44.1, info.Frequencies[1], 1e-12)
	assert.InDelta(t, 22050, info.Frequencies[500], 1e-9)

	empty := spectral.Info(0, 44100)
	assert.Empty(t, empty.Frequencies)
	assert.Zero(t, empty.DeltaF)
}
