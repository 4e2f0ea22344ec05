package spectral

import (
	"errors"

	"github.com/tphakala/go-spectral/internal/engine"
)

// Common errors returned by the spectral functions. Errors from the
// transform core are surfaced unchanged, so errors.Is matches these
// regardless of which layer detected the condition.
var (
	// ErrLengthMismatch indicates that paired input slices (real and
	// imaginary halves, or two operands) have different lengths.
	ErrLengthMismatch = engine.ErrLengthMismatch

	// ErrSizeOverflow indicates that the working-length arithmetic for
	// the requested transform would overflow the int size domain.
	ErrSizeOverflow = engine.ErrSizeOverflow

	// ErrOddLength indicates an odd-length input to the dual-signal
	// functions, which require an even bin count for their symmetry
	// separation.
	ErrOddLength = engine.ErrOddLength

	// ErrInvalidBinRange indicates an out-of-range bin interval passed to
	// AbsDFTInterval.
	ErrInvalidBinRange = errors.New("invalid spectrum bin range")
)
