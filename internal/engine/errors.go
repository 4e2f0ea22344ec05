package engine

import (
	"errors"

	"github.com/tphakala/go-spectral/internal/mathutil"
)

// Sentinel errors reported by the transform core. The root package
// re-exports these so callers can match them with errors.Is.
var (
	// ErrLengthMismatch is returned when the real and imaginary halves of
	// a signal (or paired operands) have different lengths.
	ErrLengthMismatch = errors.New("signal component lengths differ")

	// ErrNotPowerOfTwo is returned by the radix-2 path when its
	// power-of-two precondition is violated. The dispatcher never routes
	// such lengths to radix-2, so seeing this error indicates a direct
	// misuse of the radix-2 entry point.
	ErrNotPowerOfTwo = errors.New("length is not a power of two")

	// ErrOddLength is returned by the dual-real packing adapter, whose
	// spectrum separation relies on an even bin count.
	ErrOddLength = errors.New("length is not even")

	// ErrSizeOverflow is returned when size arithmetic for a working
	// buffer would wrap the int domain.
	ErrSizeOverflow = mathutil.ErrSizeOverflow
)
