// Package mathutil provides integer size arithmetic for transform planning.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrSizeOverflow is returned when a requested length cannot be represented
// in the int size domain without wrapping.
var ErrSizeOverflow = errors.New("transform size overflows int")

// IsPowerOfTwo reports whether n is an exact power of two.
// Zero and negative values are not powers of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for n >= 1.
func Log2(n int) int {
	levels := 0
	for t := n; t > 1; t >>= 1 {
		levels++
	}
	return levels
}

// ConvolutionLength returns the smallest power of two m with m >= 2n+1.
// This is the working length of the chirp-transform convolution for an
// n-point transform. Both the 2n+1 target and the doubling of m are
// guarded against overflow, so the error is reported deterministically
// before any buffer of length m could be requested.
func ConvolutionLength(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative length %d", n)
	}
	if n > (math.MaxInt-1)/2 {
		return 0, fmt.Errorf("%w: 2*%d+1 not representable", ErrSizeOverflow, n)
	}
	target := 2*n + 1
	m := 1
	for m < target {
		if m > math.MaxInt/2 {
			return 0, fmt.Errorf("%w: no power of two >= %d", ErrSizeOverflow, target)
		}
		m *= 2
	}
	return m, nil
}

// ReverseBits reverses the low `bits` bits of x.
// The caller guarantees 0 <= x < 1<<bits and bits fits the index domain;
// indices outside that range have no meaning for a transform of 1<<bits
// samples.
func ReverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = result<<1 | x&1
		x >>= 1
	}
	return result
}
