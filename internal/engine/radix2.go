package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-spectral/internal/mathutil"
)

// twiddleTables precomputes cos(2πi/n) and sin(2πi/n) for i in [0, n/2).
// The butterfly stages index these with stride n/size, so a single
// half-length table serves every stage.
func twiddleTables(n int) (cosTab, sinTab []float64) {
	half := n / 2
	cosTab = make([]float64, half)
	sinTab = make([]float64, half)
	for i := 0; i < half; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		sinTab[i], cosTab[i] = math.Sincos(angle)
	}
	return cosTab, sinTab
}

// transformRadix2 computes the forward DFT of (re, im) in place using the
// iterative decimation-in-time Cooley-Tukey algorithm. The length must be
// a power of two; this is verified here rather than trusted, since the
// bit-reversal permutation below is meaningless for other lengths.
func transformRadix2(re, im []float64) error {
	n := len(re)
	if n <= 1 {
		return nil
	}

	levels := mathutil.Log2(n)
	if 1<<levels != n {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	cosTab, sinTab := twiddleTables(n)

	// Bit-reversed addressing permutation. Swapping only when j > i
	// visits each pair exactly once.
	for i := 0; i < n; i++ {
		j := mathutil.ReverseBits(i, levels)
		if j > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	// Butterfly stages, doubling the span each level.
	for size := 2; size <= n; size *= 2 {
		halfsize := size / 2
		tablestep := n / size
		for i := 0; i < n; i += size {
			for j, k := i, 0; j < i+halfsize; j, k = j+1, k+tablestep {
				tre := re[j+halfsize]*cosTab[k] + im[j+halfsize]*sinTab[k]
				tim := -re[j+halfsize]*sinTab[k] + im[j+halfsize]*cosTab[k]
				re[j+halfsize] = re[j] - tre
				im[j+halfsize] = im[j] - tim
				re[j] += tre
				im[j] += tim
			}
		}
		if size == n {
			// Prevent overflow in size *= 2.
			break
		}
	}

	return nil
}
