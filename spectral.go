package spectral

import (
	"github.com/tphakala/go-spectral/internal/engine"
)

// Transform computes the forward DFT of the split-complex signal
// (re, im) in place. The two slices must have equal length; any length
// including zero is accepted. The result is unnormalized. On error the
// slice contents are unspecified and must be discarded.
func Transform(re, im []float64) error {
	return engine.Transform(re, im)
}

// InverseTransform computes the unnormalized inverse DFT of (re, im) in
// place. Divide every sample by the length to reconstruct the original
// signal after a forward transform.
func InverseTransform(re, im []float64) error {
	return engine.InverseTransform(re, im)
}

// ConvolveReal returns the circular convolution of two real sequences of
// equal length. The inputs are not modified.
func ConvolveReal(x, y []float64) ([]float64, error) {
	return engine.ConvolveReal(x, y)
}

// ConvolveComplex returns the circular convolution of two split-complex
// sequences of equal length. The inputs are not modified.
func ConvolveComplex(xr, xi, yr, yi []float64) (outRe, outIm []float64, err error) {
	return engine.ConvolveComplex(xr, xi, yr, yi)
}
