package spectral

// Spectrum scaling constants.
const (
	// onesidedScale folds the energy of the mirrored upper half of a
	// real-input spectrum into the one-sided bins, so a unit sine reads
	// as magnitude 1 at its bin.
	onesidedScale = 2.0
)
