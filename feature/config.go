// Package feature turns a mono PCM audio frame into a compact perceptual
// feature vector (Mel-Frequency Cepstral Coefficients) plus auxiliary
// scalar descriptors (pitch, spectral centroid). All algorithms work
// directly off the spectrum magnitude via a direct O(L^2) DFT; there is
// no FFT in this package by design, and no frame is ever resampled or
// read from disk.
package feature

// Numeric constants fixed by the recitation-alignment ABI. Changing any
// of these changes the observable output of ExtractMFCC and is a breaking
// change for callers comparing against stored reference features.
const (
	NumMelFilters   = 26
	NumMFCCCoeffs   = 13
	SampleRate      = 44100.0
	PreEmphasis     = 0.97
	MelLogEpsilon   = 1e-10
	DefaultMinPitch = 80.0
	DefaultMaxPitch = 400.0
)

// Config bundles the parameters of a single ExtractMFCCRate call so callers don't
// have to thread sample rate and coefficient count through every function.
type Config struct {
	SampleRate float64
	NumCoeffs  int
}

// DefaultConfig returns the ABI default: 44100 Hz, 13 cepstral coefficients.
func DefaultConfig() Config {
	return Config{
		SampleRate: SampleRate,
		NumCoeffs:  NumMFCCCoeffs,
	}
}
