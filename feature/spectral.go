package feature

// CalculateSpectralCentroid computes the magnitude-weighted mean frequency
// of frame. The frequency axis is i*sampleRate/(2*(len(S)-1)) where S is
// the L/2+1-bin magnitude spectrum — note this is not the textbook
// i*sampleRate/L axis, it's tied to len(S)-1 = L/2 by design. Returns 0.0
// when the spectrum carries no energy.
func CalculateSpectralCentroid(frame []float64, sampleRate float64) float64 {
	spectrum := DFTMagnitude(frame)
	n := len(spectrum)

	var weightedSum, magnitudeSum float64
	denom := 2 * float64(n-1)
	for i, s := range spectrum {
		freq := float64(i) * sampleRate / denom
		weightedSum += freq * s
		magnitudeSum += s
	}

	if magnitudeSum <= 0 {
		return 0.0
	}
	return weightedSum / magnitudeSum
}
