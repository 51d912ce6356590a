package feature

import "math"

// MelFilterbank is a NumMelFilters x (L/2+1) triangular filterbank derived
// deterministically from (frameLength, sampleRate). Each row has
// contiguous, non-negative support and peaks at 1.0 at its centre bin.
type MelFilterbank struct {
	Filters [][]float64 // [NumMelFilters][L/2+1]
}

// hzToMel converts a frequency in Hz to the Mel scale.
func hzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// melToHz converts a Mel value back to Hz.
func melToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10, mel/2595.0) - 1.0)
}

// NewMelFilterbank builds the NumMelFilters triangular filters for a frame
// of length L sampled at sampleRate. This spec mandates no cache: every
// caller that wants one recomputes it, though the result is immutable
// once built and safe to share across goroutines once populated.
func NewMelFilterbank(L int, sampleRate float64) *MelFilterbank {
	nBins := L/2 + 1
	lowMel := hzToMel(0)
	highMel := hzToMel(sampleRate / 2)

	numPoints := NumMelFilters + 2
	melPoints := make([]float64, numPoints)
	step := (highMel - lowMel) / float64(numPoints-1)
	for i := range melPoints {
		melPoints[i] = lowMel + float64(i)*step
	}

	bin := make([]int, numPoints)
	for i, m := range melPoints {
		hz := melToHz(m)
		bin[i] = int(math.Floor(float64(L+1) * hz / sampleRate))
	}

	filters := make([][]float64, NumMelFilters)
	for m := 1; m <= NumMelFilters; m++ {
		row := make([]float64, nBins)
		left, center, right := bin[m-1], bin[m], bin[m+1]

		for k := left; k < center && k >= 0 && k < nBins; k++ {
			if center != left {
				row[k] = float64(k-left) / float64(center-left)
			}
		}
		for k := center; k <= right && k >= 0 && k < nBins; k++ {
			if right != center {
				row[k] = float64(right-k) / float64(right-center)
			}
		}
		filters[m-1] = row
	}

	return &MelFilterbank{Filters: filters}
}

// LogEnergies multiplies spectrum through each filter and returns the
// natural log of the summed energy, floored by MelLogEpsilon so the log
// never sees zero.
func (fb *MelFilterbank) LogEnergies(spectrum []float64) []float64 {
	energies := make([]float64, len(fb.Filters))
	for i, row := range fb.Filters {
		sum := 0.0
		n := len(row)
		if len(spectrum) < n {
			n = len(spectrum)
		}
		for k := 0; k < n; k++ {
			sum += spectrum[k] * row[k]
		}
		energies[i] = math.Log(sum + MelLogEpsilon)
	}
	return energies
}

// DCT applies a non-normalised Type-II DCT to logMelEnergies, producing
// numCoeffs cepstral coefficients:
//
//	c[k] = sum_n E[n] * cos(pi*k*(2n+1)/(2*M))
func DCT(logMelEnergies []float64, numCoeffs int) []float64 {
	m := len(logMelEnergies)
	out := make([]float64, numCoeffs)
	for k := 0; k < numCoeffs; k++ {
		sum := 0.0
		for n, e := range logMelEnergies {
			sum += e * math.Cos(math.Pi*float64(k)*(2*float64(n)+1)/(2*float64(m)))
		}
		out[k] = sum
	}
	return out
}
