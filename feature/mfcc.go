package feature

// ExtractMFCC turns one PCM frame into an MFCC vector following the strict
// pipeline: pre-emphasis, Hamming window, direct DFT magnitude, a
// NumMelFilters-band Mel filterbank, log energies floored by
// MelLogEpsilon, then a non-normalised DCT-II producing numCoeffs
// coefficients. The Mel filterbank is rebuilt on every call — this
// package caches nothing between calls, so two calls with the same
// (frameLength, sampleRate) always do the same work twice.
func ExtractMFCC(frame []float64, frameLength, numCoeffs int) []float64 {
	return ExtractMFCCRate(frame, frameLength, numCoeffs, SampleRate)
}

// ExtractMFCCRate is ExtractMFCC with an explicit sample rate, used when a
// caller's audio isn't captured at the ABI default of 44100 Hz.
func ExtractMFCCRate(frame []float64, frameLength, numCoeffs int, sampleRate float64) []float64 {
	work := make([]float64, frameLength)
	copy(work, frame) // frame shorter than frameLength is zero-padded

	PreEmphasize(work, PreEmphasis)

	window := HammingWindow(frameLength)
	ApplyWindow(work, window)

	spectrum := DFTMagnitude(work)

	fb := NewMelFilterbank(frameLength, sampleRate)
	logEnergies := fb.LogEnergies(spectrum)

	return DCT(logEnergies, numCoeffs)
}

// ProcessAudioFrames slides a window of length frameLength over audio with
// the given hop and emits the MFCC vector of every full frame, in order.
// A trailing partial frame that doesn't fill frameLength samples is
// dropped, matching SlideFrames.
//
// Every frame shares one frameLength, so the DFT's cos/sin table is built
// once with newDFTWorkspace and reused across all of them; the Mel
// filterbank is still rebuilt per frame, unlike the DFT table this isn't
// allowed to be cached.
func ProcessAudioFrames(audio []float64, frameLength, hop int) [][]float64 {
	frames := SlideFrames(audio, frameLength, hop)
	out := make([][]float64, len(frames))
	if len(frames) == 0 {
		return out
	}

	ws := newDFTWorkspace(frameLength)
	window := HammingWindow(frameLength)
	spectrum := make([]float64, frameLength/2+1)
	work := make([]float64, frameLength)

	for i, frame := range frames {
		copy(work, frame)
		PreEmphasize(work, PreEmphasis)
		ApplyWindow(work, window)
		ws.magnitudeInto(work, spectrum)

		fb := NewMelFilterbank(frameLength, SampleRate)
		logEnergies := fb.LogEnergies(spectrum)
		out[i] = DCT(logEnergies, NumMFCCCoeffs)
	}
	return out
}
