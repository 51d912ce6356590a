package feature

import "math"

// PreEmphasize applies the first-order high-pass filter x[i] -= 0.97*x[i-1]
// in place, walking from the end of the frame down to index 1. The reverse
// direction matters: each update must read the original x[i-1], not a value
// already rewritten by the filter, so the loop has to run backwards rather
// than forwards. x[0] is left unchanged.
func PreEmphasize(frame []float64, coeff float64) {
	for i := len(frame) - 1; i >= 1; i-- {
		frame[i] -= coeff * frame[i-1]
	}
}

// HammingWindow returns a Hamming window of the given length.
// w[i] = 0.54 - 0.46*cos(2*pi*i/(L-1)).
func HammingWindow(length int) []float64 {
	w := make([]float64, length)
	if length == 1 {
		w[0] = 1
		return w
	}
	denom := float64(length - 1)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/denom)
	}
	return w
}

// ApplyWindow multiplies frame by window element-wise, in place.
func ApplyWindow(frame, window []float64) {
	for i := range frame {
		frame[i] *= window[i]
	}
}

// SlideFrames slides a window of length frameLen over audio with the given
// hop (stride), returning one slice per full frame in order. A trailing
// partial frame that doesn't fill frameLen samples is dropped.
func SlideFrames(audio []float64, frameLen, hop int) [][]float64 {
	if frameLen <= 0 || hop <= 0 {
		return nil
	}
	var frames [][]float64
	for start := 0; start+frameLen <= len(audio); start += hop {
		frame := make([]float64, frameLen)
		copy(frame, audio[start:start+frameLen])
		frames = append(frames, frame)
	}
	return frames
}
