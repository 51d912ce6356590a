package feature_test

import (
	"fmt"
	"math"

	"github.com/ieee0824/recitekit/feature"
)

// ExampleExtractMFCC extracts a 13-coefficient MFCC vector from one frame
// of a synthetic 440 Hz tone.
func ExampleExtractMFCC() {
	const frameLen = 512
	frame := make([]float64, frameLen)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 440 * float64(i) / feature.SampleRate)
	}

	mfcc := feature.ExtractMFCC(frame, frameLen, feature.NumMFCCCoeffs)
	fmt.Println("coefficients:", len(mfcc))
	// Output:
	// coefficients: 13
}

// ExampleCalculatePitch estimates the fundamental frequency of a 300 Hz tone.
func ExampleCalculatePitch() {
	frame := make([]float64, 2048)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 300 * float64(i) / 44100)
	}
	pitch := feature.CalculatePitch(frame, 44100, feature.DefaultMinPitch, feature.DefaultMaxPitch)
	fmt.Println(pitch > 290 && pitch < 310)
	// Output:
	// true
}
