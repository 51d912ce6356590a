package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractMFCCSilence is scenario S1: a silent frame produces constant
// log-mel energies of log(1e-10), so c[0] = NumMelFilters*log(1e-10) and
// every higher coefficient collapses to ~0 (DCT-II of a constant signal).
func TestExtractMFCCSilence(t *testing.T) {
	frame := make([]float64, 512)
	mfcc := ExtractMFCC(frame, 512, NumMFCCCoeffs)
	require.Len(t, mfcc, NumMFCCCoeffs)

	wantLogE := math.Log(MelLogEpsilon)
	assert.InDelta(t, -23.0259, wantLogE, 1e-3)

	wantC0 := float64(NumMelFilters) * wantLogE
	assert.InDelta(t, -598.673, wantC0, 1e-2)
	assert.InDelta(t, wantC0, mfcc[0], 1e-6)

	for k := 1; k < len(mfcc); k++ {
		assert.InDelta(t, 0.0, mfcc[k], 1e-6, "c[%d] should be ~0 for silence", k)
	}
}

func TestExtractMFCCDimension(t *testing.T) {
	frame := make([]float64, 512)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 220 * float64(i) / SampleRate)
	}
	mfcc := ExtractMFCC(frame, 512, 13)
	assert.Len(t, mfcc, 13)
}

func TestExtractMFCCDoesNotMutateCaller(t *testing.T) {
	frame := []float64{0.1, 0.2, 0.3, 0.4}
	orig := append([]float64(nil), frame...)
	ExtractMFCC(frame, len(frame), 5)
	assert.Equal(t, orig, frame)
}

func TestProcessAudioFramesDropsPartialTrailer(t *testing.T) {
	audio := make([]float64, 1000)
	frames := ProcessAudioFrames(audio, 256, 128)
	// starts: 0,128,256,...,640 all satisfy start+256<=1000 -> (1000-256)/128+1 = 6
	assert.Len(t, frames, 6)
	for _, f := range frames {
		assert.Len(t, f, NumMFCCCoeffs)
	}
}

// TestProcessAudioFramesMatchesPerFrameExtraction checks that the cached
// DFT workspace ProcessAudioFrames uses internally doesn't change the
// result compared to calling ExtractMFCC independently on each frame.
func TestProcessAudioFramesMatchesPerFrameExtraction(t *testing.T) {
	audio := make([]float64, 768)
	for i := range audio {
		audio[i] = math.Sin(2 * math.Pi * 150 * float64(i) / SampleRate)
	}

	got := ProcessAudioFrames(audio, 256, 256)
	slides := SlideFrames(audio, 256, 256)
	require.Len(t, got, len(slides))

	for i, frame := range slides {
		want := ExtractMFCC(frame, 256, NumMFCCCoeffs)
		require.Len(t, got[i], len(want))
		for k := range want {
			assert.InDelta(t, want[k], got[i][k], 1e-9)
		}
	}
}
