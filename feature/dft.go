package feature

import "math"

// DFTMagnitude computes |X[k]| for k = 0..L/2 using a direct O(L^2)
// summation, not a fast Fourier transform:
//
//	X[k] = sum_n x[n] * exp(-j*2*pi*k*n/L)
//
// This is intentionally quadratic; the sizes used for recitation frames
// (hundreds to low thousands of samples) make the direct sum acceptable,
// and it sidesteps the power-of-two framing an FFT would otherwise impose.
func DFTMagnitude(x []float64) []float64 {
	L := len(x)
	nBins := L/2 + 1
	mag := make([]float64, nBins)
	if L == 0 {
		return mag
	}
	dftInto(x, mag)
	return mag
}

// dftWorkspace caches the cos/sin tables for a fixed frame length L so that
// repeated calls (e.g. one per frame in ProcessAudioFrames) don't rebuild
// the O(L^2) table of angles each time.
type dftWorkspace struct {
	length int
	cosTbl [][]float64 // [nBins][L]
	sinTbl [][]float64
}

func newDFTWorkspace(L int) *dftWorkspace {
	nBins := L/2 + 1
	ws := &dftWorkspace{
		length: L,
		cosTbl: make([][]float64, nBins),
		sinTbl: make([][]float64, nBins),
	}
	for k := 0; k < nBins; k++ {
		ws.cosTbl[k] = make([]float64, L)
		ws.sinTbl[k] = make([]float64, L)
		for n := 0; n < L; n++ {
			angle := -2 * math.Pi * float64(k) * float64(n) / float64(L)
			ws.cosTbl[k][n] = math.Cos(angle)
			ws.sinTbl[k][n] = math.Sin(angle)
		}
	}
	return ws
}

// magnitudeInto writes |X[k]| for k = 0..L/2 into dst (len(dst) == L/2+1).
func (ws *dftWorkspace) magnitudeInto(x []float64, dst []float64) {
	for k, cosRow := range ws.cosTbl {
		sinRow := ws.sinTbl[k]
		var re, im float64
		for n, xn := range x {
			re += xn * cosRow[n]
			im += xn * sinRow[n]
		}
		dst[k] = math.Hypot(re, im)
	}
}

// dftInto is the uncached single-shot version used by DFTMagnitude.
func dftInto(x []float64, dst []float64) {
	L := len(x)
	for k := range dst {
		var re, im float64
		angleStep := -2 * math.Pi * float64(k) / float64(L)
		for n, xn := range x {
			angle := angleStep * float64(n)
			re += xn * math.Cos(angle)
			im += xn * math.Sin(angle)
		}
		dst[k] = math.Hypot(re, im)
	}
}
