// Package dtw aligns two time series of feature vectors (e.g. a reference
// recitation against a user's) with Dynamic Time Warping, producing a
// scalar distance and, on request, the optimal monotone warping path.
package dtw

import (
	"math"

	"github.com/ieee0824/recitekit/internal/mathutil"
)

// Options configures one DTW computation.
type Options struct {
	// BandWidth constrains the search to |i-j| <= BandWidth (a Sakoe-Chiba
	// band). Values <= 0 mean "unconstrained" and are internally widened
	// to max(n, m) so the whole matrix is reachable.
	BandWidth int
	Metric    Metric
	// ReturnPath requests backtracking the optimal warping path. The cost
	// matrix is always filled in full; ReturnPath only controls whether
	// the backtrack runs afterward.
	ReturnPath bool
}

// DefaultOptions returns Euclidean distance, an unconstrained band, and no
// path recovery.
func DefaultOptions() Options {
	return Options{BandWidth: 0, Metric: Euclidean, ReturnPath: false}
}

// Result is the outcome of one DTW computation.
type Result struct {
	Distance           float64
	NormalizedDistance float64
	Path               [][2]int
	CostMatrix         mathutil.FlatMat
}

// Compute runs DTW between seq1 (length n) and seq2 (length m). Each
// element is a feature vector; vectors compared against each other must
// share the same dimension or their local distance is +Inf (which then
// propagates through every min() touching that cell).
//
// An empty seq1 or seq2 returns distance +Inf, an empty path, and an empty
// cost matrix — there is no admissible path through zero cells.
func Compute(seq1, seq2 [][]float64, opts Options) Result {
	n, m := len(seq1), len(seq2)
	if n == 0 || m == 0 {
		return Result{Distance: math.Inf(1)}
	}

	band := opts.BandWidth
	if band <= 0 {
		band = max(n, m)
	}

	cost := mathutil.NewFlatMatFill(n, m, math.Inf(1))

	cost.Set(0, 0, distance(seq1[0], seq2[0], opts.Metric))

	for j := 1; j <= min(m-1, band); j++ {
		cost.Set(0, j, cost.At(0, j-1)+distance(seq1[0], seq2[j], opts.Metric))
	}
	for i := 1; i <= min(n-1, band); i++ {
		cost.Set(i, 0, cost.At(i-1, 0)+distance(seq1[i], seq2[0], opts.Metric))
	}

	for i := 1; i < n; i++ {
		jStart := max(1, i-band)
		jEnd := min(m, i+band+1)
		for j := jStart; j < jEnd; j++ {
			if abs(i-j) > band {
				continue // stays +Inf
			}
			d := distance(seq1[i], seq2[j], opts.Metric)

			best := math.Inf(1)
			if i > 0 && j > 0 {
				best = minf(best, cost.At(i-1, j-1))
			}
			if i > 0 {
				best = minf(best, cost.At(i-1, j))
			}
			if j > 0 {
				best = minf(best, cost.At(i, j-1))
			}
			cost.Set(i, j, d+best)
		}
	}

	dist := cost.At(n-1, m-1)
	result := Result{
		Distance:           dist,
		NormalizedDistance: dist / float64(max(n, m)),
		CostMatrix:         cost,
	}

	if opts.ReturnPath {
		result.Path = backtrack(cost, n, m)
	}

	return result
}

// Distance runs Compute without path recovery and returns just the
// (distance, normalized_distance) pair.
func Distance(seq1, seq2 [][]float64, bandWidth int, metric Metric) (float64, float64) {
	r := Compute(seq1, seq2, Options{BandWidth: bandWidth, Metric: metric})
	return r.Distance, r.NormalizedDistance
}

// Align runs Compute with path recovery enabled.
func Align(seq1, seq2 [][]float64, bandWidth int, metric Metric) Result {
	return Compute(seq1, seq2, Options{BandWidth: bandWidth, Metric: metric, ReturnPath: true})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
