// Package hmm implements a per-instance Hidden Markov Model decoder over
// discrete observation symbols: Viterbi best-path decoding and the
// forward/backward algorithms for total sequence likelihood. Parameter
// estimation (Baum-Welch) is not implemented — model parameters are set
// directly by the caller.
//
// All probabilities are carried in natural log. There is no process-wide
// singleton: callers that want one shared model hold their own *Model
// reference, same as any other value in this package.
package hmm

import (
	"math"

	"github.com/ieee0824/recitekit/internal/mathutil"
)

// LogZero is the canonical log-domain representation of an impossible
// event, re-exported from mathutil so callers never need that import
// just to compare against it.
const LogZero = mathutil.LogZero

// Model is a discrete HMM with N hidden states and K observation symbols.
// Pi, A, and B are all initialized to LogZero (impossible) and only move
// away from it through the Set* methods.
type Model struct {
	N, K int
	Pi   []float64   // [N] initial log-probabilities
	A    [][]float64 // [N][N] transition log-probabilities, A[i][j] = i -> j
	B    [][]float64 // [N][K] emission log-probabilities, B[s][o]
}

// New builds an N-state, K-symbol model with every table at LogZero.
func New(n, k int) *Model {
	return &Model{
		N:  n,
		K:  k,
		Pi: mathutil.NewVecFill(n, mathutil.LogZero),
		A:  mathutil.NewMatFill(n, n, mathutil.LogZero),
		B:  mathutil.NewMatFill(n, k, mathutil.LogZero),
	}
}

// SetInitial stores log(p) as the initial probability of state s. Indices
// out of range, or p <= 0, leave the table unchanged.
func (m *Model) SetInitial(s int, p float64) {
	if p <= 0 || s < 0 || s >= m.N {
		return
	}
	m.Pi[s] = logOf(p)
}

// SetTransition stores log(p) as the probability of transitioning from
// state i to state j. Indices out of range, or p <= 0, leave the table
// unchanged.
func (m *Model) SetTransition(i, j int, p float64) {
	if p <= 0 || i < 0 || i >= m.N || j < 0 || j >= m.N {
		return
	}
	m.A[i][j] = logOf(p)
}

// SetEmission stores log(p) as the probability of state s emitting symbol
// o. Indices out of range, or p <= 0, leave the table unchanged.
func (m *Model) SetEmission(s, o int, p float64) {
	if p <= 0 || s < 0 || s >= m.N || o < 0 || o >= m.K {
		return
	}
	m.B[s][o] = logOf(p)
}

func logOf(p float64) float64 {
	return math.Log(p)
}
