package hmm

import "github.com/ieee0824/recitekit/internal/mathutil"

// Backward computes log P(obs | model) via the backward recursion, used
// alongside Forward to sanity-check the two agree. Only the total is
// returned; the beta table is not exposed. An empty obs returns LogZero.
func (m *Model) Backward(obs []int) float64 {
	T := len(obs)
	if T == 0 {
		return LogZero
	}

	beta := make([][]float64, T)
	beta[T-1] = mathutil.NewVecFill(m.N, 0)

	for t := T - 2; t >= 0; t-- {
		beta[t] = make([]float64, m.N)
		if obs[t+1] >= m.K {
			for s := range beta[t] {
				beta[t][s] = LogZero
			}
			continue
		}
		terms := make([]float64, m.N)
		for s := 0; s < m.N; s++ {
			for sp := 0; sp < m.N; sp++ {
				terms[sp] = m.A[s][sp] + m.B[sp][obs[t+1]] + beta[t+1][sp]
			}
			beta[t][s] = mathutil.LogSumExp(terms...)
		}
	}

	if obs[0] >= m.K {
		return LogZero
	}
	terms := make([]float64, m.N)
	for s := 0; s < m.N; s++ {
		terms[s] = m.Pi[s] + m.B[s][obs[0]] + beta[0][s]
	}
	return mathutil.LogSumExp(terms...)
}
