package hmm

import "github.com/ieee0824/recitekit/internal/mathutil"

// Forward computes log P(obs | model) by summing over every state path,
// using the log-sum-exp trick at each recursion step instead of Viterbi's
// max. An out-of-vocabulary symbol at t >= 1 leaves that whole column at
// LogZero, same caveat as Viterbi. An empty obs returns LogZero.
func (m *Model) Forward(obs []int) float64 {
	T := len(obs)
	if T == 0 {
		return LogZero
	}

	alpha := make([][]float64, T)
	alpha[0] = make([]float64, m.N)
	for s := 0; s < m.N; s++ {
		if obs[0] < m.K {
			alpha[0][s] = m.Pi[s] + m.B[s][obs[0]]
		} else {
			alpha[0][s] = LogZero
		}
	}

	for t := 1; t < T; t++ {
		alpha[t] = make([]float64, m.N)
		if obs[t] >= m.K {
			for s := range alpha[t] {
				alpha[t][s] = LogZero
			}
			continue
		}
		terms := make([]float64, m.N)
		for s := 0; s < m.N; s++ {
			for sp := 0; sp < m.N; sp++ {
				terms[sp] = alpha[t-1][sp] + m.A[sp][s]
			}
			alpha[t][s] = mathutil.LogSumExp(terms...) + m.B[s][obs[t]]
		}
	}

	return mathutil.LogSumExp(alpha[T-1]...)
}
