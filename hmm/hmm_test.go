package hmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScenarioS6 builds the two-state, two-symbol model from scenario S6:
// Pi = (0.6, 0.4), A = [[0.7,0.3],[0.4,0.6]], B = [[0.5,0.5],[0.1,0.9]].
func newScenarioS6() *Model {
	m := New(2, 2)
	m.SetInitial(0, 0.6)
	m.SetInitial(1, 0.4)
	m.SetTransition(0, 0, 0.7)
	m.SetTransition(0, 1, 0.3)
	m.SetTransition(1, 0, 0.4)
	m.SetTransition(1, 1, 0.6)
	m.SetEmission(0, 0, 0.5)
	m.SetEmission(0, 1, 0.5)
	m.SetEmission(1, 0, 0.1)
	m.SetEmission(1, 1, 0.9)
	return m
}

func TestViterbiScenarioS6(t *testing.T) {
	m := newScenarioS6()
	path := m.Viterbi([]int{0, 1, 1})
	assert.Equal(t, []int{0, 1, 1}, path)
}

func TestForwardScenarioS6(t *testing.T) {
	m := newScenarioS6()
	ll := m.Forward([]int{0, 1, 1})
	// alpha[0] = (0.3, 0.04), alpha[1] = (0.113, 0.1026),
	// alpha[2] = (0.06007, 0.085914); P(obs) = 0.145984.
	assert.InDelta(t, math.Log(0.145984), ll, 1e-3)
}

// TestForwardBackwardAgree is property 7: Forward and Backward must agree
// on the total log-likelihood of the same observation sequence.
func TestForwardBackwardAgree(t *testing.T) {
	m := newScenarioS6()
	obs := []int{0, 1, 1, 0, 1}
	fwd := m.Forward(obs)
	bwd := m.Backward(obs)
	assert.InDelta(t, fwd, bwd, 1e-9)
}

// TestViterbiNeverExceedsForward is property 8: the single best path's log
// probability can never exceed the total log-likelihood over all paths.
func TestViterbiNeverExceedsForward(t *testing.T) {
	m := newScenarioS6()
	obs := []int{0, 1, 0, 1, 1}
	path := m.Viterbi(obs)
	require.Len(t, path, len(obs))

	viterbiLL := m.Pi[path[0]] + m.B[path[0]][obs[0]]
	for t := 1; t < len(obs); t++ {
		viterbiLL += m.A[path[t-1]][path[t]] + m.B[path[t]][obs[t]]
	}

	forwardLL := m.Forward(obs)
	assert.LessOrEqual(t, viterbiLL, forwardLL+1e-9)
}

func TestViterbiEmptyObservation(t *testing.T) {
	m := newScenarioS6()
	assert.Nil(t, m.Viterbi(nil))
}

func TestForwardEmptyObservationIsLogZero(t *testing.T) {
	m := newScenarioS6()
	assert.Equal(t, LogZero, m.Forward(nil))
}

func TestBackwardEmptyObservationIsLogZero(t *testing.T) {
	m := newScenarioS6()
	assert.Equal(t, LogZero, m.Backward(nil))
}

func TestForwardOutOfVocabularyIsLogZero(t *testing.T) {
	m := newScenarioS6()
	ll := m.Forward([]int{0, 7, 1})
	assert.Equal(t, LogZero, ll)
}

func TestSettersIgnoreInvalidInput(t *testing.T) {
	m := New(2, 2)
	m.SetInitial(-1, 0.5)
	m.SetInitial(5, 0.5)
	m.SetInitial(0, 0)
	m.SetInitial(0, -1)
	assert.Equal(t, LogZero, m.Pi[0])

	m.SetTransition(-1, 0, 0.5)
	m.SetTransition(0, 5, 0.5)
	m.SetTransition(0, 0, 0)
	assert.Equal(t, LogZero, m.A[0][0])

	m.SetEmission(-1, 0, 0.5)
	m.SetEmission(0, 5, 0.5)
	m.SetEmission(0, 0, 0)
	assert.Equal(t, LogZero, m.B[0][0])
}

func TestNewModelStartsAtLogZero(t *testing.T) {
	m := New(3, 4)
	for s := 0; s < 3; s++ {
		assert.Equal(t, LogZero, m.Pi[s])
		for sp := 0; sp < 3; sp++ {
			assert.Equal(t, LogZero, m.A[s][sp])
		}
		for o := 0; o < 4; o++ {
			assert.Equal(t, LogZero, m.B[s][o])
		}
	}
}

func TestViterbiTieBreaksToEarliestState(t *testing.T) {
	m := New(2, 1)
	m.SetInitial(0, 0.5)
	m.SetInitial(1, 0.5)
	m.SetTransition(0, 0, 0.5)
	m.SetTransition(0, 1, 0.5)
	m.SetTransition(1, 0, 0.5)
	m.SetTransition(1, 1, 0.5)
	m.SetEmission(0, 0, 1.0)
	m.SetEmission(1, 0, 1.0)

	path := m.Viterbi([]int{0, 0})
	assert.Equal(t, 0, path[0])
}
