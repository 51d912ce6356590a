package mathutil

import "math"

// LogZero represents log(0), the canonical "impossible event" marker for
// log-domain probability arithmetic. It is chosen far enough from zero that
// LogZero + finite stays indistinguishable from LogZero without underflowing.
const LogZero = -1e30

// LogAdd returns log(exp(a) + exp(b)) in a numerically stable way.
// Uses threshold-based early exit to skip expensive exp/log1p when the
// smaller value contributes less than float64 precision (exp(-36) ≈ 2.3e-16).
func LogAdd(a, b float64) float64 {
	if a > b {
		if b == LogZero {
			return a
		}
		d := b - a
		if d < -36.0 {
			return a
		}
		return a + math.Log1p(math.Exp(d))
	}
	if a == LogZero {
		return b
	}
	d := a - b
	if d < -36.0 {
		return b
	}
	return b + math.Log1p(math.Exp(d))
}

// LogSub returns log(exp(a) - exp(b)), assuming a >= b.
func LogSub(a, b float64) float64 {
	if b == LogZero {
		return a
	}
	if a <= b {
		return LogZero
	}
	return a + math.Log1p(-math.Exp(b-a))
}

// LogSumExp computes log(sum(exp(xs))) as m + log(sum(exp(xs[i]-m))) where
// m = max(xs). Values equal to LogZero contribute nothing to the inner sum.
// An empty slice, or a slice of all LogZero, returns LogZero.
func LogSumExp(xs ...float64) float64 {
	if len(xs) == 0 {
		return LogZero
	}
	m := LogZero
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	if m == LogZero {
		return LogZero
	}
	sum := 0.0
	for _, x := range xs {
		if x == LogZero {
			continue
		}
		sum += math.Exp(x - m)
	}
	return m + math.Log(sum)
}
