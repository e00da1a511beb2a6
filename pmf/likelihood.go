// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import "math"

// Bernoulli is the likelihood of a single success/failure trial when
// the hypothesis is the success probability itself. It satisfies
// Likelihood[bool, float64].
func Bernoulli(success bool, hypo float64) float64 {
	if success {
		return hypo
	}
	return 1 - hypo
}

// BernoulliPercent is Bernoulli over an integer grid of percentages,
// the usual discretization of an unknown probability onto hypotheses
// 0 through 100. It satisfies Likelihood[bool, int].
func BernoulliPercent(success bool, hypo int) float64 {
	return Bernoulli(success, float64(hypo)/100)
}

// Trials is an aggregated binomial observation: K successes out of N
// independent trials.
type Trials struct {
	N, K int
}

// Binomial is the likelihood of observing an aggregated Trials count
// when the hypothesis is the per-trial success probability. It
// satisfies Likelihood[Trials, float64] and returns 0 for impossible
// counts or hypotheses outside [0, 1].
func Binomial(data Trials, hypo float64) float64 {
	if data.K < 0 || data.K > data.N || hypo < 0 || hypo > 1 {
		return 0
	}
	return choose(data.N, data.K) *
		math.Pow(hypo, float64(data.K)) *
		math.Pow(1-hypo, float64(data.N-data.K))
}

// choose returns the binomial coefficient C(n, k), computed through
// log-gamma to avoid overflow for moderate n.
func choose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return math.Exp(a - b - c)
}
