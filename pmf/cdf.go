// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import (
	"cmp"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Cdf is the cumulative distribution of a PMF: a non-decreasing
// right-continuous step function over the sorted support. It is a
// snapshot; later mutation of the source PMF is not reflected.
type Cdf[Q cmp.Ordered] struct {
	qs  []Q
	cum []float64
}

// quantileSlack absorbs floating-point overshoot when a requested
// cumulative probability exceeds the final cumulative value of a
// normalized distribution. Requests beyond the slack are undefined
// rather than clamped.
const quantileSlack = 1e-9

// MakeCdf builds the cumulative distribution of p by sorting the
// support ascending and prefix-summing the weights. The weights are
// used as-is: building the Cdf of an unnormalized PMF gives a step
// function that tops out at the total mass instead of 1.
func (p *Pmf[Q]) MakeCdf() *Cdf[Q] {
	sp := p.Copy().Sort()
	c := &Cdf[Q]{qs: sp.qs, cum: make([]float64, len(sp.ws))}
	floats.CumSum(c.cum, sp.ws)
	return c
}

// Prob returns the cumulative probability P(X ≤ q). For q below the
// support it returns 0; for q above it returns the final cumulative
// value.
func (c *Cdf[Q]) Prob(q Q) float64 {
	i, found := slices.BinarySearch(c.qs, q)
	if found {
		return c.cum[i]
	}
	if i == 0 {
		return 0
	}
	return c.cum[i-1]
}

// Quantile returns the smallest quantity q with P(X ≤ q) ≥ p, the
// "next" step rule. For p below the first cumulative value the result
// clamps to the smallest quantity in the support and ok is true. For
// p above the final cumulative value (beyond a small floating-point
// guard band) there is no such quantity and ok is false; the
// asymmetry between a clamped low query and an undefined high one is
// deliberate, flagging numerical overshoot instead of hiding it.
func (c *Cdf[Q]) Quantile(p float64) (q Q, ok bool) {
	if len(c.qs) == 0 {
		return q, false
	}
	if p > c.cum[len(c.cum)-1]+quantileSlack {
		return q, false
	}
	i := sort.SearchFloat64s(c.cum, p)
	if i == len(c.qs) {
		// p landed inside the guard band above the final
		// cumulative value.
		i--
	}
	return c.qs[i], true
}

// QuantileEach returns Quantile(ps[i]) for each i. oks[i] reports
// whether the corresponding quantile is defined.
func (c *Cdf[Q]) QuantileEach(ps []float64) (qs []Q, oks []bool) {
	qs = make([]Q, len(ps))
	oks = make([]bool, len(ps))
	for i, p := range ps {
		qs[i], oks[i] = c.Quantile(p)
	}
	return qs, oks
}

// CredibleInterval returns the two-sided central interval
// [Quantile(tail), Quantile(1−tail)] with tail = (1−c)/2, for a
// confidence level c in (0, 1]. For c = 1 the interval spans the full
// support. The enclosed mass only approximates c for coarse discrete
// supports; the step CDF makes that inherent and it is not corrected.
// It returns ErrNotNormalized if the upper quantile is undefined,
// which happens when the source PMF was not normalized.
func (c *Cdf[Q]) CredibleInterval(conf float64) (lo, hi Q, err error) {
	if !(conf > 0 && conf <= 1) {
		return lo, hi, ErrConfidenceLevel
	}
	if len(c.qs) == 0 {
		return lo, hi, ErrZeroMass
	}
	tail := (1 - conf) / 2
	lo, _ = c.Quantile(tail)
	hi, ok := c.Quantile(1 - tail)
	if !ok {
		return lo, hi, ErrNotNormalized
	}
	return lo, hi, nil
}
