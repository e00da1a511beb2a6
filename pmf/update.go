// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import (
	"cmp"
	"math"
)

// A Likelihood gives the conditional probability of observing data
// given that hypothesis hypo is true. It must return 0 for impossible
// (data, hypothesis) pairs and must never return a negative value.
type Likelihood[D, Q any] func(data D, hypo Q) float64

// Update applies Bayes' rule in place: the weight of every hypothesis
// in p's support is multiplied by like(data, hypo) and the result is
// renormalized. It returns the normalizing constant, the marginal
// likelihood of data under p.
//
// The multiply pass runs over a fixed snapshot of the support into a
// scratch slice, so a likelihood that returns a negative or NaN value
// fails with ErrNegativeLikelihood before any weight is modified. If
// the data is impossible under every hypothesis, the multiplied
// all-zero weights are committed and ErrZeroMass is returned, letting
// the caller inspect which hypotheses were ruled out.
//
// Sequential updates with independent observations commute: applying
// them in any order yields the same posterior.
func Update[D any, Q cmp.Ordered](p *Pmf[Q], like Likelihood[D, Q], data D) (float64, error) {
	next := make([]float64, len(p.ws))
	for i, q := range p.qs {
		l := like(data, q)
		if l < 0 || math.IsNaN(l) {
			return 0, ErrNegativeLikelihood
		}
		next[i] = p.ws[i] * l
	}
	copy(p.ws, next)
	return p.Normalize()
}

// UpdateSeq applies Update once per observation and returns the
// product of the normalizing constants, the joint marginal likelihood
// of the whole sequence. On error the PMF reflects the updates
// applied so far; see Update for the per-step failure semantics.
func UpdateSeq[D any, Q cmp.Ordered](p *Pmf[Q], like Likelihood[D, Q], data []D) (float64, error) {
	evidence := 1.0
	for _, d := range data {
		c, err := Update(p, like, d)
		if err != nil {
			return 0, err
		}
		evidence *= c
	}
	return evidence, nil
}
