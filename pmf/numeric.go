// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

// Number constrains quantity types that support arithmetic, for the
// operations that need more than an ordering.
type Number interface {
	~int | ~int64 | ~float64
}

// Mean returns the expectation Σ quantity × weight. The result is
// only meaningful for a normalized PMF; this precondition is
// documented rather than checked.
func Mean[Q Number](p *Pmf[Q]) float64 {
	m := 0.0
	for i, q := range p.qs {
		m += float64(q) * p.ws[i]
	}
	return m
}

// Convolve returns the distribution of the sum of two independent
// random variables: every pair (qa, qb) contributes mass wa×wb to the
// quantity qa+qb. The result is sorted ascending. Its total mass is
// the product of the input totals, so convolving two normalized PMFs
// needs no renormalization. Cost is O(len(a)×len(b)), which is fine
// for the small finite supports this package targets.
func Convolve[Q Number](a, b *Pmf[Q]) *Pmf[Q] {
	out := New[Q]()
	for i, qa := range a.qs {
		for j, qb := range b.qs {
			out.Add(qa+qb, a.ws[i]*b.ws[j])
		}
	}
	return out.Sort()
}

// Shift translates every quantity by delta, leaving the weights
// untouched. Total mass is invariant, so a normalized input stays
// normalized.
func Shift[Q Number](p *Pmf[Q], delta Q) *Pmf[Q] {
	out := New[Q]()
	for i, q := range p.qs {
		out.Set(q+delta, p.ws[i])
	}
	return out
}
