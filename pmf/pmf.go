// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// A Pmf is a probability mass function over a finite set of discrete
// quantities. It maps each quantity in its support to a non-negative
// weight. During construction the weights may be raw counts or
// arbitrary masses; after Normalize they sum to 1.
//
// The support keeps its insertion order until Sort is called. The
// construction helpers sort by default, so iteration order and the
// parallel slices returned by Quantities and Probs are ascending
// unless the caller opts out.
//
// A Pmf is not safe for concurrent mutation.
type Pmf[Q cmp.Ordered] struct {
	qs  []Q
	ws  []float64
	pos map[Q]int
}

// Options configures PMF construction. The zero value gives the
// defaults: normalize the weights and sort the support ascending.
type Options struct {
	// NoNormalize leaves the weights as raw counts or masses.
	NoNormalize bool

	// NoSort preserves first-observation order of the support.
	NoSort bool
}

// New returns an empty PMF.
func New[Q cmp.Ordered]() *Pmf[Q] {
	return &Pmf[Q]{pos: make(map[Q]int)}
}

// FromSeq builds a PMF from a sequence of raw observations. The weight
// of each distinct quantity is its occurrence count, so duplicate
// observations accumulate. It returns ErrEmptyInput if obs is empty
// and normalization is requested.
func FromSeq[Q cmp.Ordered](obs []Q, opt Options) (*Pmf[Q], error) {
	if len(obs) == 0 && !opt.NoNormalize {
		return nil, ErrEmptyInput
	}
	p := New[Q]()
	for _, q := range obs {
		p.Observe(q)
	}
	if err := p.finish(opt); err != nil {
		return nil, err
	}
	return p, nil
}

// FromPairs builds a PMF from explicit quantity/weight pairs, such as
// a triangular prior. Duplicate quantities accumulate their weights.
// It panics if the slices differ in length and returns
// ErrNegativeWeight if any weight is negative.
func FromPairs[Q cmp.Ordered](qs []Q, ws []float64, opt Options) (*Pmf[Q], error) {
	if len(qs) != len(ws) {
		panic("len(qs) != len(ws)")
	}
	if len(qs) == 0 && !opt.NoNormalize {
		return nil, ErrEmptyInput
	}
	p := New[Q]()
	for i, q := range qs {
		if ws[i] < 0 {
			return nil, ErrNegativeWeight
		}
		p.Add(q, ws[i])
	}
	if err := p.finish(opt); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pmf[Q]) finish(opt Options) error {
	if !opt.NoSort {
		p.Sort()
	}
	if !opt.NoNormalize {
		if _, err := p.Normalize(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the size of the support.
func (p *Pmf[Q]) Len() int { return len(p.qs) }

// Prob returns the weight of q, or 0 if q is not in the support.
func (p *Pmf[Q]) Prob(q Q) float64 {
	if i, ok := p.pos[q]; ok {
		return p.ws[i]
	}
	return 0
}

// Set assigns weight w to q, overwriting any existing weight. A new
// quantity is appended to the support.
func (p *Pmf[Q]) Set(q Q, w float64) {
	if i, ok := p.pos[q]; ok {
		p.ws[i] = w
		return
	}
	p.pos[q] = len(p.qs)
	p.qs = append(p.qs, q)
	p.ws = append(p.ws, w)
}

// Add accumulates weight w onto q, inserting q with weight w if it is
// not yet in the support.
func (p *Pmf[Q]) Add(q Q, w float64) {
	if i, ok := p.pos[q]; ok {
		p.ws[i] += w
		return
	}
	p.Set(q, w)
}

// Observe counts a single occurrence of q.
func (p *Pmf[Q]) Observe(q Q) { p.Add(q, 1) }

// Quantities returns the support in iteration order.
func (p *Pmf[Q]) Quantities() []Q { return slices.Clone(p.qs) }

// Probs returns the weights in the same order as Quantities.
func (p *Pmf[Q]) Probs() []float64 { return slices.Clone(p.ws) }

// Copy returns an independent copy of p.
func (p *Pmf[Q]) Copy() *Pmf[Q] {
	c := &Pmf[Q]{
		qs:  slices.Clone(p.qs),
		ws:  slices.Clone(p.ws),
		pos: make(map[Q]int, len(p.pos)),
	}
	for q, i := range p.pos {
		c.pos[q] = i
	}
	return c
}

// Sort orders the support ascending by quantity, carrying the weights
// along. It returns p for chaining.
func (p *Pmf[Q]) Sort() *Pmf[Q] {
	perm := make([]int, len(p.qs))
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(a, b int) int { return cmp.Compare(p.qs[a], p.qs[b]) })

	qs := make([]Q, len(p.qs))
	ws := make([]float64, len(p.ws))
	for i, j := range perm {
		qs[i], ws[i] = p.qs[j], p.ws[j]
		p.pos[p.qs[j]] = i
	}
	p.qs, p.ws = qs, ws
	return p
}

// Total returns the sum of all weights.
func (p *Pmf[Q]) Total() float64 { return floats.Sum(p.ws) }

// Normalize rescales the weights in place so they sum to 1 and
// returns the pre-normalization total. When called after an update
// this total is the marginal likelihood of the observed data, which
// callers can use for model comparison. It returns ErrZeroMass,
// leaving the weights untouched, if the total is not positive.
func (p *Pmf[Q]) Normalize() (float64, error) {
	total := p.Total()
	if total <= 0 {
		return 0, ErrZeroMass
	}
	floats.Scale(1/total, p.ws)
	return total, nil
}

// MAP returns the maximum a posteriori quantity: the one with the
// largest weight. Ties break to the first occurrence in iteration
// order, so on a sorted support the smallest tied quantity wins. It
// returns the zero value of Q if the support is empty.
func (p *Pmf[Q]) MAP() Q {
	var best Q
	if len(p.qs) == 0 {
		return best
	}
	best, max := p.qs[0], p.ws[0]
	for i := 1; i < len(p.ws); i++ {
		if p.ws[i] > max {
			best, max = p.qs[i], p.ws[i]
		}
	}
	return best
}

// MaxLike returns the largest single weight in the distribution, or 0
// for an empty support.
func (p *Pmf[Q]) MaxLike() float64 {
	max := 0.0
	for _, w := range p.ws {
		if w > max {
			max = w
		}
	}
	return max
}

// CredibleInterval returns the central interval containing
// approximately probability mass c. It is shorthand for building a
// Cdf and querying it; see Cdf.CredibleInterval.
func (p *Pmf[Q]) CredibleInterval(c float64) (lo, hi Q, err error) {
	return p.MakeCdf().CredibleInterval(c)
}

// normalized reports whether the total mass is 1 within tolerance.
func (p *Pmf[Q]) normalized() bool {
	t := p.Total()
	return t > 1-normTolerance && t < 1+normTolerance
}

// String renders the distribution as a quantity/weight table.
func (p *Pmf[Q]) String() string {
	var buf strings.Builder
	for i, q := range p.qs {
		fmt.Fprintf(&buf, "%v\t%g\n", q, p.ws[i])
	}
	return buf.String()
}
