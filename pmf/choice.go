// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Choice draws n independent samples, with replacement, from the
// distribution defined by the quantities and their weights. src may
// be nil, in which case the process-wide source is used; pass a
// seeded source for reproducibility.
//
// The PMF must be normalized. Choice returns ErrNotNormalized rather
// than normalizing implicitly, so a half-constructed distribution
// cannot silently skew a simulation.
func (p *Pmf[Q]) Choice(n int, src rand.Source) ([]Q, error) {
	if p.Len() == 0 {
		return nil, ErrZeroMass
	}
	if !p.normalized() {
		return nil, ErrNotNormalized
	}
	cat := distuv.NewCategorical(p.ws, src)
	out := make([]Q, n)
	for i := range out {
		out[i] = p.qs[int(cat.Rand())]
	}
	return out, nil
}

// Rand draws a single sample. See Choice for the source and
// normalization contract.
func (p *Pmf[Q]) Rand(src rand.Source) (Q, error) {
	s, err := p.Choice(1, src)
	if err != nil {
		var zero Q
		return zero, err
	}
	return s[0], nil
}
