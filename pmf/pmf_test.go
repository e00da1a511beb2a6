// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import (
	"errors"
	"slices"
	"testing"
)

func TestFromSeq(t *testing.T) {
	p, err := FromSeq([]int{2, 1, 2, 3}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(want, p.Quantities()) {
		t.Errorf("want support %v, got %v", want, p.Quantities())
	}
	if want := []float64{0.25, 0.5, 0.25}; !aeqSlice(want, p.Probs()) {
		t.Errorf("want probs %v, got %v", want, p.Probs())
	}
}

func TestFromSeqEmpty(t *testing.T) {
	if _, err := FromSeq([]int(nil), Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("want ErrEmptyInput, got %v", err)
	}
	// Without normalization an empty sequence is legal.
	p, err := FromSeq([]int(nil), Options{NoNormalize: true})
	if err != nil || p.Len() != 0 {
		t.Errorf("want empty PMF, got %v, %v", p, err)
	}
}

func TestFromSeqNoSort(t *testing.T) {
	p, err := FromSeq([]string{"b", "a", "b", "c"}, Options{NoSort: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"b", "a", "c"}; !slices.Equal(want, p.Quantities()) {
		t.Errorf("want first-observation order %v, got %v", want, p.Quantities())
	}
}

func TestFromSeqNoNormalize(t *testing.T) {
	p, err := FromSeq([]int{5, 5, 7}, Options{NoNormalize: true})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(2, p.Prob(5)) || !aeq(1, p.Prob(7)) || !aeq(3, p.Total()) {
		t.Errorf("want raw counts {5:2, 7:1}, got %v", p)
	}
}

func TestFromPairs(t *testing.T) {
	// Triangular prior, with a duplicate key that must accumulate.
	p, err := FromPairs([]int{1, 2, 3, 2}, []float64{1, 2, 1, 2}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{1.0 / 6, 4.0 / 6, 1.0 / 6}; !aeqSlice(want, p.Probs()) {
		t.Errorf("want probs %v, got %v", want, p.Probs())
	}
}

func TestFromPairsNegativeWeight(t *testing.T) {
	_, err := FromPairs([]int{1, 2}, []float64{0.5, -0.5}, Options{})
	if !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("want ErrNegativeWeight, got %v", err)
	}
}

func TestSetAndAdd(t *testing.T) {
	p := New[string]()
	p.Add("x", 2)
	p.Add("x", 3)
	if !aeq(5, p.Prob("x")) {
		t.Errorf("Add must accumulate: want 5, got %v", p.Prob("x"))
	}
	p.Set("x", 1)
	if !aeq(1, p.Prob("x")) {
		t.Errorf("Set must overwrite: want 1, got %v", p.Prob("x"))
	}
	if p.Prob("missing") != 0 {
		t.Errorf("absent quantity must have weight 0")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	p, err := FromSeq([]int{1, 1, 2, 3}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	before := p.Probs()
	total, err := p.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1, total) {
		t.Errorf("re-normalizing a normalized PMF: want total 1, got %v", total)
	}
	if !aeqSlice(before, p.Probs()) {
		t.Errorf("weights changed: %v -> %v", before, p.Probs())
	}
}

func TestNormalizeZeroMass(t *testing.T) {
	p := New[int]()
	p.Set(1, 0)
	p.Set(2, 0)
	if _, err := p.Normalize(); !errors.Is(err, ErrZeroMass) {
		t.Errorf("want ErrZeroMass, got %v", err)
	}
	// The weights are left untouched.
	if want := []float64{0, 0}; !aeqSlice(want, p.Probs()) {
		t.Errorf("want weights unchanged %v, got %v", want, p.Probs())
	}
}

func TestMAPTieBreak(t *testing.T) {
	p, err := FromPairs([]int{3, 1, 2}, []float64{0.4, 0.4, 0.2}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Sorted support, so the tie between 1 and 3 goes to 1.
	if got := p.MAP(); got != 1 {
		t.Errorf("want MAP 1, got %v", got)
	}

	p, err = FromPairs([]int{3, 1, 2}, []float64{0.4, 0.4, 0.2}, Options{NoSort: true})
	if err != nil {
		t.Fatal(err)
	}
	// Unsorted, the first occurrence wins.
	if got := p.MAP(); got != 3 {
		t.Errorf("want MAP 3, got %v", got)
	}
}

func TestMaxLike(t *testing.T) {
	p, err := FromPairs([]int{1, 2}, []float64{1, 3}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.75, p.MaxLike()) {
		t.Errorf("want 0.75, got %v", p.MaxLike())
	}
}

func TestMean(t *testing.T) {
	die, err := FromSeq([]int{1, 2, 3, 4, 5, 6}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(3.5, Mean(die)) {
		t.Errorf("want mean 3.5, got %v", Mean(die))
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p, err := FromSeq([]int{1, 2}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	c := p.Copy()
	c.Set(1, 0.9)
	if !aeq(0.5, p.Prob(1)) {
		t.Errorf("mutating the copy changed the original: %v", p.Prob(1))
	}
}
