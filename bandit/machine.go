// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bandit

import "golang.org/x/exp/rand"

// A SlotMachine is a simulated bank of arms with fixed true win
// probabilities, for driving the player in tests and simulations.
type SlotMachine struct {
	probs []float64
	rng   *rand.Rand
}

// NewSlotMachine returns a machine whose arm i wins with probability
// probs[i]. src may be nil to use the process-wide source. Keep the
// machine's source distinct from the player's so reward noise and
// Thompson draws stay independent.
func NewSlotMachine(probs []float64, src rand.Source) *SlotMachine {
	m := &SlotMachine{probs: append([]float64(nil), probs...)}
	if src != nil {
		m.rng = rand.New(src)
	}
	return m
}

// Arms returns the number of arms.
func (m *SlotMachine) Arms() int { return len(m.probs) }

// Play draws a win/loss outcome from arm's true probability.
func (m *SlotMachine) Play(arm int) Outcome {
	var u float64
	if m.rng != nil {
		u = m.rng.Float64()
	} else {
		u = rand.Float64()
	}
	return Outcome(u < m.probs[arm])
}
