// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bandit implements Thompson sampling for the Bernoulli
// multi-armed bandit. Each arm's unknown win probability is tracked
// as a discrete posterior over integer percentages, and arms are
// selected by drawing one sample from each posterior and playing the
// largest draw.
package bandit

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/brycemann8334/BayesMadeSimple/pmf"
)

// An Outcome is the binary result of playing an arm.
type Outcome bool

const (
	Loss Outcome = false
	Win  Outcome = true
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "loss"
}

// A Machine produces outcomes for a player. The player never observes
// an arm's true win probability, only the outcomes Play returns.
type Machine interface {
	Play(arm int) Outcome
}

// WinLoss is the likelihood of a single play outcome when the
// hypothesis is an arm's win probability in percent.
func WinLoss(out Outcome, hypo int) float64 {
	return pmf.BernoulliPercent(bool(out), hypo)
}

// A Player runs the Thompson sampling loop. It holds one belief PMF
// per arm, each over the win percentage grid, and a per-arm tally of
// plays for reporting. A Player is not safe for concurrent use.
type Player struct {
	beliefs []*pmf.Pmf[int]
	plays   []int
	src     rand.Source
}

// NewPlayer returns a player with a uniform prior over win
// percentages 0 through 100 for each arm. src seeds the Thompson
// draws; nil uses the process-wide source.
func NewPlayer(arms int, src rand.Source) (*Player, error) {
	if arms <= 0 {
		return nil, fmt.Errorf("bandit: need at least one arm, have %d", arms)
	}
	beliefs := make([]*pmf.Pmf[int], arms)
	for i := range beliefs {
		p, err := pmf.FromSeq(percents(), pmf.Options{})
		if err != nil {
			return nil, err
		}
		beliefs[i] = p
	}
	return NewPlayerWithBeliefs(beliefs, src)
}

// NewPlayerWithBeliefs returns a player with explicit prior beliefs,
// one normalized PMF over win percentages per arm. The player takes
// ownership of the PMFs and mutates them as outcomes arrive.
func NewPlayerWithBeliefs(beliefs []*pmf.Pmf[int], src rand.Source) (*Player, error) {
	if len(beliefs) == 0 {
		return nil, fmt.Errorf("bandit: need at least one arm, have 0")
	}
	for i, b := range beliefs {
		if b == nil || b.Len() == 0 {
			return nil, fmt.Errorf("bandit: arm %d has an empty belief", i)
		}
	}
	return &Player{
		beliefs: beliefs,
		plays:   make([]int, len(beliefs)),
		src:     src,
	}, nil
}

// Arms returns the number of arms.
func (pl *Player) Arms() int { return len(pl.beliefs) }

// Belief returns a copy of the posterior belief for arm.
func (pl *Player) Belief(arm int) *pmf.Pmf[int] { return pl.beliefs[arm].Copy() }

// Plays returns a copy of the per-arm play tally.
func (pl *Player) Plays() []int {
	return append([]int(nil), pl.plays...)
}

// Choose draws one sample from each arm's belief and returns the arm
// with the largest sampled win percentage. Exact ties go to the
// lowest arm index, deterministically.
func (pl *Player) Choose() (int, error) {
	best, bestVal := 0, -1
	for i, b := range pl.beliefs {
		v, err := b.Rand(pl.src)
		if err != nil {
			return 0, fmt.Errorf("bandit: sampling arm %d: %w", i, err)
		}
		if v > bestVal {
			best, bestVal = i, v
		}
	}
	return best, nil
}

// Observe folds an observed outcome for arm into that arm's belief
// via a Bayesian update with the WinLoss likelihood.
func (pl *Player) Observe(arm int, out Outcome) error {
	if arm < 0 || arm >= len(pl.beliefs) {
		return fmt.Errorf("bandit: no arm %d", arm)
	}
	if _, err := pmf.Update(pl.beliefs[arm], WinLoss, out); err != nil {
		return fmt.Errorf("bandit: updating arm %d: %w", arm, err)
	}
	return nil
}

// Step runs one full cycle: choose an arm by Thompson sampling, play
// it on m, tally the play, and fold the outcome back into the arm's
// belief.
func (pl *Player) Step(m Machine) (arm int, out Outcome, err error) {
	arm, err = pl.Choose()
	if err != nil {
		return 0, Loss, err
	}
	out = m.Play(arm)
	pl.plays[arm]++
	if err := pl.Observe(arm, out); err != nil {
		return arm, out, err
	}
	return arm, out, nil
}

// Run plays n steps against m.
func (pl *Player) Run(m Machine, n int) error {
	for i := 0; i < n; i++ {
		if _, _, err := pl.Step(m); err != nil {
			return err
		}
	}
	return nil
}

func percents() []int {
	qs := make([]int, 101)
	for i := range qs {
		qs[i] = i
	}
	return qs
}
