// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bandit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/brycemann8334/BayesMadeSimple/pmf"
)

func pointMass(t *testing.T, percent int) *pmf.Pmf[int] {
	t.Helper()
	p, err := pmf.FromPairs([]int{percent}, []float64{1}, pmf.Options{})
	require.NoError(t, err)
	return p
}

func TestChooseTieBreak(t *testing.T) {
	// Three arms whose beliefs are point masses at the same value
	// always draw identical samples, so the lowest index must win.
	beliefs := []*pmf.Pmf[int]{pointMass(t, 50), pointMass(t, 50), pointMass(t, 50)}
	pl, err := NewPlayerWithBeliefs(beliefs, rand.NewSource(1))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		arm, err := pl.Choose()
		require.NoError(t, err)
		assert.Equal(t, 0, arm)
	}
}

func TestChoosePrefersLargerDraw(t *testing.T) {
	beliefs := []*pmf.Pmf[int]{pointMass(t, 30), pointMass(t, 70)}
	pl, err := NewPlayerWithBeliefs(beliefs, rand.NewSource(1))
	require.NoError(t, err)

	arm, err := pl.Choose()
	require.NoError(t, err)
	assert.Equal(t, 1, arm)
}

func TestObserveShiftsBelief(t *testing.T) {
	pl, err := NewPlayer(1, rand.NewSource(1))
	require.NoError(t, err)

	require.NoError(t, pl.Observe(0, Win))
	b := pl.Belief(0)
	assert.Zero(t, b.Prob(0), "a win rules out the 0 percent hypothesis")
	assert.Greater(t, pmf.Mean(b), 50.0, "a win must pull the posterior mean up")

	require.NoError(t, pl.Observe(0, Loss))
	b = pl.Belief(0)
	assert.Zero(t, b.Prob(100), "a loss rules out the 100 percent hypothesis")
}

func TestObserveBadArm(t *testing.T) {
	pl, err := NewPlayer(2, rand.NewSource(1))
	require.NoError(t, err)
	assert.Error(t, pl.Observe(2, Win))
	assert.Error(t, pl.Observe(-1, Win))
}

func TestStepTallies(t *testing.T) {
	pl, err := NewPlayer(3, rand.NewSource(5))
	require.NoError(t, err)

	m := NewSlotMachine([]float64{0.5, 0.5, 0.5}, rand.NewSource(6))
	const steps = 50
	require.NoError(t, pl.Run(m, steps))

	total := 0
	for _, n := range pl.Plays() {
		total += n
	}
	assert.Equal(t, steps, total)
}

func TestRunFavorsBestArm(t *testing.T) {
	pl, err := NewPlayer(2, rand.NewSource(17))
	require.NoError(t, err)

	m := NewSlotMachine([]float64{0.2, 0.8}, rand.NewSource(18))
	require.NoError(t, pl.Run(m, 500))

	plays := pl.Plays()
	assert.Greater(t, plays[1], plays[0],
		"the 80%% arm should dominate after 500 plays, got %v", plays)

	best := pl.Belief(1)
	assert.Greater(t, pmf.Mean(best), 60.0)
}

func TestNewPlayerValidation(t *testing.T) {
	_, err := NewPlayer(0, nil)
	assert.Error(t, err)

	_, err = NewPlayerWithBeliefs(nil, nil)
	assert.Error(t, err)

	_, err = NewPlayerWithBeliefs([]*pmf.Pmf[int]{pmf.New[int]()}, nil)
	assert.Error(t, err)
}

func TestWinLoss(t *testing.T) {
	assert.InDelta(t, 0.7, WinLoss(Win, 70), 1e-12)
	assert.InDelta(t, 0.3, WinLoss(Loss, 70), 1e-12)
	assert.Zero(t, WinLoss(Win, 0))
	assert.Zero(t, WinLoss(Loss, 100))
}
