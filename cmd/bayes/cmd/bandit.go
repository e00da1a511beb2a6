// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/brycemann8334/BayesMadeSimple/bandit"
	"github.com/brycemann8334/BayesMadeSimple/pmf"
)

var (
	banditProbs []float64
	banditSteps int
)

var banditCmd = &cobra.Command{
	Use:   "bandit",
	Short: "Simulate Thompson sampling against slot machines",
	Long: `bandit simulates a Thompson-sampling player against a bank of slot
machines with the given true win probabilities. The player starts
from uniform beliefs, and after the run each arm's posterior summary
and play count are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range banditProbs {
			if p < 0 || p > 1 {
				return fmt.Errorf("win probability %v outside [0, 1]", p)
			}
		}

		machine := bandit.NewSlotMachine(banditProbs, rand.NewSource(seed))
		player, err := bandit.NewPlayer(len(banditProbs), rand.NewSource(seed+1))
		if err != nil {
			return err
		}

		for i := 0; i < banditSteps; i++ {
			arm, out, err := player.Step(machine)
			if err != nil {
				return err
			}
			logger.Debug("step",
				zap.Int("n", i),
				zap.Int("arm", arm),
				zap.Stringer("outcome", out))
		}

		plays := player.Plays()
		for i := range banditProbs {
			b := player.Belief(i)
			lo, hi, err := b.CredibleInterval(0.9)
			if err != nil {
				return err
			}
			fmt.Printf("arm %d: true %.0f%%  plays %4d  posterior mean %5.1f%%  90%% CI [%d%%, %d%%]\n",
				i, banditProbs[i]*100, plays[i], pmf.Mean(b), lo, hi)
		}
		return nil
	},
}

func init() {
	banditCmd.Flags().Float64SliceVar(&banditProbs, "probs",
		[]float64{0.1, 0.2, 0.3}, "true win probability per arm")
	banditCmd.Flags().IntVar(&banditSteps, "steps", 200,
		"number of plays")
	rootCmd.AddCommand(banditCmd)
}
