// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brycemann8334/BayesMadeSimple/pmf"
)

var euroTosses string

var euroCmd = &cobra.Command{
	Use:   "euro",
	Short: "Infer a coin's heads probability from a toss string",
	Long: `euro starts from a uniform prior over heads percentages 0-100 and
applies one Bayesian update per toss in the given H/T string, then
prints the posterior summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := make([]bool, 0, len(euroTosses))
		for _, r := range euroTosses {
			switch r {
			case 'H', 'h':
				data = append(data, true)
			case 'T', 't':
				data = append(data, false)
			default:
				return fmt.Errorf("toss string may only contain H and T, found %q", r)
			}
		}

		var percents []int
		for i := 0; i <= 100; i++ {
			percents = append(percents, i)
		}
		p, err := pmf.FromSeq(percents, pmf.Options{})
		if err != nil {
			return err
		}

		evidence, err := pmf.UpdateSeq(p, pmf.BernoulliPercent, data)
		if err != nil {
			return err
		}
		logger.Debug("posterior computed",
			zap.Int("tosses", len(data)),
			zap.Float64("evidence", evidence))

		lo, hi, err := p.CredibleInterval(0.9)
		if err != nil {
			return err
		}
		fmt.Printf("tosses %d  posterior mean %.2f%%  MAP %d%%\n",
			len(data), pmf.Mean(p), p.MAP())
		fmt.Printf("90%% credible interval [%d%%, %d%%]\n", lo, hi)
		return nil
	},
}

func init() {
	euroCmd.Flags().StringVar(&euroTosses, "tosses", "HHHHHHHTTT",
		"observed toss sequence, e.g. HHTHT")
	rootCmd.AddCommand(euroCmd)
}
