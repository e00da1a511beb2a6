// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brycemann8334/BayesMadeSimple/pmf"
)

var describeCI float64

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Summarize newline-separated numbers read from stdin",
	Long: `describe reads newline-separated numbers from stdin, builds their
empirical probability mass function, and prints summary statistics
and quantiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		obs, err := readFloats(os.Stdin)
		if err != nil {
			return err
		}
		p, err := pmf.FromSeq(obs, pmf.Options{})
		if err != nil {
			return err
		}

		fmt.Printf("n %d  distinct %d  mean %.6g  mode %.6g\n",
			len(obs), p.Len(), pmf.Mean(p), p.MAP())

		c := p.MakeCdf()
		labels := map[int]string{0: "min", 50: "median", 100: "max"}
		for _, pct := range []int{0, 5, 25, 50, 75, 95, 100} {
			label, ok := labels[pct]
			if !ok {
				label = fmt.Sprintf("%d%%ile", pct)
			}
			q, ok := c.Quantile(float64(pct) / 100)
			if !ok {
				continue
			}
			fmt.Printf("%8s %.6g\n", label, q)
		}

		lo, hi, err := c.CredibleInterval(describeCI)
		if err != nil {
			return err
		}
		fmt.Printf("%.0f%% interval [%.6g, %.6g]\n", describeCI*100, lo, hi)
		return nil
	},
}

func readFloats(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" {
			continue
		}
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, v)
	}
	return xs, scanner.Err()
}

func init() {
	describeCmd.Flags().Float64Var(&describeCI, "ci", 0.9,
		"credible interval confidence level")
	rootCmd.AddCommand(describeCmd)
}
