// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bayes drives the discrete Bayesian inference library from the
// command line: summarizing samples, running the euro coin update,
// and simulating the Thompson-sampling bandit.
package main

import (
	"os"

	"github.com/brycemann8334/BayesMadeSimple/cmd/bayes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
