// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd defines the bayes CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brycemann8334/BayesMadeSimple/internal/logging"
)

var (
	logLevel string
	seed     uint64

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bayes",
	Short: "Discrete Bayesian inference from the command line",
	Long: `bayes explores Bayesian inference over finite hypothesis spaces:
it summarizes empirical distributions, runs sequential Bayesian
updates, and simulates a Thompson-sampling multi-armed bandit.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1,
		"seed for the pseudorandom sources")
}
