// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pmf implements Bayesian inference over finite discrete
// hypothesis spaces: probability mass functions, sequential Bayesian
// updating, quantile and credible-interval queries, weighted sampling,
// and convolution of independent distributions.
package pmf // import "github.com/brycemann8334/BayesMadeSimple/pmf"

// normTolerance is the absolute tolerance within which a total
// probability mass is considered equal to 1.
const normTolerance = 1e-9
