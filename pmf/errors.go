// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import "errors"

var (
	// ErrEmptyInput is returned when a PMF is constructed from an
	// empty observation sequence and normalization is requested.
	ErrEmptyInput = errors.New("pmf: no observations")

	// ErrZeroMass is returned when normalization is attempted on a
	// distribution whose total mass is zero, including the case of
	// data that is impossible under every hypothesis.
	ErrZeroMass = errors.New("pmf: total probability mass is zero")

	// ErrNegativeWeight is returned when a distribution is
	// constructed from an explicitly negative weight.
	ErrNegativeWeight = errors.New("pmf: negative weight")

	// ErrNegativeLikelihood is returned by Update when the supplied
	// likelihood function returns a negative or NaN value.
	ErrNegativeLikelihood = errors.New("pmf: likelihood must be non-negative")

	// ErrNotNormalized is returned by operations that require a
	// normalized distribution. They never normalize implicitly.
	ErrNotNormalized = errors.New("pmf: distribution is not normalized")

	// ErrConfidenceLevel is returned when a credible interval is
	// requested for a confidence level outside (0, 1].
	ErrConfidenceLevel = errors.New("pmf: confidence level must be in (0, 1]")
)
