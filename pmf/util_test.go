// Copyright 2024 The BayesMadeSimple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pmf

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqSlice(expect, got []float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		if !aeq(expect[i], got[i]) {
			return false
		}
	}
	return true
}
