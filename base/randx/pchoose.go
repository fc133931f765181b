// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// PChoose64 chooses an index in given slice of float64's at random according
// to the probilities of each item (must be normalized to sum to 1)
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func PChoose64(ps []float64, randOpt ...Rand) int {
	pv := Or(randOpt...).Float64()
	sum := float64(0)
	for i, p := range ps {
		sum += p
		if pv < sum { // note: lower values already excluded
			return i
		}
	}
	return len(ps) - 1
}

// BoolP returns true with probability p, using a single draw
// from the half-open interval [0,1): p = 0 is never true and p = 1 always is.
func BoolP(p float64, randOpt ...Rand) bool {
	return PChoose64([]float64{p, 1 - p}, randOpt...) == 0
}

// Index returns a uniformly chosen index in [0,n), or -1 if n <= 0.
func Index(n int, randOpt ...Rand) int {
	if n <= 0 {
		return -1
	}
	return Or(randOpt...).Intn(n)
}
