// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// Seeds is a set of random seeds, typically used one per generated planet
type Seeds []int64

// Init allocates given number of seeds and initializes them to
// sequential numbers start..start+n-1
func (rs *Seeds) Init(n int, start int64) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = start + int64(i)
	}
}

// Set sets the given seed to either the single Rand
// interface passed, or a new separate source.
// It returns the seeded source.
func (rs *Seeds) Set(idx int, randOpt ...Rand) Rand {
	var rnd Rand
	if len(randOpt) == 0 || randOpt[0] == nil {
		rnd = &SysRand{}
	} else {
		rnd = randOpt[0]
	}
	rnd.Seed((*rs)[idx])
	return rnd
}

// NewSeeds sets a new set of random seeds based on current time
func (rs *Seeds) NewSeeds() {
	rn := time.Now().UnixNano()
	for i := range *rs {
		(*rs)[i] = rn + int64(i)
	}
}
