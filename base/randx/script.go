// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Script is a [Rand] that replays fixed values in order, wrapping
// around at the end. It is used to make selections reproducible in tests.
// Ints are reduced modulo n in [Script.Intn]; an empty list yields 0.
type Script struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// NewScript returns a new [Script] replaying the given floats and ints.
func NewScript(floats []float64, ints ...int) *Script {
	return &Script{Floats: floats, Ints: ints}
}

// Seed resets the replay position; the seed value itself is ignored.
func (s *Script) Seed(seed int64) {
	s.fi, s.ii = 0, 0
}

func (s *Script) Intn(n int) int {
	if n <= 0 {
		panic("randx.Script.Intn: invalid argument to Intn")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v % n
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}
