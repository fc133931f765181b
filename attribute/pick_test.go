// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"math"
	"testing"

	"cogentcore.org/planetgen/base/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickFromItems(t *testing.T) {
	rnd := randx.NewSysRand(1)
	seen := map[string]bool{}
	for range 500 {
		a, err := Pick(backgrounds, WithRand(rnd))
		require.NoError(t, err)
		assert.True(t, backgrounds.Contains(a), "picked %v", a)
		seen[a.Name] = true
	}
	assert.Len(t, seen, len(backgrounds))
}

func TestPickEmptyList(t *testing.T) {
	for _, opts := range [][]PickOption{
		nil,
		{AllowEmpty()},
		{EmptyProbability(0)},
		{EmptyProbability(1)},
		{EmptyProbability(1.5)},
	} {
		a, err := Pick(nil, opts...)
		assert.NoError(t, err)
		assert.Equal(t, Attribute{Name: "None", Image: ""}, a)
	}
}

func TestPickProbabilityBounds(t *testing.T) {
	rnd := randx.NewSysRand(2)
	for range 500 {
		a, err := Pick(backgrounds, EmptyProbability(1), WithRand(rnd))
		require.NoError(t, err)
		assert.Equal(t, None, a)

		a, err = Pick(backgrounds, EmptyProbability(0), WithRand(rnd))
		require.NoError(t, err)
		assert.True(t, backgrounds.Contains(a))
	}
}

func TestPickInvalidProbability(t *testing.T) {
	for _, p := range []float64{1.5, -0.1, math.NaN()} {
		_, err := Pick(backgrounds, EmptyProbability(p))
		assert.ErrorIs(t, err, ErrInvalidArgument, "p = %v", p)
	}
}

func TestPickScripted(t *testing.T) {
	s := randx.NewScript([]float64{0.2, 0.8}, 3)
	a, err := Pick(backgrounds, EmptyProbability(0.5), WithRand(s))
	require.NoError(t, err)
	assert.Equal(t, None, a)
	a, err = Pick(backgrounds, EmptyProbability(0.5), WithRand(s))
	require.NoError(t, err)
	assert.Equal(t, backgrounds[3], a)
}

func TestPickAllowEmptyReachesNone(t *testing.T) {
	a, err := Pick(backgrounds, AllowEmpty(), WithRand(randx.NewScript(nil, len(backgrounds))))
	require.NoError(t, err)
	assert.Equal(t, None, a)

	rnd := randx.NewSysRand(4)
	nones := 0
	n := 60000
	for range n {
		a, err := Pick(backgrounds, AllowEmpty(), WithRand(rnd))
		require.NoError(t, err)
		if a == None {
			nones++
		}
	}
	assert.InDelta(t, 1.0/float64(len(backgrounds)+1), float64(nones)/float64(n), 0.01)
}

func TestPickImage(t *testing.T) {
	img, ok, err := PickImage(nil)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", img)

	img, ok, err = PickImage(backgrounds, EmptyProbability(1))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", img)

	img, ok, err = PickImage(backgrounds, WithRand(randx.NewScript(nil, 1)))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "backgrounds/black.png", img)

	_, _, err = PickImage(backgrounds, EmptyProbability(2))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
