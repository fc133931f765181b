// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndAdd(t *testing.T) {
	var kl List[string, int]
	kl.Set("a", 1)
	kl.Set("b", 2)
	kl.Set("a", 3)
	assert.Equal(t, []string{"a", "b"}, kl.Keys)
	assert.Equal(t, []int{3, 2}, kl.Values)

	assert.Error(t, kl.Add("b", 4))
	assert.NoError(t, kl.Add("c", 5))
	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, 2, kl.IndexByKey("c"))
	assert.Equal(t, -1, kl.IndexByKey("z"))

	v, ok := kl.AtTry("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = kl.AtTry("z")
	assert.False(t, ok)
}

func TestDeleteAndClone(t *testing.T) {
	kl := FromValues([]string{"x", "yy", "zzz", "qq"}, func(s string) int { return len(s) })
	assert.Equal(t, []string{"x", "qq", "zzz"}, kl.Values)

	cl := kl.Clone()
	assert.True(t, kl.DeleteByKey(2))
	assert.False(t, kl.DeleteByKey(2))
	assert.Equal(t, []string{"x", "zzz"}, kl.Values)
	assert.Equal(t, 1, kl.IndexByKey(3))

	assert.Equal(t, []string{"x", "qq", "zzz"}, cl.Values)
	var nilList *List[int, string]
	assert.Equal(t, 0, nilList.Len())
	assert.Equal(t, 0, nilList.Clone().Len())
}
