// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var backgrounds = List{
	{Name: "Teal", Image: "backgrounds/teal.png"},
	{Name: "black", Image: "backgrounds/black.png"},
	{Name: "Space10", Image: "backgrounds/space10.png"},
	{Name: "Space9", Image: "backgrounds/space9.png"},
	{Name: "Brown", Image: "backgrounds/brown.png"},
}

func TestFind(t *testing.T) {
	a, ok := backgrounds.Find("Brown")
	assert.True(t, ok)
	assert.Equal(t, "backgrounds/brown.png", a.Image)
	_, ok = backgrounds.Find("Purple")
	assert.False(t, ok)
	assert.True(t, backgrounds.Contains(a))
	assert.False(t, backgrounds.Contains(Attribute{Name: "Brown"}))
}

func TestNone(t *testing.T) {
	assert.Equal(t, "None", None.Name)
	assert.True(t, None.IsEmpty())
	assert.False(t, backgrounds[0].IsEmpty())
}

func TestSortedAndOptions(t *testing.T) {
	assert.Equal(t, []string{"black", "Brown", "Space9", "Space10", "Teal"}, backgrounds.Sorted().Names())
	assert.Equal(t, "Teal", backgrounds[0].Name, "Sorted must not modify the list")

	opts := backgrounds.Options()
	assert.Len(t, opts, len(backgrounds)+1)
	assert.Equal(t, None, opts[0])
	assert.Equal(t, List{None}, List(nil).Options())
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"Brown"}, backgrounds.Suggest("Brwn", 3))
	assert.Equal(t, []string{"Space10", "Space9"}, backgrounds.Suggest("spa", 2)[:2])
	assert.Empty(t, backgrounds.Suggest("Zzzzzzzz", 3))
	assert.Len(t, backgrounds.Suggest("Space", 1), 1)

	orbits := List{{Name: "Laika"}, {Name: "Lava"}}
	assert.Empty(t, orbits.Suggest("Lai", 0))
	assert.NotPanics(t, func() {
		assert.Empty(t, orbits.Suggest("Lai", -1))
	})
}
