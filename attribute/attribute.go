// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attribute defines the named image layers that make up a planet
// and the random selection of them from candidate lists.
package attribute

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NoneName is the display name of the empty attribute.
const NoneName = "None"

// Attribute is a named, optional visual layer. Image is either the empty
// string, meaning that nothing is drawn for the layer, or an opaque image
// reference: a data URI or a path inside the catalog asset filesystem.
type Attribute struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Image string `toml:"image" yaml:"image" json:"image"`
}

// None is the sentinel attribute that draws nothing.
var None = Attribute{Name: NoneName}

// IsEmpty returns whether the attribute has no image to draw.
func (a Attribute) IsEmpty() bool {
	return a.Image == ""
}

// List is an ordered list of the attributes of one category.
// Names are unique within one list.
type List []Attribute

// Names returns the names of the attributes in order.
func (l List) Names() []string {
	nms := make([]string, len(l))
	for i, a := range l {
		nms[i] = a.Name
	}
	return nms
}

// Find returns the attribute with the given name.
func (l List) Find(name string) (Attribute, bool) {
	for _, a := range l {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Contains returns whether the list holds an attribute equal to a.
func (l List) Contains(a Attribute) bool {
	return slices.Contains(l, a)
}

// Clone returns a copy of the list.
func (l List) Clone() List {
	return slices.Clone(l)
}

// Sorted returns a copy of the list sorted by name in natural
// English order, ignoring case.
func (l List) Sorted() List {
	sl := l.Clone()
	col := collate.New(language.English, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(sl, func(a, b Attribute) int {
		return col.CompareString(a.Name, b.Name)
	})
	return sl
}

// Options returns the choices to offer in a picker for the list:
// the sorted list with [None] first.
func (l List) Options() List {
	return append(List{None}, l.Sorted()...)
}
