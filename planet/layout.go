// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultSize is the default width and height of a rendered planet.
const DefaultSize = 128

// Layout is the set of slots of a planet and the fixed z-order in which
// they are drawn: later slots occlude earlier ones.
type Layout struct {
	// Name is the name of the layout, used in manifests and flags.
	Name string

	// Order is the drawing order of the slots, background first.
	Order []Slot

	// Scale is whether layer images are scaled to the render size.
	// When false, images are expected to be pre-sized.
	Scale bool
}

var (
	// Classic is the five slot layout, which scales every layer
	// to the render size.
	Classic = &Layout{
		Name:  "classic",
		Order: []Slot{Background, Body, Face, Hand, Orbit},
		Scale: true,
	}

	// Extended is the eight slot layout with separate eyes and mouths,
	// drawing pre-sized images as they are.
	Extended = &Layout{
		Name:  "extended",
		Order: []Slot{Background, Body, Orbit, Features, Eyes, Mouth, Hand, Hat},
	}

	// Layouts are the built-in layouts.
	Layouts = []*Layout{Classic, Extended}
)

// LayoutByName returns the built-in layout with the given name.
// The empty name selects [Extended].
func LayoutByName(name string) (*Layout, error) {
	if name == "" {
		return Extended, nil
	}
	for _, l := range Layouts {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("planet: unknown layout %q", name)
}

// Has returns whether the layout contains the given slot.
func (l *Layout) Has(s Slot) bool {
	return slices.Contains(l.Order, s)
}

func (l *Layout) String() string {
	return l.Name
}
