// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import (
	"fmt"
	"strings"
)

// Slot is a fixed category position in a planet, such as the hat.
type Slot int32

// The slots. Their numeric order is not the drawing order;
// see [Layout.Order] for that.
const (
	Background Slot = iota
	Body
	Face
	Hand
	Orbit
	Eyes
	Mouth
	Features
	Hat

	// SlotsN is the number of slots.
	SlotsN
)

type slotInfo struct {
	name, label, plural string
}

var slotInfos = [SlotsN]slotInfo{
	{"Background", "Background", "backgrounds"},
	{"Body", "Celestial Body", "bodies"},
	{"Face", "Face", "faces"},
	{"Hand", "Hands", "hands"},
	{"Orbit", "Orbits", "orbits"},
	{"Eyes", "Eyes", "eyes"},
	{"Mouth", "Mouths", "mouths"},
	{"Features", "Features", "features"},
	{"Hat", "Hats", "hats"},
}

// Slots returns all of the slots in numeric order.
func Slots() []Slot {
	s := make([]Slot, SlotsN)
	for i := range s {
		s[i] = Slot(i)
	}
	return s
}

// IsValid returns whether the slot is one of the defined slots.
func (s Slot) IsValid() bool {
	return s >= 0 && s < SlotsN
}

func (s Slot) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Slot(%d)", int32(s))
	}
	return slotInfos[s].name
}

// Label returns the user-facing label of the slot's picker.
func (s Slot) Label() string {
	if !s.IsValid() {
		return s.String()
	}
	return slotInfos[s].label
}

// Plural returns the lowercase plural key of the slot, which names
// its category in catalog manifests and upload directories.
func (s Slot) Plural() string {
	if !s.IsValid() {
		return s.String()
	}
	return slotInfos[s].plural
}

// SlotFromString returns the slot with the given name or plural key,
// ignoring case.
func SlotFromString(str string) (Slot, error) {
	for i, si := range slotInfos {
		if strings.EqualFold(str, si.name) || strings.EqualFold(str, si.plural) {
			return Slot(i), nil
		}
	}
	return -1, fmt.Errorf("planet: %q is not a valid slot", str)
}

func (s Slot) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("planet: cannot marshal invalid %v", s)
	}
	return []byte(s.Plural()), nil
}

func (s *Slot) UnmarshalText(text []byte) error {
	v, err := SlotFromString(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
