// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection manages the attributes chosen for a planet as
// immutable values, which change only through events applied by
// [State.Next].
package selection

import (
	"context"
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/planetgen/attribute"
	"cogentcore.org/planetgen/base/randx"
	"cogentcore.org/planetgen/catalog"
	"cogentcore.org/planetgen/planet"
	"github.com/jinzhu/copier"
)

// ErrUnknownAttribute is returned when setting a name that is not
// in the catalog list of the slot.
var ErrUnknownAttribute = errors.New("unknown attribute")

// UnknownAttributeError is the error for setting an unknown name,
// with the most similar known names.
type UnknownAttributeError struct {
	Slot        planet.Slot
	Name        string
	Suggestions []string
}

func (e *UnknownAttributeError) Error() string {
	msg := fmt.Sprintf("selection: %s %q is not in the catalog", strings.ToLower(e.Slot.String()), e.Name)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean " + strings.Join(e.Suggestions, ", ") + "?"
	}
	return msg
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// Selection is the attribute chosen for each slot of a layout.
// A slot without a value draws nothing.
type Selection struct {
	Layout *planet.Layout
	Values map[planet.Slot]attribute.Attribute
}

// Attribute returns the attribute of the given slot,
// or [attribute.None] if it has none.
func (s Selection) Attribute(slot planet.Slot) attribute.Attribute {
	if a, ok := s.Values[slot]; ok {
		return a
	}
	return attribute.None
}

// Clone returns a copy of the selection that shares no
// values with it. The layout is shared.
func (s Selection) Clone() (Selection, error) {
	c := Selection{Layout: s.Layout, Values: make(map[planet.Slot]attribute.Attribute, len(s.Values))}
	if len(s.Values) == 0 {
		return c, nil
	}
	if err := copier.CopyWithOption(&c.Values, &s.Values, copier.Option{DeepCopy: true}); err != nil {
		return s, fmt.Errorf("selection: copying values: %w", err)
	}
	return c, nil
}

// Planet returns a new planet for the selection, decoding images with dec.
func (s Selection) Planet(dec planet.Decoder) *planet.Planet {
	return planet.New(s.Layout, dec).SetAll(s.Values)
}

// Event is a change to a [Selection]: [Randomize], [Set] or [Clear].
type Event interface {
	apply(st *State, sel *Selection) error
}

// Randomize picks a new attribute for every slot of the layout,
// following the [Rules] of the state.
type Randomize struct{}

// Set sets the attribute with the given name in the slot.
// The name [attribute.NoneName] clears the slot.
type Set struct {
	Slot planet.Slot
	Name string
}

// Clear sets the slot to [attribute.None].
type Clear struct {
	Slot planet.Slot
}

// Rules are the pick options of each slot for [Randomize].
// A slot without rules is never left empty.
type Rules map[planet.Slot][]attribute.PickOption

// DefaultRules are the standard randomization rules.
var DefaultRules = Rules{
	planet.Features: {attribute.AllowEmpty()},
	planet.Orbit:    {attribute.EmptyProbability(0.5)},
	planet.Hand:     {attribute.EmptyProbability(0.3)},
	planet.Hat:      {attribute.EmptyProbability(0.5)},
}

// State holds what is needed to apply events to selections.
type State struct {
	Catalog *catalog.Catalog

	// Rules are the randomization rules; [DefaultRules] if nil.
	Rules Rules

	// Rand is the random source; the global source if nil.
	Rand randx.Rand
}

// NewState returns a new state using the given catalog and the default rules.
func NewState(c *catalog.Catalog) *State {
	return &State{Catalog: c, Rules: DefaultRules}
}

// Initial returns an empty selection with the layout of the catalog.
func (st *State) Initial() Selection {
	return Selection{Layout: st.Catalog.Layout, Values: map[planet.Slot]attribute.Attribute{}}
}

// Options returns the choices to offer in a picker for the slot.
func (st *State) Options(slot planet.Slot) attribute.List {
	return st.Catalog.List(slot).Options()
}

// Next returns the selection resulting from applying the event to prev,
// which is never modified. On error prev is returned.
func (st *State) Next(prev Selection, ev Event) (Selection, error) {
	next, err := prev.Clone()
	if err != nil {
		return prev, err
	}
	if next.Layout == nil {
		next.Layout = st.Catalog.Layout
	}
	if err := ev.apply(st, &next); err != nil {
		return prev, err
	}
	return next, nil
}

func (st *State) rules() Rules {
	if st.Rules == nil {
		return DefaultRules
	}
	return st.Rules
}

func checkSlot(sel *Selection, slot planet.Slot) error {
	if !sel.Layout.Has(slot) {
		return fmt.Errorf("selection: %w: slot %v is not part of the %v layout", attribute.ErrInvalidArgument, slot, sel.Layout)
	}
	return nil
}

func (Randomize) apply(st *State, sel *Selection) error {
	rules := st.rules()
	for _, s := range sel.Layout.Order {
		opts := append(append([]attribute.PickOption{}, rules[s]...), attribute.WithRand(st.Rand))
		a, err := attribute.Pick(st.Catalog.List(s), opts...)
		if err != nil {
			return fmt.Errorf("selection: randomizing %v: %w", s, err)
		}
		sel.Values[s] = a
	}
	return nil
}

func (ev Set) apply(st *State, sel *Selection) error {
	if err := checkSlot(sel, ev.Slot); err != nil {
		return err
	}
	if ev.Name == attribute.NoneName {
		sel.Values[ev.Slot] = attribute.None
		return nil
	}
	l := st.Catalog.List(ev.Slot)
	a, ok := l.Find(ev.Name)
	if !ok {
		return &UnknownAttributeError{Slot: ev.Slot, Name: ev.Name, Suggestions: l.Suggest(ev.Name, 3)}
	}
	sel.Values[ev.Slot] = a
	return nil
}

func (ev Clear) apply(st *State, sel *Selection) error {
	if err := checkSlot(sel, ev.Slot); err != nil {
		return err
	}
	sel.Values[ev.Slot] = attribute.None
	return nil
}

// Render draws a new planet for the selection on the surface of r,
// decoding images with dec.
func Render(ctx context.Context, sel Selection, r *planet.Renderer, dec planet.Decoder, size int) error {
	if sel.Layout == nil {
		return fmt.Errorf("selection: %w: no layout to render", attribute.ErrInvalidArgument)
	}
	return r.Render(ctx, sel.Planet(dec), size)
}
