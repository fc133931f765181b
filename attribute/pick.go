// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"errors"
	"fmt"

	"cogentcore.org/planetgen/base/randx"
)

// ErrInvalidArgument is returned when a pick option is out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// PickOptions are the options for [Pick], set through [PickOption]s.
type PickOptions struct {
	// AllowEmpty allows [None] to be picked.
	AllowEmpty bool

	// EmptyProbability is the probability of picking [None],
	// used when HasProbability is set.
	EmptyProbability float64

	// HasProbability is whether EmptyProbability was given.
	HasProbability bool

	// Rand is the random source; the global source if nil.
	Rand randx.Rand
}

// PickOption configures a [Pick].
type PickOption func(o *PickOptions)

// AllowEmpty allows [Pick] to return [None], which is then one
// more uniformly weighted candidate next to the items.
func AllowEmpty() PickOption {
	return func(o *PickOptions) {
		o.AllowEmpty = true
	}
}

// EmptyProbability allows [Pick] to return [None] with the given
// probability, which must be within [0, 1].
func EmptyProbability(p float64) PickOption {
	return func(o *PickOptions) {
		o.AllowEmpty = true
		o.HasProbability = true
		o.EmptyProbability = p
	}
}

// WithRand sets the random source used by [Pick].
func WithRand(rnd randx.Rand) PickOption {
	return func(o *PickOptions) {
		o.Rand = rnd
	}
}

// NewPickOptions returns the options resulting from applying opts in order.
func NewPickOptions(opts ...PickOption) PickOptions {
	var po PickOptions
	for _, opt := range opts {
		opt(&po)
	}
	return po
}

// Validate returns an error wrapping [ErrInvalidArgument] if the
// options are out of range.
func (o *PickOptions) Validate() error {
	if o.HasProbability && !(o.EmptyProbability >= 0 && o.EmptyProbability <= 1) {
		return fmt.Errorf("%w: empty probability %v is not between 0 and 1", ErrInvalidArgument, o.EmptyProbability)
	}
	return nil
}

// Pick returns a random attribute from the given items.
// An empty list always yields [None]. Otherwise, without [AllowEmpty]
// or [EmptyProbability], each item is equally likely. With [AllowEmpty],
// [None] is one more equally likely candidate. With [EmptyProbability],
// a single draw decides whether [None] is returned, and an item is
// picked uniformly otherwise.
func Pick(items List, opts ...PickOption) (Attribute, error) {
	if len(items) == 0 {
		return None, nil
	}
	po := NewPickOptions(opts...)
	if err := po.Validate(); err != nil {
		return None, err
	}
	rnd := randx.Or(po.Rand)
	switch {
	case po.HasProbability:
		if randx.BoolP(po.EmptyProbability, rnd) {
			return None, nil
		}
	case po.AllowEmpty:
		i := randx.Index(len(items)+1, rnd)
		if i == len(items) {
			return None, nil
		}
		return items[i], nil
	}
	return items[randx.Index(len(items), rnd)], nil
}

// PickImage is like [Pick] but returns only the image of the picked
// attribute. ok is false when there are no items to pick from, which
// is distinct from picking [None] and getting an empty image.
func PickImage(items List, opts ...PickOption) (image string, ok bool, err error) {
	if len(items) == 0 {
		return "", false, nil
	}
	a, err := Pick(items, opts...)
	if err != nil {
		return "", false, err
	}
	return a.Image, true, nil
}
