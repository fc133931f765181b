// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planet composites the attribute layers of a planet onto a
// drawing surface in the fixed z-order of a [Layout].
package planet

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/planetgen/attribute"
	"cogentcore.org/planetgen/base/iox/imagex"
)

// Planet holds one attribute per slot of its [Layout] and draws them
// onto the [Surface] attached to it. A Planet is made fresh for every
// selection; it is not meant to be changed while drawing.
type Planet struct {
	// Layout determines the slots and the drawing order.
	Layout *Layout

	// Decoder decodes the attribute images.
	Decoder Decoder

	// Scaler resizes layers when the layout scales them;
	// [imagex.ScaleBiLinear] if nil.
	Scaler imagex.Scaler

	values map[Slot]attribute.Attribute

	// surface is exclusively owned by this planet while attached.
	surface Surface

	// mu serializes draws and surface changes.
	mu sync.Mutex
}

// New returns a new planet with the given layout and decoder
// and no attributes set.
func New(layout *Layout, dec Decoder) *Planet {
	return &Planet{Layout: layout, Decoder: dec, values: map[Slot]attribute.Attribute{}}
}

// Set sets the attribute for the given slot. Setting a slot that is not
// part of the layout is allowed, but it is never drawn.
func (p *Planet) Set(slot Slot, a attribute.Attribute) *Planet {
	p.values[slot] = a
	return p
}

// SetAll sets the attributes of all of the given slots.
func (p *Planet) SetAll(vals map[Slot]attribute.Attribute) *Planet {
	for s, a := range vals {
		p.Set(s, a)
	}
	return p
}

// SetScaler sets the [Planet.Scaler].
func (p *Planet) SetScaler(sc imagex.Scaler) *Planet {
	p.Scaler = sc
	return p
}

// Attribute returns the attribute of the given slot, and
// whether the slot has been set.
func (p *Planet) Attribute(slot Slot) (attribute.Attribute, bool) {
	a, ok := p.values[slot]
	return a, ok
}

// Drawable returns the slots that draw a layer, in drawing order:
// set slots of the layout with a non-empty image.
func (p *Planet) Drawable() []Slot {
	var ds []Slot
	for _, s := range p.Layout.Order {
		if a, ok := p.values[s]; ok && !a.IsEmpty() {
			ds = append(ds, s)
		}
	}
	return ds
}

// Attach binds the given surface to the planet, replacing any
// previously attached one, which is returned so that the caller can
// release it. Attach(nil) detaches the surface.
func (p *Planet) Attach(s Surface) (previous Surface) {
	p.mu.Lock()
	defer p.mu.Unlock()
	previous = p.surface
	p.surface = s
	return previous
}

// Surface returns the attached surface, and false if there is none.
func (p *Planet) Surface() (Surface, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surface, p.surface != nil
}

// Draw clears the attached surface and draws the layers in the order of
// the layout. If the layout scales and size > 0, every layer is scaled
// to size x size. Layers are decoded and added one at a time; the first
// image that fails to decode aborts the draw with an
// [*ImageLoadFailedError]. Draw does nothing if no surface is attached.
func (p *Planet) Draw(ctx context.Context, size int) error {
	return p.draw(ctx, size, nil)
}

// draw implements [Planet.Draw]. If stale is non-nil, it is checked
// before touching the surface, and a true result aborts with [ErrStaleDraw].
func (p *Planet) draw(ctx context.Context, size int, stale func() bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.surface == nil {
		return nil
	}
	check := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if stale != nil && stale() {
			return ErrStaleDraw
		}
		return nil
	}
	if err := check(); err != nil {
		return err
	}
	if err := p.surface.Clear(); err != nil {
		return fmt.Errorf("planet: clearing surface: %w", err)
	}
	if sel, ok := p.surface.(Selectable); ok {
		sel.SetSelection(false)
	}
	for _, s := range p.Layout.Order {
		a, ok := p.values[s]
		if !ok || a.IsEmpty() {
			continue
		}
		im, err := p.load(ctx, s, a, size)
		if err != nil {
			return err
		}
		if err := check(); err != nil {
			return err
		}
		slog.Debug("planet: adding layer", "slot", s, "name", a.Name, "size", im.Bounds().Size())
		if err := p.surface.Add(Layer{Slot: s, Name: a.Name, Image: im}); err != nil {
			return fmt.Errorf("planet: adding %v layer %q: %w", s, a.Name, err)
		}
	}
	return nil
}

// load decodes and scales the image of one layer.
func (p *Planet) load(ctx context.Context, s Slot, a attribute.Attribute, size int) (image.Image, error) {
	if p.Decoder == nil {
		return nil, &ImageLoadFailedError{Slot: s, Name: a.Name, Err: fmt.Errorf("no decoder")}
	}
	im, err := p.Decoder.Decode(ctx, a.Image)
	if err == nil && im == nil {
		err = fmt.Errorf("decoder returned no image")
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ImageLoadFailedError{Slot: s, Name: a.Name, Err: err}
	}
	if p.Layout.Scale && size > 0 {
		sc := p.Scaler
		if sc == nil {
			sc = imagex.ScaleBiLinear
		}
		im = sc(im, image.Pt(size, size))
	}
	return im, nil
}
