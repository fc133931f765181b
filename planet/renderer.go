// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import (
	"context"
	"sync"
	"sync/atomic"
)

// Renderer draws successive planets onto one surface. Renders are
// serialized, and a render that has been superseded by a newer one
// aborts with [ErrStaleDraw] before its next change to the surface,
// so that layers of an old selection never land on top of a new one.
type Renderer struct {
	surface Surface

	// gen is the generation of the latest render.
	gen atomic.Uint64

	mu      sync.Mutex
	current *Planet
}

// NewRenderer returns a new [Renderer] for the given surface.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s}
}

// Surface returns the surface of the renderer.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Generation returns the generation token of the latest render.
func (r *Renderer) Generation() uint64 {
	return r.gen.Load()
}

// Render attaches the surface to p, detaching it from the previously
// rendered planet, and draws p at the given size.
func (r *Renderer) Render(ctx context.Context, p *Planet, size int) error {
	gen := r.gen.Add(1)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil && r.current != p {
		r.current.Attach(nil)
	}
	r.current = p
	p.Attach(r.surface)
	return p.draw(ctx, size, func() bool {
		return r.gen.Load() != gen
	})
}
