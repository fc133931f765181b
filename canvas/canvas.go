// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas provides an in-memory RGBA drawing surface for planets.
package canvas

import (
	"errors"
	"image"
	"slices"
	"sync"

	"cogentcore.org/planetgen/base/iox/imagex"
	"cogentcore.org/planetgen/planet"
	"golang.org/x/image/draw"
)

// ErrReleased is returned when using a canvas after [Canvas.Release].
var ErrReleased = errors.New("canvas: use of released canvas")

// Canvas is a [planet.Surface] that alpha-composites added layers onto
// an RGBA image, anchored at the top left corner. Layers larger than the
// canvas are clipped. It also keeps the list of layers added since the
// last clear.
type Canvas struct {
	size      image.Point
	pixels    *image.RGBA
	layers    []planet.Layer
	selection bool
	mu        sync.Mutex
}

// New returns a new transparent canvas of the given size,
// with selection enabled.
func New(width, height int) *Canvas {
	sz := image.Pt(width, height)
	return &Canvas{
		size:      sz,
		pixels:    image.NewRGBA(image.Rectangle{Max: sz}),
		selection: true,
	}
}

// Size returns the size of the canvas.
func (c *Canvas) Size() image.Point {
	return c.size
}

// Clear resets every pixel to transparent and forgets the added layers.
func (c *Canvas) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pixels == nil {
		return ErrReleased
	}
	clear(c.pixels.Pix)
	c.layers = nil
	return nil
}

// Add draws the layer over the current content.
func (c *Canvas) Add(l planet.Layer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pixels == nil {
		return ErrReleased
	}
	if l.Image == nil {
		return errors.New("canvas: layer has no image")
	}
	sb := l.Image.Bounds()
	dr := image.Rectangle{Max: sb.Size()}.Intersect(c.pixels.Bounds())
	draw.Draw(c.pixels, dr, l.Image, sb.Min, draw.Over)
	c.layers = append(c.layers, l)
	return nil
}

// SetSelection implements [planet.Selectable].
func (c *Canvas) SetSelection(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = on
}

// Selection returns whether interactive selection is enabled.
func (c *Canvas) Selection() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Layers returns the layers added since the last clear, in order.
func (c *Canvas) Layers() []planet.Layer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.layers)
}

// Image returns a copy of the current content, or nil once released.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pixels == nil {
		return nil
	}
	return imagex.CloneAsRGBA(c.pixels)
}

// Save saves the current content to the given file, with the
// format inferred from the filename.
func (c *Canvas) Save(filename string) error {
	im := c.Image()
	if im == nil {
		return ErrReleased
	}
	return imagex.Save(im, filename)
}

// Release frees the pixels of the canvas. Any later drawing fails
// with [ErrReleased].
func (c *Canvas) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pixels = nil
	c.layers = nil
}
