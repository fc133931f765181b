// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import "image"

// Layer is one decoded image added to a [Surface].
type Layer struct {
	// Slot is the slot the layer was drawn for.
	Slot Slot

	// Name is the name of the attribute the image came from.
	Name string

	// Image is the decoded, possibly scaled, image, positioned at the
	// origin of the surface.
	Image image.Image

	// Selectable is whether the layer accepts interactive selection
	// on surfaces that support it. Planets always add layers with
	// selection disabled.
	Selectable bool
}

// Surface is a drawing surface that layers are composited onto,
// in the order they are added.
type Surface interface {
	// Clear removes everything drawn on the surface.
	Clear() error

	// Add draws the layer over everything drawn so far.
	Add(l Layer) error
}

// Selectable is implemented by surfaces that support
// interactive selection of their layers.
type Selectable interface {
	// SetSelection enables or disables selection on the surface.
	SetSelection(on bool)
}
