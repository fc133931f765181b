// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import (
	"errors"
	"fmt"
)

// ErrStaleDraw is returned by a draw that was superseded by a newer
// render on the same surface before it finished.
var ErrStaleDraw = errors.New("planet: draw superseded by a newer render")

// ImageLoadFailedError is returned when the image of a slot cannot be
// decoded. The draw is aborted at that slot.
type ImageLoadFailedError struct {
	Slot Slot
	Name string
	Err  error
}

func (e *ImageLoadFailedError) Error() string {
	return fmt.Sprintf("planet: loading image for %v %q: %v", e.Slot, e.Name, e.Err)
}

func (e *ImageLoadFailedError) Unwrap() error {
	return e.Err
}
