// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// CloneAsRGBA returns an RGBA copy of the supplied image.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	return img
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return CloneAsRGBA(src)
}

// Scaler resizes an image to exactly the given size, ignoring aspect ratio.
type Scaler func(src image.Image, size image.Point) image.Image

// ScaleBiLinear resizes using bilinear interpolation from x/image/draw.
// It is fast and adequate for the small layer images of a planet.
func ScaleBiLinear(src image.Image, size image.Point) image.Image {
	if src.Bounds().Size() == size {
		return src
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ScaleLanczos resizes using the Lanczos filter from bild, which is
// slower but keeps hard pixel-art edges sharper when downscaling.
func ScaleLanczos(src image.Image, size image.Point) image.Image {
	if src.Bounds().Size() == size {
		return src
	}
	return transform.Resize(src, size.X, size.Y, transform.Lanczos)
}

// ScalerByName returns the [Scaler] with the given name:
// "bilinear" (the default for "") or "lanczos".
func ScalerByName(name string) (Scaler, error) {
	switch strings.ToLower(name) {
	case "", "bilinear":
		return ScaleBiLinear, nil
	case "lanczos":
		return ScaleLanczos, nil
	}
	return nil, fmt.Errorf("imagex.ScalerByName: unknown scaler %q", name)
}
