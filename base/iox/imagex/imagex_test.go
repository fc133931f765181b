// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int, c color.Color) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			im.Set(x, y, c)
		}
	}
	return im
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)

	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("txt")
	assert.Error(t, err)
}

func TestMIMEToFormat(t *testing.T) {
	f, err := MIMEToFormat("image/png")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = MIMEToFormat("image/x-bmp")
	assert.NoError(t, err)
	assert.Equal(t, BMP, f)
	_, err = MIMEToFormat("text/plain")
	assert.Error(t, err)
	assert.Equal(t, "image/png", PNG.MIME())
	assert.Equal(t, "", None.MIME())
}

func TestWriteRead(t *testing.T) {
	src := testImage(4, 3, color.RGBA{200, 10, 10, 255})
	for _, f := range []Formats{PNG, GIF, TIFF, BMP} {
		var b bytes.Buffer
		require.NoError(t, Write(src, &b, f), f.String())
		im, rf, err := Read(&b)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, rf)
		assert.Equal(t, src.Bounds(), im.Bounds())
	}
	assert.Error(t, Write(src, &bytes.Buffer{}, None))
}

func TestDataURI(t *testing.T) {
	src := testImage(2, 2, color.RGBA{0, 0, 255, 255})
	uri, err := EncodeDataURI(src, PNG)
	require.NoError(t, err)
	assert.True(t, IsDataURI(uri))
	assert.Contains(t, uri, "data:image/png;base64,")

	im, f, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, color.RGBAModel.Convert(im.At(1, 1)))

	mime, data, err := ParseDataURI("data:,hello%20world")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mime)
	assert.Equal(t, "hello world", string(data))

	_, _, err = ParseDataURI("assets/bg.png")
	assert.ErrorIs(t, err, ErrNotDataURI)
	_, _, err = ParseDataURI("data:image/png;base64")
	assert.Error(t, err)
}

func TestScalers(t *testing.T) {
	src := testImage(8, 4, color.RGBA{10, 200, 10, 255})
	for _, name := range []string{"", "bilinear", "lanczos"} {
		sc, err := ScalerByName(name)
		require.NoError(t, err)
		out := sc(src, image.Pt(16, 16))
		assert.Equal(t, image.Pt(16, 16), out.Bounds().Size(), name)
		c := color.RGBAModel.Convert(out.At(8, 8)).(color.RGBA)
		assert.True(t, CompareColors(color.RGBA{10, 200, 10, 255}, c, 2), name)
	}
	assert.Same(t, src, ScaleBiLinear(src, image.Pt(8, 4)))
	_, err := ScalerByName("nearest")
	assert.Error(t, err)
}

func TestScaleLanczos(t *testing.T) {
	src := testImage(16, 16, color.RGBA{200, 40, 40, 255})
	up := ScaleLanczos(src, image.Pt(40, 40))
	assert.Equal(t, image.Pt(40, 40), up.Bounds().Size())
	down := ScaleLanczos(src, image.Pt(5, 3))
	assert.Equal(t, image.Pt(5, 3), down.Bounds().Size())
	c := color.RGBAModel.Convert(up.At(20, 20)).(color.RGBA)
	assert.True(t, CompareColors(color.RGBA{200, 40, 40, 255}, c, 2))
	assert.Same(t, src, ScaleLanczos(src, image.Pt(16, 16)))
}

func TestAsRGBA(t *testing.T) {
	src := testImage(2, 2, color.White)
	assert.Same(t, src, AsRGBA(src))
	assert.Nil(t, AsRGBA(nil))
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Equal(t, gray.Bounds(), AsRGBA(gray).Bounds())
}
