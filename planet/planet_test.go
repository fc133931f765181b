// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"

	"cogentcore.org/planetgen/attribute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a [Surface] that records the layers added since the last clear.
type recorder struct {
	mu        sync.Mutex
	layers    []Layer
	clears    int
	selection bool
}

func (r *recorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers = nil
	r.clears++
	return nil
}

func (r *recorder) Add(l Layer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers = append(r.layers, l)
	return nil
}

func (r *recorder) SetSelection(on bool) {
	r.selection = on
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	nms := make([]string, len(r.layers))
	for i, l := range r.layers {
		nms[i] = l.Name
	}
	return nms
}

// solidDecoder decodes any reference into a 16x16 image,
// failing for references listed in fail.
func solidDecoder(fail ...string) DecoderFunc {
	return func(ctx context.Context, ref string) (image.Image, error) {
		for _, f := range fail {
			if ref == f {
				return nil, fmt.Errorf("corrupt image %s", ref)
			}
		}
		im := image.NewRGBA(image.Rect(0, 0, 16, 16))
		im.Set(0, 0, color.RGBA{255, 0, 0, 255})
		return im, nil
	}
}

func attr(name string) attribute.Attribute {
	return attribute.Attribute{Name: name, Image: name + ".png"}
}

func TestDrawAllNone(t *testing.T) {
	p := New(Extended, solidDecoder())
	for _, s := range Extended.Order {
		p.Set(s, attribute.None)
	}
	rec := &recorder{selection: true}
	p.Attach(rec)
	require.NoError(t, p.Draw(context.Background(), 0))
	assert.Empty(t, rec.layers)
	assert.Equal(t, 1, rec.clears)
	assert.False(t, rec.selection)
	assert.Empty(t, p.Drawable())
}

func TestDrawFixedOrder(t *testing.T) {
	p := New(Extended, solidDecoder()).
		Set(Hat, attribute.None).
		Set(Body, attr("Ocean")).
		Set(Background, attr("Teal"))
	rec := &recorder{}
	p.Attach(rec)
	require.NoError(t, p.Draw(context.Background(), 0))
	assert.Equal(t, []string{"Teal", "Ocean"}, rec.names())
	assert.Equal(t, Background, rec.layers[0].Slot)
	assert.Equal(t, Body, rec.layers[1].Slot)
	assert.False(t, rec.layers[0].Selectable)
}

func TestDrawLayoutOrder(t *testing.T) {
	vals := map[Slot]attribute.Attribute{}
	for _, s := range Slots() {
		vals[s] = attr(s.String())
	}
	for _, l := range Layouts {
		rec := &recorder{}
		p := New(l, solidDecoder()).SetAll(vals)
		p.Attach(rec)
		require.NoError(t, p.Draw(context.Background(), 0))
		want := make([]string, len(l.Order))
		for i, s := range l.Order {
			want[i] = s.String()
		}
		assert.Equal(t, want, rec.names(), l.Name)
	}
}

func TestDrawIdempotent(t *testing.T) {
	p := New(Classic, solidDecoder()).
		Set(Background, attr("Black")).
		Set(Face, attr("Smile")).
		Set(Orbit, attr("Moon"))
	rec := &recorder{}
	p.Attach(rec)
	require.NoError(t, p.Draw(context.Background(), 32))
	first := rec.names()
	require.NoError(t, p.Draw(context.Background(), 32))
	assert.Equal(t, first, rec.names())
	assert.Equal(t, []string{"Black", "Smile", "Moon"}, first)
	assert.Equal(t, 2, rec.clears)
}

func TestDrawWithoutSurface(t *testing.T) {
	p := New(Classic, solidDecoder()).Set(Background, attr("Black"))
	_, ok := p.Surface()
	assert.False(t, ok)
	assert.NoError(t, p.Draw(context.Background(), 0))
}

func TestAttachReturnsPrevious(t *testing.T) {
	p := New(Classic, solidDecoder())
	a, b := &recorder{}, &recorder{}
	assert.Nil(t, p.Attach(a))
	assert.Same(t, a, p.Attach(b))
	s, ok := p.Surface()
	assert.True(t, ok)
	assert.Same(t, b, s)
}

func TestDrawScaling(t *testing.T) {
	rec := &recorder{}
	p := New(Classic, solidDecoder()).Set(Body, attr("Ice"))
	p.Attach(rec)
	require.NoError(t, p.Draw(context.Background(), 64))
	assert.Equal(t, image.Pt(64, 64), rec.layers[0].Image.Bounds().Size())

	require.NoError(t, p.Draw(context.Background(), 0))
	assert.Equal(t, image.Pt(16, 16), rec.layers[0].Image.Bounds().Size())

	p = New(Extended, solidDecoder()).Set(Body, attr("Ice"))
	p.Attach(rec)
	require.NoError(t, p.Draw(context.Background(), 64))
	assert.Equal(t, image.Pt(16, 16), rec.layers[0].Image.Bounds().Size())
}

func TestDrawImageLoadFailed(t *testing.T) {
	p := New(Classic, solidDecoder("Face.png")).
		Set(Background, attr("Background")).
		Set(Face, attr("Face")).
		Set(Orbit, attr("Orbit"))
	rec := &recorder{}
	p.Attach(rec)
	err := p.Draw(context.Background(), 0)
	var lf *ImageLoadFailedError
	require.ErrorAs(t, err, &lf)
	assert.Equal(t, Face, lf.Slot)
	assert.Equal(t, "Face", lf.Name)
	assert.Contains(t, err.Error(), "corrupt image")
	assert.Equal(t, []string{"Background"}, rec.names())

	p.Decoder = nil
	err = p.Draw(context.Background(), 0)
	assert.ErrorAs(t, err, &lf)
}

func TestDrawCanceled(t *testing.T) {
	p := New(Classic, solidDecoder()).Set(Background, attr("Black"))
	rec := &recorder{}
	p.Attach(rec)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Draw(ctx, 0), context.Canceled)
	assert.Equal(t, 0, rec.clears)
}

type failingSurface struct{ recorder }

func (f *failingSurface) Add(l Layer) error { return errors.New("surface full") }

func TestDrawSurfaceError(t *testing.T) {
	p := New(Classic, solidDecoder()).Set(Hand, attr("Wand"))
	p.Attach(&failingSurface{})
	err := p.Draw(context.Background(), 0)
	assert.ErrorContains(t, err, "surface full")
	assert.ErrorContains(t, err, "Wand")
}
