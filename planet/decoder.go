// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/planetgen/base/iox/imagex"
)

// Decoder decodes an image reference of an attribute into an image.
type Decoder interface {
	Decode(ctx context.Context, ref string) (image.Image, error)
}

// DecoderFunc is a function implementing [Decoder].
type DecoderFunc func(ctx context.Context, ref string) (image.Image, error)

func (f DecoderFunc) Decode(ctx context.Context, ref string) (image.Image, error) {
	return f(ctx, ref)
}

// FSDecoder decodes data URIs directly and any other reference
// as a slash-separated path inside FS.
type FSDecoder struct {
	// FS is the asset filesystem; if nil, only data URIs can be decoded.
	FS fs.FS
}

// NewFSDecoder returns a new [FSDecoder] for the given asset filesystem.
func NewFSDecoder(fsys fs.FS) *FSDecoder {
	return &FSDecoder{FS: fsys}
}

func (d *FSDecoder) Decode(ctx context.Context, ref string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if imagex.IsDataURI(ref) {
		im, _, err := imagex.DecodeDataURI(ref)
		return im, err
	}
	if d.FS == nil {
		return nil, errors.New("no asset filesystem to open image reference from")
	}
	name := path.Clean(strings.TrimPrefix(ref, "/"))
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid image reference %q", ref)
	}
	im, _, err := imagex.OpenFS(d.FS, name)
	return im, err
}
