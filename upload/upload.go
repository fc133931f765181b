// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package upload turns user supplied image files into attributes,
// rejecting files that are not images.
package upload

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/planetgen/attribute"
	"cogentcore.org/planetgen/base/iox/imagex"
	"github.com/h2non/filetype"
)

// UnknownType is the MIME type of files whose type cannot be determined.
const UnknownType = "application/octet-stream"

// File is an uploaded file.
type File struct {

	// Name is the base name of the file, which becomes the attribute name.
	Name string

	// Type is the declared MIME type of the file. If it is empty,
	// the type is sniffed from Data.
	Type string

	Data []byte
}

// NotAnImageError is the error for a file whose MIME type is not an image type.
type NotAnImageError struct {
	Name string
	Type string
}

func (e *NotAnImageError) Error() string {
	return fmt.Sprintf("File %s does not appear to be an image file, but a %s", e.Name, e.Type)
}

// MIME returns the MIME type of the file: the declared type if there is one,
// and otherwise the type sniffed from its content or, failing that, its
// extension.
func (f *File) MIME() string {
	if f.Type != "" {
		return f.Type
	}
	if kind, err := filetype.Match(f.Data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Name)), ".")
	if kind := filetype.GetType(ext); ext != "" && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return UnknownType
}

// ReadDataURI returns the content of the file as a base64 data URI.
// It returns a [*NotAnImageError] if the MIME type of the file
// is not an image type.
func ReadDataURI(f File) (string, error) {
	mime := f.MIME()
	if !strings.HasPrefix(mime, "image") {
		return "", &NotAnImageError{Name: f.Name, Type: mime}
	}
	return imagex.DataURI(mime, f.Data), nil
}

// Batch returns a new list with the attributes of items followed by one
// attribute per image file, in order, named by the file name. Files that
// are not images are skipped, and their errors are joined into the
// returned error. The items list is never modified.
func Batch(items attribute.List, files []File) (attribute.List, error) {
	res := make(attribute.List, len(items), len(items)+len(files))
	copy(res, items)
	var errs []error
	for _, f := range files {
		uri, err := ReadDataURI(f)
		if err != nil {
			slog.Warn("rejected upload", "file", f.Name, "err", err)
			errs = append(errs, err)
			continue
		}
		res = append(res, attribute.Attribute{Name: f.Name, Image: uri})
	}
	return res, errors.Join(errs...)
}

// Message returns the single message to show the user for the given
// error returned by [Batch]: that of the last rejected file. It returns
// "" for a nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var last *NotAnImageError
	var walk func(err error)
	walk = func(err error) {
		if ne, ok := err.(*NotAnImageError); ok {
			last = ne
			return
		}
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				walk(e)
			}
		case interface{ Unwrap() error }:
			if e := x.Unwrap(); e != nil {
				walk(e)
			}
		}
	}
	walk(err)
	if last == nil {
		return err.Error()
	}
	return last.Error()
}

// ReadDir reads all of the regular files of the given directory,
// in name order, skipping hidden files and subdirectories.
func ReadDir(dir string) ([]File, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []File
	for _, ent := range ents {
		if ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, ent.Name()))
		if err != nil {
			return files, err
		}
		files = append(files, File{Name: ent.Name(), Data: data})
	}
	return files, nil
}
