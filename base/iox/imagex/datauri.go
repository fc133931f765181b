// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"
)

const dataPrefix = "data:"

// ErrNotDataURI is returned when parsing a string that is not a data URI.
var ErrNotDataURI = errors.New("imagex: not a data URI")

// IsDataURI returns whether the given image reference is a data URI.
func IsDataURI(ref string) bool {
	return len(ref) >= len(dataPrefix) && strings.EqualFold(ref[:len(dataPrefix)], dataPrefix)
}

// DataURI returns a base64 data URI for the given MIME type and bytes,
// in the same form as the browser FileReader.readAsDataURL.
func DataURI(mime string, data []byte) string {
	var sb strings.Builder
	sb.Grow(len(dataPrefix) + len(mime) + 8 + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString(dataPrefix)
	sb.WriteString(mime)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

// ParseDataURI returns the MIME type and the decoded payload of the given
// data URI. Both base64 and percent-encoded payloads are supported.
// The MIME type defaults to "text/plain" as in RFC 2397.
func ParseDataURI(uri string) (mime string, data []byte, err error) {
	if !IsDataURI(uri) {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(uri[len(dataPrefix):], ",")
	if !ok {
		return "", nil, fmt.Errorf("imagex.ParseDataURI: missing ',' separator")
	}
	isBase64 := false
	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		isBase64 = true
		meta = meta[:len(meta)-len(";base64")]
	}
	mime, _, _ = strings.Cut(meta, ";")
	if mime == "" {
		mime = "text/plain"
	}
	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return mime, nil, fmt.Errorf("imagex.ParseDataURI: %w", err)
		}
		return mime, data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return mime, nil, fmt.Errorf("imagex.ParseDataURI: %w", err)
	}
	return mime, []byte(s), nil
}

// EncodeDataURI encodes the image in the given format as a data URI.
func EncodeDataURI(im image.Image, f Formats) (string, error) {
	var b bytes.Buffer
	if err := Write(im, &b, f); err != nil {
		return "", err
	}
	return DataURI(f.MIME(), b.Bytes()), nil
}

// DecodeDataURI decodes the image stored in the given data URI.
// The format is inferred from the payload, not the declared MIME type.
func DecodeDataURI(uri string) (image.Image, Formats, error) {
	_, data, err := ParseDataURI(uri)
	if err != nil {
		return nil, None, err
	}
	return Read(bytes.NewReader(data))
}
