// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/url"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the webp decoder for data URLs
)

// DefaultMimeType is used by DataURL when no or an unsupported type is given.
const DefaultMimeType = "image/png"

// ErrInvalidDataURL is returned when a string is not a decodable image data URL.
var ErrInvalidDataURL = errors.New("surface: invalid data URL")

type encodeFunc func(w io.Writer, img image.Image) error

var encoders = map[string]encodeFunc{
	"image/png": png.Encode,
	"image/jpeg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	},
	"image/bmp": bmp.Encode,
	"image/tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

// EmptyDataURL is what EncodeDataURL returns for an image without pixels.
const EmptyDataURL = "data:,"

// EncodeDataURL encodes img as a base64 data URL of the given MIME type.
// Like canvas toDataURL, an empty or unsupported type falls back to PNG,
// and an image with no pixels gives EmptyDataURL.
//
// PNG and TIFF keep every pixel. JPEG is lossy and drops alpha. BMP keeps
// opaque pixels only: transparent ones do not decode to the same colour.
func EncodeDataURL(img image.Image, mimeType string) (string, error) {
	if img.Bounds().Empty() {
		return EmptyDataURL, nil
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	enc, ok := encoders[mimeType]
	if !ok {
		mimeType = DefaultMimeType
		enc = encoders[mimeType]
	}

	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return "", fmt.Errorf("surface: encode %s: %w", mimeType, err)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Image is a decoded image handle. Its Width and Height start as the pixel
// dimensions and can be overridden, the way an HTML image element's can.
type Image struct {
	pixels  image.Image
	width   int
	height  int
	dataURL string
}

// NewImage wraps already decoded pixels.
func NewImage(pixels image.Image) *Image {
	b := pixels.Bounds()
	return &Image{pixels: pixels, width: b.Dx(), height: b.Dy()}
}

// ImageFromDataURL decodes a data URL (base64 or percent-encoded) holding a
// PNG, JPEG, BMP, TIFF or WebP image. A URL with no payload, such as
// EmptyDataURL, gives an image with no pixels.
func ImageFromDataURL(dataURL string) (*Image, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidDataURL
	}

	var raw []byte
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
		}
		raw = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
		}
		raw = []byte(s)
	}
	if len(raw) == 0 {
		img := NewImage(image.NewRGBA(image.Rectangle{}))
		img.dataURL = dataURL
		return img, nil
	}

	pixels, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	img := NewImage(pixels)
	img.dataURL = dataURL
	return img, nil
}

// Width returns the image width.
func (i *Image) Width() int { return i.width }

// Height returns the image height.
func (i *Image) Height() int { return i.height }

// SetSize overrides the reported width and height. The pixels are not
// resampled.
func (i *Image) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// Image returns the decoded pixels.
func (i *Image) Image() image.Image { return i.pixels }

// DataURL returns the data URL the image was decoded from, or "" for images
// built with NewImage.
func (i *Image) DataURL() string { return i.dataURL }
