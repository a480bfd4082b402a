// Package texture decodes raw image bytes into a uniform RGBA buffer for
// the rendering and inspection layer. The legacy Targa-style format is
// decoded by hand; standard raster formats go through delegate decoders and
// are copied into the same shape.
package texture

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/jacoelho/uidef/errors"
	"github.com/jacoelho/uidef/internal/tga"
)

// Surface is an opaque renderer-facing handle assigned when an image enters
// a cache. Zero means unassigned.
type Surface uint32

// Image is a decoded raster with Width*Height*4 RGBA bytes, rows
// top-to-bottom.
type Image struct {
	Width   int
	Height  int
	Pix     []byte
	Surface Surface
}

// Decode decodes image bytes using the filename-extension hint to pick a
// decoder. Decoding is a pure function of its input and may run
// concurrently across images.
func Decode(data []byte, hint string) (*Image, error) {
	switch ext(hint) {
	case ".tga":
		img, err := tga.Decode(data)
		if err != nil {
			return nil, err
		}
		return &Image{Width: img.Width, Height: img.Height, Pix: img.Pix}, nil
	case ".png":
		return delegate(png.Decode, data)
	case ".jpg", ".jpeg":
		return delegate(jpeg.Decode, data)
	case ".bmp":
		return delegate(bmp.Decode, data)
	default:
		p := errors.NewParsef(errors.ErrImageDecode, hint, "unsupported image format %q", ext(hint))
		return nil, &p
	}
}

// delegate runs a standard decoder and copies the result into the uniform
// RGBA shape.
func delegate(decode func(r io.Reader) (image.Image, error), data []byte) (*Image, error) {
	src, err := decode(bytes.NewReader(data))
	if err != nil {
		p := errors.NewParsef(errors.ErrImageDecode, "", "decode image: %v", err)
		return nil, &p
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    rgba.Pix,
	}, nil
}

func ext(hint string) string {
	e := strings.ToLower(path.Ext(hint))
	if e == "" && hint != "" && !strings.Contains(hint, ".") {
		e = "." + strings.ToLower(hint)
	}
	return e
}
