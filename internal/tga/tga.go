// Package tga decodes the legacy Targa-style raster format used by the UI
// texture pipeline: uncompressed and run-length-encoded images at 8, 24, or
// 32 bits per pixel, normalized to a top-to-bottom RGBA buffer.
package tga

import (
	"encoding/binary"

	"github.com/jacoelho/uidef/errors"
)

const headerSize = 18

// Image type codes from the format header.
const (
	typeTrueColor    = 2
	typeGrayscale    = 3
	typeTrueColorRLE = 10
	typeGrayscaleRLE = 11
)

// descriptorTopOrigin is the descriptor bit signalling top-to-bottom row
// storage. The format's default is bottom-to-top.
const descriptorTopOrigin = 0x20

// Image is a decoded raster: Pix holds Width*Height*4 RGBA bytes, rows
// top-to-bottom.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Decode reads one image. Invalid dimensions, an unsupported type code, an
// unsupported pixel depth, and truncated pixel data are all hard errors;
// corrupt pixel data is never substituted.
func Decode(data []byte) (*Image, error) {
	if len(data) < headerSize {
		return nil, decodeErr("truncated header: %d bytes", len(data))
	}

	idLength := int(data[0])
	colorMapPresent := data[1] == 1
	imageType := data[2]
	colorMapLength := int(binary.LittleEndian.Uint16(data[5:7]))
	colorMapDepth := int(data[7])
	width := int(binary.LittleEndian.Uint16(data[12:14]))
	height := int(binary.LittleEndian.Uint16(data[14:16]))
	depth := int(data[16])
	descriptor := data[17]

	if width == 0 || height == 0 {
		return nil, decodeErr("invalid dimensions %dx%d", width, height)
	}

	bytesPerPixel := depth / 8
	switch depth {
	case 8, 24, 32:
	default:
		return nil, decodeErr("unsupported pixel depth %d", depth)
	}

	offset := headerSize + idLength
	if colorMapPresent {
		offset += colorMapLength * (colorMapDepth / 8)
	}
	if offset > len(data) {
		return nil, decodeErr("truncated before pixel data")
	}

	img := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}

	var err error
	switch imageType {
	case typeTrueColor, typeGrayscale:
		err = decodeFlat(img.Pix, data[offset:], width*height, bytesPerPixel)
	case typeTrueColorRLE, typeGrayscaleRLE:
		err = decodeRLE(img.Pix, data[offset:], width*height, bytesPerPixel)
	default:
		return nil, decodeErr("unsupported image type %d", imageType)
	}
	if err != nil {
		return nil, err
	}

	if descriptor&descriptorTopOrigin == 0 {
		flipRows(img.Pix, width, height)
	}
	return img, nil
}

// decodeFlat reads a flat uncompressed pixel array.
func decodeFlat(dst, src []byte, pixels, bytesPerPixel int) error {
	if len(src) < pixels*bytesPerPixel {
		return decodeErr("truncated pixel data: need %d bytes, have %d", pixels*bytesPerPixel, len(src))
	}
	for i := 0; i < pixels; i++ {
		writePixel(dst[i*4:], src[i*bytesPerPixel:], bytesPerPixel)
	}
	return nil
}

// decodeRLE expands the packet stream. Each packet's lead byte carries the
// run length minus one in its low seven bits; the high bit selects a run of
// one repeated pixel over a literal pixel sequence. Decoding halts once the
// expected pixel count is emitted; trailing bytes are ignored.
func decodeRLE(dst, src []byte, pixels, bytesPerPixel int) error {
	emitted := 0
	pos := 0
	for emitted < pixels {
		if pos >= len(src) {
			return decodeErr("truncated RLE stream at pixel %d of %d", emitted, pixels)
		}
		lead := src[pos]
		pos++
		count := int(lead&0x7F) + 1

		if lead&0x80 != 0 {
			if pos+bytesPerPixel > len(src) {
				return decodeErr("truncated RLE run at pixel %d of %d", emitted, pixels)
			}
			for i := 0; i < count && emitted < pixels; i++ {
				writePixel(dst[emitted*4:], src[pos:], bytesPerPixel)
				emitted++
			}
			pos += bytesPerPixel
			continue
		}

		for i := 0; i < count && emitted < pixels; i++ {
			if pos+bytesPerPixel > len(src) {
				return decodeErr("truncated RLE literal at pixel %d of %d", emitted, pixels)
			}
			writePixel(dst[emitted*4:], src[pos:], bytesPerPixel)
			pos += bytesPerPixel
			emitted++
		}
	}
	return nil
}

// writePixel converts one source pixel to RGBA: grayscale replicates to all
// channels with opaque alpha, BGR reorders with opaque alpha, and BGRA
// reorders keeping its alpha.
func writePixel(dst, src []byte, bytesPerPixel int) {
	switch bytesPerPixel {
	case 1:
		dst[0] = src[0]
		dst[1] = src[0]
		dst[2] = src[0]
		dst[3] = 0xFF
	case 3:
		dst[0] = src[2]
		dst[1] = src[1]
		dst[2] = src[0]
		dst[3] = 0xFF
	case 4:
		dst[0] = src[2]
		dst[1] = src[1]
		dst[2] = src[0]
		dst[3] = src[3]
	}
}

// flipRows swaps row pairs in place to normalize bottom-to-top storage.
func flipRows(pix []byte, width, height int) {
	stride := width * 4
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : top*stride+stride]
		b := pix[bottom*stride : bottom*stride+stride]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

func decodeErr(format string, args ...any) error {
	p := errors.NewParsef(errors.ErrImageDecode, "", format, args...)
	return &p
}
