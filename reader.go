// Package tga decodes Truevision TGA raster images.
//
// The decoder handles raw and run-length encoded true-color and
// grayscale images at 8, 24 and 32 bits per pixel and always returns
// pixels in canonical order: top-left origin, rows top-to-bottom,
// channels RGB(A) or grayscale. Color-mapped images are not supported.
package tga

import (
	"image"
	"image/color"
	"io"
)

// DecodeBuffer reads a TGA image from r and returns its normalized
// pixel buffer. Each call is independent and side-effect-free, so
// concurrent decodes of separate streams are safe.
func DecodeBuffer(r io.Reader) (*PixelBuffer, error) {
	d, err := newDecoder(r)
	if err != nil {
		return nil, err
	}
	return d.decode()
}

// Decode reads a TGA image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	p, err := DecodeBuffer(r)
	if err != nil {
		return nil, err
	}
	return p.Image(), nil
}

// DecodeConfig returns the color model and dimensions of a TGA image
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := ParseHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	var model color.Model = color.NRGBAModel
	if h.bytesPerPixel() == 1 {
		model = color.GrayModel
	}
	return image.Config{
		ColorModel: model,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

func init() {
	// TGA has no magic bytes, only a trailing signature in version 2.0
	// files, which the image registry cannot sniff. Registering with an
	// empty magic string makes image.Decode try this decoder when
	// nothing else matches.
	image.RegisterFormat("tga", "", Decode, DecodeConfig)
}
