// Package convert re-encodes decoded TGA pixel buffers into other
// raster formats.
package convert

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gracejinsotrue/tga"
)

// Format is a supported output image format.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, WebP, BMP, TIFF:
		return f, nil
	default:
		return "", errors.Errorf("convert: unknown output format %q", s)
	}
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// Converter decodes TGA streams and re-encodes them in one target
// format. It is stateless and safe for concurrent use.
type Converter struct {
	decoder tga.Decoder
	format  Format
}

// New returns a Converter writing the given format. When pure is set
// the package engine decodes everything itself; otherwise the trusted
// external decoder is tried first and the engine only on its failure.
func New(format Format, pure bool) *Converter {
	var d tga.Decoder = tga.Engine()
	if !pure {
		d = tga.Chain{tga.External(), tga.Engine()}
	}
	return &Converter{decoder: d, format: format}
}

// File converts the TGA file at src into dst, creating parent
// directories as needed.
func (c *Converter) File(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "convert: open input")
	}
	defer f.Close()

	buf, err := c.decoder.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "convert: decode %s", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrap(err, "convert: create output dir")
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "convert: create output")
	}

	if err := c.Encode(out, buf); err != nil {
		out.Close()
		return errors.Wrapf(err, "convert: encode %s", dst)
	}
	return errors.Wrap(out.Close(), "convert: flush output")
}

// Encode writes buf to w in the converter's output format.
func (c *Converter) Encode(w io.Writer, buf *tga.PixelBuffer) error {
	m := buf.Image()
	switch c.format {
	case PNG:
		return png.Encode(w, m)
	case WebP:
		// nativewebp does not take every image type; normalize first.
		return nativewebp.Encode(w, toNRGBA(m), nil)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, nil)
	default:
		return errors.Errorf("convert: unknown output format %q", c.format)
	}
}

// OutputPath maps a source .tga path to the destination path next to
// it, with the target format's extension.
func (c *Converter) OutputPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + c.format.Ext()
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.Gray:
		draw.Draw(dst, b, src, b.Min, draw.Src)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
			}
		}
	}
	return dst
}
