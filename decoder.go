package tga

import (
	"io"
)

type decoder struct {
	header Header
	r      io.Reader
}

func newDecoder(r io.Reader) (*decoder, error) {
	h, err := ParseHeader(r)
	if err != nil {
		return nil, err
	}
	return &decoder{header: h, r: r}, nil
}

// decode runs the full pipeline: skip metadata, read raw or RLE pixel
// bytes, normalize channels, normalize orientation. It fails on the
// first error of any stage.
func (d *decoder) decode() (*PixelBuffer, error) {
	if err := d.skipMetadata(); err != nil {
		return nil, err
	}

	buf, err := d.readPixels()
	if err != nil {
		return nil, err
	}

	layout, err := normalizeChannels(buf, d.header.bytesPerPixel())
	if err != nil {
		return nil, err
	}
	d.normalizeOrientation(buf, layout.Channels())

	return &PixelBuffer{
		Width:  uint32(d.header.Width),
		Height: uint32(d.header.Height),
		Layout: layout,
		Data:   buf,
	}, nil
}

// skipMetadata discards the optional image-ID field and colormap that
// sit between the header and the pixel data. Colormap contents are
// never interpreted because color-mapped image types are rejected at
// header parse; only the skip distance matters.
func (d *decoder) skipMetadata() error {
	skip := int64(d.header.IDLength)
	if d.header.ColormapType == 1 {
		skip += int64(d.header.ColormapLength) * int64(d.header.ColormapDepth/8)
	}
	if skip == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, d.r, skip); err != nil {
		return ErrTruncatedPixelData
	}
	return nil
}

// readPixels produces the flat width*height*bytesPerPixel byte
// sequence, expanding RLE packets when the image type calls for it.
func (d *decoder) readPixels() ([]byte, error) {
	h := d.header
	pixelCount := int(h.Width) * int(h.Height)

	if h.compressed() {
		return unRLE(d.r, pixelCount, h.bytesPerPixel())
	}

	buf := make([]byte, pixelCount*h.bytesPerPixel())
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, ErrTruncatedPixelData
	}
	return buf, nil
}

// normalizeChannels reorders the stored BGR(A) bytes into RGB(A) in
// place and returns the resulting layout. 8-bit grayscale data passes
// through untouched.
func normalizeChannels(buf []byte, bytesPerPixel int) (Layout, error) {
	switch bytesPerPixel {
	case 1:
		return Grayscale, nil
	case 3:
		for i := 0; i < len(buf); i += 3 {
			buf[i], buf[i+2] = buf[i+2], buf[i]
		}
		return RGB, nil
	case 4:
		for i := 0; i < len(buf); i += 4 {
			buf[i], buf[i+2] = buf[i+2], buf[i]
		}
		return RGBA, nil
	default:
		// Already excluded by Header.validate.
		return 0, ErrUnsupportedBitDepth
	}
}

// normalizeOrientation rewrites buf so that rows run top-to-bottom and
// columns left-to-right regardless of the origin the image descriptor
// declares. The vertical flip always runs before the horizontal one;
// both can apply to the same image.
func (d *decoder) normalizeOrientation(buf []byte, channels int) {
	width, height := int(d.header.Width), int(d.header.Height)
	stride := width * channels

	if !d.header.topOrigin() {
		tmp := make([]byte, stride)
		for y := 0; y < height/2; y++ {
			top := buf[y*stride : (y+1)*stride]
			bottom := buf[(height-1-y)*stride : (height-y)*stride]
			copy(tmp, top)
			copy(top, bottom)
			copy(bottom, tmp)
		}
	}

	if d.header.rightOrigin() {
		for y := 0; y < height; y++ {
			row := buf[y*stride : (y+1)*stride]
			for x := 0; x < width/2; x++ {
				a := row[x*channels : (x+1)*channels]
				b := row[(width-1-x)*channels : (width-x)*channels]
				for c := 0; c < channels; c++ {
					a[c], b[c] = b[c], a[c]
				}
			}
		}
	}
}
