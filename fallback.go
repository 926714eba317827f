package tga

import (
	"bytes"
	"image"
	"image/color"
	"io"

	ftga "github.com/ftrvxmtrx/tga"
)

// A Decoder turns a TGA byte stream into a pixel buffer. The engine
// implemented by this package is one Decoder; External wraps a
// third-party one. Chain composes them in priority order.
type Decoder interface {
	Decode(r io.Reader) (*PixelBuffer, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.Reader) (*PixelBuffer, error)

func (f DecoderFunc) Decode(r io.Reader) (*PixelBuffer, error) {
	return f(r)
}

// Engine returns the decoder implemented by this package.
func Engine() Decoder {
	return DecoderFunc(DecodeBuffer)
}

// External returns a Decoder backed by the ftrvxmtrx/tga package. It
// is the trusted fast path a converter can try before falling back to
// Engine; it handles colormapped images the engine rejects.
func External() Decoder {
	return DecoderFunc(func(r io.Reader) (*PixelBuffer, error) {
		m, err := ftga.Decode(r)
		if err != nil {
			return nil, err
		}
		return fromImage(m), nil
	})
}

// Chain tries each decoder in order and returns the first successful
// result. The input is buffered once up front so that every decoder
// sees the stream from the beginning. When all decoders fail, the
// error of the last one (the fallback of last resort) is returned.
type Chain []Decoder

func (c Chain) Decode(r io.Reader) (*PixelBuffer, error) {
	if len(c) == 0 {
		return nil, DecodeError("empty decoder chain")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, d := range c {
		p, err := d.Decode(bytes.NewReader(data))
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// fromImage flattens a decoded image into a PixelBuffer.
func fromImage(m image.Image) *PixelBuffer {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := m.(type) {
	case *image.Gray:
		data := make([]byte, 0, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			data = append(data, row[:w]...)
		}
		return &PixelBuffer{Width: uint32(w), Height: uint32(h), Layout: Grayscale, Data: data}
	case *image.NRGBA:
		data := make([]byte, 0, w*h*4)
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			data = append(data, row[:w*4]...)
		}
		return &PixelBuffer{Width: uint32(w), Height: uint32(h), Layout: RGBA, Data: data}
	default:
		data := make([]byte, 0, w*h*4)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				data = append(data, c.R, c.G, c.B, c.A)
			}
		}
		return &PixelBuffer{Width: uint32(w), Height: uint32(h), Layout: RGBA, Data: data}
	}
}
