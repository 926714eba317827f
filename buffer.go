package tga

import "image"

// PixelBuffer is the decoder output: channel-normalized pixel bytes in
// row-major order with the origin at the top-left corner. The buffer
// is owned by the caller; the decoder keeps no reference to it.
type PixelBuffer struct {
	Width  uint32
	Height uint32
	Layout Layout
	Data   []byte
}

// Image converts the buffer to a standard library image. Grayscale
// data becomes *image.Gray, everything else *image.NRGBA.
func (p *PixelBuffer) Image() image.Image {
	bounds := image.Rect(0, 0, int(p.Width), int(p.Height))
	switch p.Layout {
	case Grayscale:
		m := image.NewGray(bounds)
		copy(m.Pix, p.Data)
		return m
	case RGB:
		m := image.NewNRGBA(bounds)
		for i, j := 0, 0; i+2 < len(p.Data); i, j = i+3, j+4 {
			m.Pix[j+0] = p.Data[i+0]
			m.Pix[j+1] = p.Data[i+1]
			m.Pix[j+2] = p.Data[i+2]
			m.Pix[j+3] = 0xff
		}
		return m
	default:
		m := image.NewNRGBA(bounds)
		copy(m.Pix, p.Data)
		return m
	}
}
