package tga

import (
	"encoding/binary"
	"fmt"
	"io"
)

//------------------------//
// Header parser          //
//------------------------//

// Header is the fixed 18-byte descriptor at the start of every TGA
// stream. Fields are laid out in file order.
type Header struct {
	IDLength        uint8
	ColormapType    uint8 // 0 = no colormap, 1 = colormap present
	ImageType       uint8
	ColormapOrigin  uint16
	ColormapLength  uint16
	ColormapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	BitsPerPixel    uint8
	ImageDescriptor uint8
}

// ParseHeader reads and validates the fixed header, consuming exactly
// 18 bytes from r.
func ParseHeader(r io.Reader) (Header, error) {
	var p [headerLen]byte
	if _, err := io.ReadFull(r, p[:]); err != nil {
		return Header{}, ErrTruncatedHeader
	}

	h := Header{
		IDLength:        p[0],
		ColormapType:    p[1],
		ImageType:       p[2],
		ColormapOrigin:  binary.LittleEndian.Uint16(p[3:5]),
		ColormapLength:  binary.LittleEndian.Uint16(p[5:7]),
		ColormapDepth:   p[7],
		XOrigin:         binary.LittleEndian.Uint16(p[8:10]),
		YOrigin:         binary.LittleEndian.Uint16(p[10:12]),
		Width:           binary.LittleEndian.Uint16(p[12:14]),
		Height:          binary.LittleEndian.Uint16(p[14:16]),
		BitsPerPixel:    p[16],
		ImageDescriptor: p[17],
	}
	return h, h.validate()
}

func (h Header) validate() error {
	switch h.ImageType {
	case itTrueColor, itGrayscale, itRLETrueColor, itRLEGrayscale:
	default:
		return ErrUnsupportedImageType
	}
	switch h.BitsPerPixel {
	case 8, 24, 32:
	default:
		return ErrUnsupportedBitDepth
	}
	if h.Width == 0 || h.Height == 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// bytesPerPixel is the per-pixel byte count derived from the depth.
// validate keeps it in {1, 3, 4}.
func (h Header) bytesPerPixel() int {
	return int(h.BitsPerPixel) / 8
}

// compressed reports whether the pixel data is run-length encoded.
func (h Header) compressed() bool {
	return h.ImageType == itRLETrueColor || h.ImageType == itRLEGrayscale
}

// topOrigin reports whether rows are stored top-to-bottom. When false
// the first stored row is the bottom of the image.
func (h Header) topOrigin() bool {
	return h.ImageDescriptor&descTopOrigin != 0
}

// rightOrigin reports whether columns are stored right-to-left.
func (h Header) rightOrigin() bool {
	return h.ImageDescriptor&descRightOrigin != 0
}

func (h Header) String() string {
	return fmt.Sprintf("tga.Header{%dx%d %dbpp %s descriptor=%#02x}",
		h.Width, h.Height, h.BitsPerPixel, imageTypeName(h.ImageType), h.ImageDescriptor)
}
