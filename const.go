package tga

// A TGA file starts with a fixed 18-byte header, followed by an
// optional image-ID field, an optional colormap and the pixel data.
// Multi-byte header fields are little-endian. Pixel data is either
// stored raw or run-length encoded, with channels in BGR(A) order.
//
// Resources:
// https://en.wikipedia.org/wiki/Truevision_TGA
// http://www.paulbourke.net/dataformats/tga/
// http://www.dca.fee.unicamp.br/~martino/disciplinas/ea978/tgaffs.pdf

const headerLen = 18 // Length of the fixed header in bytes.

// Image types (field 3 of the header).
const (
	itNoData       = 0
	itPaletted     = 1  // Uncompressed, color-mapped.
	itTrueColor    = 2  // Uncompressed, true-color.
	itGrayscale    = 3  // Uncompressed, black and white.
	itRLEPaletted  = 9  // Run-length encoded, color-mapped.
	itRLETrueColor = 10 // Run-length encoded, true-color.
	itRLEGrayscale = 11 // Run-length encoded, black and white.
)

// Image-descriptor bits (field 5.6 of the header). Bits 6-7 hold an
// interleaving flag that no producer has used in decades; it is kept
// in Header.ImageDescriptor but otherwise ignored.
const (
	descRightOrigin = 0x10 // Columns are stored right-to-left when set.
	descTopOrigin   = 0x20 // Rows are stored top-to-bottom when set.
)

// Layout describes the channel arrangement of a PixelBuffer.
type Layout int

const (
	Grayscale Layout = iota + 1 // 1 byte per pixel
	RGB                         // 3 bytes per pixel, red first
	RGBA                        // 4 bytes per pixel, red first
)

// Channels returns the number of bytes each pixel occupies.
func (l Layout) Channels() int {
	switch l {
	case Grayscale:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

func (l Layout) String() string {
	switch l {
	case Grayscale:
		return "Grayscale"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return "Unknown"
}
