package tga

// A DecodeError reports that the input is not a valid TGA stream or
// uses a feature this decoder does not implement. Every error the
// decoder returns is one of the constants below, so callers can match
// them with errors.Is.
type DecodeError string

func (e DecodeError) Error() string {
	return "tga: " + string(e)
}

const (
	// ErrTruncatedHeader means fewer than 18 header bytes were available.
	ErrTruncatedHeader DecodeError = "truncated header"

	// ErrUnsupportedImageType means the image type is not one of the
	// raw or RLE true-color/grayscale types.
	ErrUnsupportedImageType DecodeError = "unsupported image type"

	// ErrUnsupportedBitDepth means the pixel depth is not 8, 24 or 32 bits.
	ErrUnsupportedBitDepth DecodeError = "unsupported bit depth"

	// ErrInvalidDimensions means the header declares a zero width or height.
	ErrInvalidDimensions DecodeError = "invalid dimensions"

	// ErrTruncatedPixelData means the stream ended before the declared
	// amount of raw pixel data.
	ErrTruncatedPixelData DecodeError = "truncated pixel data"

	// ErrTruncatedRLE means the stream ended in the middle of a
	// run-length packet.
	ErrTruncatedRLE DecodeError = "truncated rle packet"

	// ErrRLEOverrun means a run-length packet would produce more pixels
	// than the header declares.
	ErrRLEOverrun DecodeError = "rle data overruns declared dimensions"
)

// imageTypeName returns the common name of a TGA image type.
func imageTypeName(t uint8) string {
	switch t {
	case itNoData:
		return "NoData"
	case itPaletted:
		return "Paletted"
	case itTrueColor:
		return "TrueColor"
	case itGrayscale:
		return "Grayscale"
	case itRLEPaletted:
		return "RLEPaletted"
	case itRLETrueColor:
		return "RLETrueColor"
	case itRLEGrayscale:
		return "RLEGrayscale"
	default:
		return "Unknown"
	}
}
