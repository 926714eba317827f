package tga

import (
	"bufio"
	"io"
)

type byteReader interface {
	io.Reader
	io.ByteReader
}

// unRLE expands the run-length encoded pixel data in r into a flat
// byte sequence of exactly pixelCount pixels.
//
// The stream alternates one-byte packet headers with pixel data. When
// the high bit of the header is set, the low seven bits plus one give
// the repeat count of the single pixel that follows. When it is clear
// they give the number of literal pixels that follow.
//
// A packet that would produce more than pixelCount pixels is a format
// violation and fails with ErrRLEOverrun instead of being truncated.
func unRLE(r io.Reader, pixelCount, bytesPerPixel int) ([]byte, error) {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	dst := make([]byte, 0, pixelCount*bytesPerPixel)
	pixel := make([]byte, bytesPerPixel)

	for read := 0; read < pixelCount; {
		b, err := br.ReadByte()
		if err != nil {
			return nil, ErrTruncatedRLE
		}

		runLength := int(b&0x7f) + 1
		if read+runLength > pixelCount {
			return nil, ErrRLEOverrun
		}

		if b&0x80 != 0 {
			// A run of the same pixel.
			if _, err := io.ReadFull(br, pixel); err != nil {
				return nil, ErrTruncatedRLE
			}
			for i := 0; i < runLength; i++ {
				dst = append(dst, pixel...)
			}
		} else {
			// A literal run, copy data.
			start := len(dst)
			dst = dst[:start+runLength*bytesPerPixel]
			if _, err := io.ReadFull(br, dst[start:]); err != nil {
				return nil, ErrTruncatedRLE
			}
		}
		read += runLength
	}

	return dst, nil
}
