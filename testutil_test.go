package tga_test

import (
	"bytes"
	"encoding/binary"
)

// buildTGA assembles a TGA stream from header fields and the encoded
// pixel bytes that follow them. No image-ID field or colormap is
// emitted; tests that need those splice the bytes in themselves.
func buildTGA(imageType, depth uint8, width, height uint16, descriptor uint8, pixels []byte) []byte {
	p := make([]byte, 18, 18+len(pixels))
	p[2] = imageType
	binary.LittleEndian.PutUint16(p[12:14], width)
	binary.LittleEndian.PutUint16(p[14:16], height)
	p[16] = depth
	p[17] = descriptor
	return append(p, pixels...)
}

// encodeRLE run-length encodes pixel data (bpp bytes per pixel) the
// way a TGA writer would: repeat packets for runs of equal pixels,
// literal packets otherwise, at most 128 pixels per packet.
func encodeRLE(pixels []byte, bpp int) []byte {
	var out []byte
	n := len(pixels) / bpp
	eq := func(i, j int) bool {
		return bytes.Equal(pixels[i*bpp:(i+1)*bpp], pixels[j*bpp:(j+1)*bpp])
	}

	for i := 0; i < n; {
		run := 1
		for i+run < n && run < 128 && eq(i, i+run) {
			run++
		}
		if run > 1 {
			out = append(out, byte(0x80|(run-1)))
			out = append(out, pixels[i*bpp:(i+1)*bpp]...)
			i += run
			continue
		}

		lit := 1
		for i+lit < n && lit < 128 && !(i+lit+1 < n && eq(i+lit, i+lit+1)) {
			lit++
		}
		out = append(out, byte(lit-1))
		out = append(out, pixels[i*bpp:(i+lit)*bpp]...)
		i += lit
	}
	return out
}
