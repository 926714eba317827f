package tga_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/gracejinsotrue/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = tga.DecodeError("broken strategy")

// broken is a Decoder stub that always fails.
func broken() tga.Decoder {
	return tga.DecoderFunc(func(r io.Reader) (*tga.PixelBuffer, error) {
		return nil, errBroken
	})
}

func TestChainFallsBack(t *testing.T) {
	stream := buildTGA(3, 8, 1, 2, 0x00, []byte{0x11, 0x22})

	chain := tga.Chain{broken(), tga.Engine()}
	p, err := chain.Decode(bytes.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x22, 0x11}, p.Data)
}

func TestChainFirstSuccessWins(t *testing.T) {
	stream := buildTGA(3, 8, 1, 1, 0x20, []byte{0x42})

	called := false
	sentinel := tga.DecoderFunc(func(r io.Reader) (*tga.PixelBuffer, error) {
		called = true
		return nil, errBroken
	})

	chain := tga.Chain{tga.Engine(), sentinel}
	_, err := chain.Decode(bytes.NewReader(stream))
	require.NoError(t, err)
	assert.False(t, called, "later strategies must not run after a success")
}

func TestChainSurfacesLastError(t *testing.T) {
	// Garbage input: every strategy fails, the final fallback's error
	// (here the engine's truncated header) is the one surfaced.
	chain := tga.Chain{broken(), tga.Engine()}
	_, err := chain.Decode(bytes.NewReader([]byte{0x01, 0x02}))
	assert.ErrorIs(t, err, tga.ErrTruncatedHeader)
}

func TestChainEmpty(t *testing.T) {
	_, err := tga.Chain{}.Decode(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestExternalMatchesEngine(t *testing.T) {
	// A plain bottom-origin 24-bit image both strategies understand.
	stored := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C,
	}
	stream := buildTGA(2, 24, 2, 2, 0x00, stored)

	ours, err := tga.Engine().Decode(bytes.NewReader(stream))
	require.NoError(t, err)
	theirs, err := tga.External().Decode(bytes.NewReader(stream))
	require.NoError(t, err)

	assert.Equal(t, ours.Width, theirs.Width)
	assert.Equal(t, ours.Height, theirs.Height)

	a, b := ours.Image(), theirs.Image()
	for y := 0; y < int(ours.Height); y++ {
		for x := 0; x < int(ours.Width); x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			assert.Equal(t, [4]uint32{ar, ag, ab, aa}, [4]uint32{br, bg, bb, ba}, "pixel (%d,%d)", x, y)
		}
	}
}
