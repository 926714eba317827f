package convert_test

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gracejinsotrue/tga"
	"github.com/gracejinsotrue/tga/internal/convert"
)

// writeTGA writes a 2x2 raw 24-bit top-origin TGA file and returns
// its path.
func writeTGA(t *testing.T, dir, name string) string {
	t.Helper()

	p := make([]byte, 18)
	p[2] = 2
	binary.LittleEndian.PutUint16(p[12:14], 2)
	binary.LittleEndian.PutUint16(p[14:16], 2)
	p[16] = 24
	p[17] = 0x20
	p = append(p, []byte{
		0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00,
		0xFF, 0x00, 0x00, 0xFF, 0xFF, 0xFF,
	}...)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, p, 0644))
	return path
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"png", "PNG", "webp", "bmp", "TIFF"} {
		_, err := convert.ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := convert.ParseFormat("jpg")
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	buf := &tga.PixelBuffer{
		Width:  2,
		Height: 1,
		Layout: tga.RGB,
		Data:   []byte{0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00},
	}

	var out bytes.Buffer
	c := convert.New(convert.PNG, true)
	require.NoError(t, c.Encode(&out, buf))

	m, err := png.Decode(&out)
	require.NoError(t, err)
	r, g, b, a := m.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xFFFF, 0, 0, 0xFFFF}, [4]uint32{r, g, b, a})
	_, g, _, _ = m.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), g)
}

func TestFileAllFormats(t *testing.T) {
	dir := t.TempDir()
	src := writeTGA(t, dir, "in.tga")

	for _, format := range []convert.Format{convert.PNG, convert.WebP, convert.BMP, convert.TIFF} {
		c := convert.New(format, true)
		dst := filepath.Join(dir, "out"+format.Ext())
		require.NoError(t, c.File(src, dst), format)

		data, err := os.ReadFile(dst)
		require.NoError(t, err, format)
		assert.NotEmpty(t, data, format)

		// Formats with an available decoder are read back.
		switch format {
		case convert.PNG:
			m, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 2, m.Bounds().Dx())
		case convert.BMP:
			m, err := bmp.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 2, m.Bounds().Dy())
		case convert.TIFF:
			m, err := tiff.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 2, m.Bounds().Dx())
		}
	}
}

func TestFileWithFallbackChain(t *testing.T) {
	dir := t.TempDir()
	src := writeTGA(t, dir, "in.tga")
	dst := filepath.Join(dir, "out.png")

	c := convert.New(convert.PNG, false)
	require.NoError(t, c.File(src, dst))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Bounds().Dx())
}

func TestFileDecodeError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.tga")
	require.NoError(t, os.WriteFile(src, []byte{0x01, 0x02, 0x03}, 0644))

	c := convert.New(convert.PNG, true)
	err := c.File(src, filepath.Join(dir, "out.png"))
	assert.ErrorIs(t, err, tga.ErrTruncatedHeader)
}

func TestOutputPath(t *testing.T) {
	c := convert.New(convert.WebP, true)
	assert.Equal(t, filepath.Join("a", "b.webp"), c.OutputPath(filepath.Join("a", "b.tga")))
	assert.Equal(t, "noext.webp", c.OutputPath("noext"))
}
