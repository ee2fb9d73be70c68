package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompress_ReduceAlAnchoMaximo(t *testing.T) {
	c := NewCompressor(0)
	out, err := c.Compress(pngBytes(t, 1600, 900), 800)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 450, cfg.Height)
}

func TestCompress_NoAgranda(t *testing.T) {
	c := NewCompressor(DefaultQuality)
	out, err := c.Compress(pngBytes(t, 300, 200), 1200)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestCompress_RechazaNoImagen(t *testing.T) {
	c := NewCompressor(DefaultQuality)
	_, err := c.Compress([]byte("%PDF-1.4 no es una imagen"), 800)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

// withPNGSize reescribe el IHDR de un PNG para declarar otras dimensiones sin generar los píxeles.
func withPNGSize(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), data...)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestCompress_RechazaDemasiadosPixeles(t *testing.T) {
	c := NewCompressor(DefaultQuality)
	bomb := withPNGSize(t, pngBytes(t, 1, 1), 1000, 40000)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(bomb))
	require.NoError(t, err)
	require.Equal(t, 40000, cfg.Height)

	_, err = c.Compress(bomb, 800)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = c.Compress(withPNGSize(t, pngBytes(t, 1, 1), 20, 20), 1200)
	assert.NotErrorIs(t, err, ErrImageTooLarge, "dentro del tope pasa la validación de tamaño")
}
