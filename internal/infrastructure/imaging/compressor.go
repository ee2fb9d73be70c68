package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
)

// DefaultQuality calidad JPEG de salida (0.7 en la escala del navegador).
const DefaultQuality = 70

// MaxPixels tope de píxeles (ancho × alto) que se aceptan decodificar.
const MaxPixels = 36_000_000

var (
	// ErrUnsupportedImage el archivo no es una imagen que sepamos decodificar.
	ErrUnsupportedImage = errors.New("formato de imagen no soportado")
	// ErrImageTooLarge las dimensiones declaradas superan MaxPixels.
	ErrImageTooLarge = errors.New("la imagen tiene demasiados píxeles")
)

var supportedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var _ ports.ImageCompressor = (*Compressor)(nil)

// Compressor reescala al ancho máximo conservando la proporción y recodifica como JPEG.
type Compressor struct {
	quality int
}

// NewCompressor construye el compresor; quality fuera de 1..100 usa DefaultQuality.
func NewCompressor(quality int) *Compressor {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Compressor{quality: quality}
}

// Compress nunca agranda la imagen. Las transparencias quedan sobre fondo blanco.
func (c *Compressor) Compress(data []byte, maxWidth int) ([]byte, error) {
	if !isSupported(data) {
		return nil, ErrUnsupportedImage
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("leer cabecera de imagen: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decodificar imagen: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxWidth > 0 && w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, fmt.Errorf("codificar jpeg: %w", err)
	}
	return out.Bytes(), nil
}

func isSupported(data []byte) bool {
	m := mimetype.Detect(data)
	for _, t := range supportedTypes {
		if m.Is(t) {
			return true
		}
	}
	return false
}
