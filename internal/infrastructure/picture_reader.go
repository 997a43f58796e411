package infrastructure

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"parallel-blur/internal/domain"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"
)

type ImageFileReader struct {
	logger *zap.Logger
}

func NewImageFileReader(logger *zap.Logger) *ImageFileReader {
	return &ImageFileReader{logger: logger}
}

// ReadPicture decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file.
func (r *ImageFileReader) ReadPicture(path string) (*domain.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		if err == image.ErrFormat {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	pic, err := FromImage(img)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Picture loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", pic.Width),
		zap.Int("height", pic.Height))
	return pic, nil
}

// FromImage converts any image.Image to a Picture, dropping the alpha channel.
func FromImage(img image.Image) (*domain.Picture, error) {
	bounds := img.Bounds()
	pic, err := domain.NewPicture(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Быстрый путь для RGBA и NRGBA
	switch src := img.(type) {
	case *image.RGBA:
		for y := range pic.Height {
			for x := range pic.Width {
				c := src.RGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
				pic.Set(x, y, domain.Pixel{R: c.R, G: c.G, B: c.B})
			}
		}
		return pic, nil
	case *image.NRGBA:
		for y := range pic.Height {
			for x := range pic.Width {
				c := src.NRGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
				pic.Set(x, y, domain.Pixel{R: c.R, G: c.G, B: c.B})
			}
		}
		return pic, nil
	}

	for y := range pic.Height {
		for x := range pic.Width {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pic.Set(x, y, domain.Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return pic, nil
}
