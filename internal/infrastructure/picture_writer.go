package infrastructure

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"parallel-blur/internal/domain"
)

var (
	_ domain.PictureReader = (*ImageFileReader)(nil)
	_ domain.PictureWriter = (*ImageFileWriter)(nil)
	_ domain.ReportWriter  = (*TXTReportWriter)(nil)
	_ domain.ConfigReader  = (*YAMLConfigReader)(nil)
)

type ImageFileWriter struct {
	logger *zap.Logger
}

func NewImageFileWriter(logger *zap.Logger) *ImageFileWriter {
	return &ImageFileWriter{logger: logger}
}

// WritePicture encodes pic using the format implied by the file extension.
func (w *ImageFileWriter) WritePicture(path string, pic *domain.Picture) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	writer := bufio.NewWriter(file)
	if err := encode(writer, ToImage(pic)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	w.logger.Debug("Picture saved", zap.String("path", path))
	return nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}
}

// ToImage converts pic to an opaque RGBA image.
func ToImage(pic *domain.Picture) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pic.Width, pic.Height))
	for y := range pic.Height {
		for x := range pic.Width {
			px := pic.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		}
	}
	return img
}

// OutputPath derives the file name a strategy's result is saved under.
func OutputPath(config *domain.Config, inputPath string, strategy domain.Strategy) string {
	name := config.OutputPrefix + strategy.String() + "_" + filepath.Base(inputPath)
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		// webp можно только читать
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return filepath.Join(config.OutputDir, name)
}
