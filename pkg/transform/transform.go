// Package transform holds the single-threaded picture transformations.
package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parallel-blur/internal/domain"
)

const rgbComponents = 3

var (
	ErrUndefinedAngle   = errors.New("rotate is undefined for angle (must be 90, 180 or 270)")
	ErrUndefinedPlane   = errors.New("flip is undefined for plane (must be H or V)")
	ErrUnknownTransform = errors.New("unknown transform")
)

func Invert(pic *domain.Picture) {
	for y := range pic.Height {
		for x := range pic.Width {
			px := pic.At(x, y)
			px.R = domain.MaxIntensity - px.R
			px.G = domain.MaxIntensity - px.G
			px.B = domain.MaxIntensity - px.B
			pic.Set(x, y, px)
		}
	}
}

func Grayscale(pic *domain.Picture) {
	for y := range pic.Height {
		for x := range pic.Width {
			px := pic.At(x, y)
			avg := uint8((int(px.R) + int(px.G) + int(px.B)) / rgbComponents)
			pic.Set(x, y, domain.Pixel{R: avg, G: avg, B: avg})
		}
	}
}

// Rotate returns pic rotated clockwise by angle degrees.
func Rotate(pic *domain.Picture, angle int) (*domain.Picture, error) {
	newW, newH := pic.Width, pic.Height
	switch angle {
	case 90, 270:
		newW, newH = pic.Height, pic.Width
	case 180:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUndefinedAngle, angle)
	}

	out, err := domain.NewPicture(newW, newH)
	if err != nil {
		return nil, err
	}

	for i := range newW {
		for j := range newH {
			var px domain.Pixel
			switch angle {
			case 90:
				px = pic.At(j, newW-1-i)
			case 180:
				px = pic.At(newW-1-i, newH-1-j)
			case 270:
				px = pic.At(newH-1-j, i)
			}
			out.Set(i, j, px)
		}
	}
	return out, nil
}

// Flip mirrors pic in place. 'V' swaps top and bottom, 'H' swaps left and right.
func Flip(pic *domain.Picture, plane byte) error {
	if plane != 'V' && plane != 'H' {
		return fmt.Errorf("%w: %q", ErrUndefinedPlane, plane)
	}

	src := pic.Snapshot()
	defer src.Release()

	for x := range pic.Width {
		for y := range pic.Height {
			if plane == 'V' {
				pic.Set(x, y, src.At(x, pic.Height-1-y))
			} else {
				pic.Set(x, y, src.At(pic.Width-1-x, y))
			}
		}
	}
	return nil
}

// Apply runs a named transform such as "invert", "grayscale", "rotate:90" or
// "flip:H" and returns the resulting picture.
func Apply(pic *domain.Picture, op string) (*domain.Picture, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(op), ":")

	switch strings.ToLower(name) {
	case "invert":
		Invert(pic)
		return pic, nil
	case "grayscale", "greyscale":
		Grayscale(pic)
		return pic, nil
	case "rotate":
		angle, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedAngle, arg)
		}
		return Rotate(pic, angle)
	case "flip":
		if len(arg) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedPlane, arg)
		}
		if err := Flip(pic, strings.ToUpper(arg)[0]); err != nil {
			return nil, err
		}
		return pic, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, op)
	}
}
