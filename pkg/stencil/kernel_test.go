package stencil

import (
	"testing"

	"parallel-blur/internal/domain"
)

func newTestPicture(t testing.TB, width, height int, fn func(x, y int) domain.Pixel) *domain.Picture {
	t.Helper()
	pic, err := domain.NewPicture(width, height)
	if err != nil {
		t.Fatalf("NewPicture(%d, %d) returned %v", width, height, err)
	}
	for y := range height {
		for x := range width {
			pic.Set(x, y, fn(x, y))
		}
	}
	return pic
}

// gradient4x4 has distinct values at every coordinate.
func gradient4x4(x, y int) domain.Pixel {
	return domain.Pixel{
		R: uint8(x + 4*y),
		G: uint8(10*(x+y) + 3),
		B: uint8(200 - x*y*7),
	}
}

func TestBoxAverageConstant(t *testing.T) {
	grey := domain.Pixel{R: 50, G: 50, B: 50}
	pic := newTestPicture(t, 5, 5, func(int, int) domain.Pixel { return grey })

	Sequential(pic)

	for y := range 5 {
		for x := range 5 {
			if got := pic.At(x, y); got != grey {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, grey)
			}
		}
	}
}

func TestBoxAverageTruncates(t *testing.T) {
	// Neighbourhood sums to 17 per channel, 17/9 truncates to 1.
	pic := newTestPicture(t, 3, 3, func(x, y int) domain.Pixel {
		if x == 0 && y == 0 {
			return domain.Pixel{R: 9, G: 9, B: 9}
		}
		return domain.Pixel{R: 1, G: 1, B: 1}
	})
	src := pic.Snapshot()
	dst := pic.Clone()

	BoxAverage(src, dst, 1, 1)

	want := domain.Pixel{R: 1, G: 1, B: 1}
	if got := dst.At(1, 1); got != want {
		t.Errorf("BoxAverage = %v, want %v", got, want)
	}
}

func TestSequentialHandComputed(t *testing.T) {
	pic := newTestPicture(t, 4, 4, gradient4x4)
	orig := pic.Clone()

	Sequential(pic)

	want := map[[2]int]domain.Pixel{
		{1, 1}: {R: 5, G: 23, B: 193},
		{2, 1}: {R: 6, G: 33, B: 186},
		{1, 2}: {R: 9, G: 33, B: 186},
		{2, 2}: {R: 10, G: 43, B: 172},
	}
	for xy, px := range want {
		if got := pic.At(xy[0], xy[1]); got != px {
			t.Errorf("interior (%d,%d) = %v, want %v", xy[0], xy[1], got, px)
		}
	}
	assertBorderUnchanged(t, orig, pic)
}

func TestSequentialReadsOnlySnapshot(t *testing.T) {
	// A spike in the middle must not leak into neighbours through already
	// written destination pixels.
	pic := newTestPicture(t, 5, 3, func(x, y int) domain.Pixel {
		if x == 2 && y == 1 {
			return domain.Pixel{R: 90}
		}
		return domain.Pixel{}
	})

	Sequential(pic)

	for x := 1; x <= 3; x++ {
		if got := pic.At(x, 1).R; got != 10 {
			t.Errorf("pixel (%d,1).R = %d, want 10", x, got)
		}
	}
}

func TestSequentialSmallPictures(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 2}, {2, 7}, {7, 2}} {
		pic := newTestPicture(t, size[0], size[1], gradient4x4)
		orig := pic.Clone()

		Sequential(pic)

		if !pic.Equal(orig) {
			t.Errorf("%dx%d picture changed, it has no interior", size[0], size[1])
		}
	}
}

func assertBorderUnchanged(t *testing.T, want, got *domain.Picture) {
	t.Helper()
	for y := range want.Height {
		for x := range want.Width {
			if x != 0 && y != 0 && x != want.Width-1 && y != want.Height-1 {
				continue
			}
			if got.At(x, y) != want.At(x, y) {
				t.Errorf("border pixel (%d,%d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
			}
		}
	}
}
