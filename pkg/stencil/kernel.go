// Package stencil computes the 3x3 box blur and splits it into independent
// jobs for a thread pool.
package stencil

import "parallel-blur/internal/domain"

// BlurRegionSize is the number of samples averaged for one output pixel.
const BlurRegionSize = 9

// BoxAverage writes the truncated per-channel mean of the 3x3 neighbourhood of
// (x, y) in src to dst at (x, y). (x, y) must be an interior coordinate.
func BoxAverage(src domain.Snapshot, dst *domain.Picture, x, y int) {
	var sumR, sumG, sumB int

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px := src.At(x+dx, y+dy)
			sumR += int(px.R)
			sumG += int(px.G)
			sumB += int(px.B)
		}
	}

	dst.Set(x, y, domain.Pixel{
		R: uint8(sumR / BlurRegionSize),
		G: uint8(sumG / BlurRegionSize),
		B: uint8(sumB / BlurRegionSize),
	})
}

// ApplyRegion blurs every pixel of r, reading only from src and writing only
// inside r in dst.
func ApplyRegion(src domain.Snapshot, dst *domain.Picture, r domain.Region) {
	for y := r.MinY; y < r.MaxY; y++ {
		for x := r.MinX; x < r.MaxX; x++ {
			BoxAverage(src, dst, x, y)
		}
	}
}

// Sequential blurs the interior of pic in place on the calling goroutine.
// Borders are left untouched.
func Sequential(pic *domain.Picture) {
	src := pic.Snapshot()
	defer src.Release()

	ApplyRegion(src, pic, pic.Interior())
}
