package stencil

import (
	"fmt"

	"parallel-blur/internal/domain"
)

// JobCount returns how many jobs strategy produces for a width x height picture.
func JobCount(strategy domain.Strategy, width, height int) int {
	iw := max(0, width-2)
	ih := max(0, height-2)

	switch strategy {
	case domain.StrategySequential:
		return 1
	case domain.StrategyPixel:
		return iw * ih
	case domain.StrategyRow:
		return ih
	case domain.StrategyColumn:
		return iw
	case domain.StrategyHalfVertical, domain.StrategyHalfHorizontal:
		return 2
	case domain.StrategyQuarter:
		return 4

	default:
		return 0
	}
}

// Partition splits the interior of a width x height picture into the regions
// handled by one job each. Regions never overlap and together cover the
// interior exactly once. Some regions may be empty on very small pictures.
func Partition(strategy domain.Strategy, width, height int) ([]domain.Region, error) {
	in := domain.InteriorOf(width, height)

	switch strategy {
	case domain.StrategySequential:
		return []domain.Region{in}, nil

	case domain.StrategyPixel:
		regions := make([]domain.Region, 0, JobCount(strategy, width, height))
		for x := 1; x < width-1; x++ {
			for y := 1; y < height-1; y++ {
				regions = append(regions, domain.Region{MinX: x, MinY: y, MaxX: x + 1, MaxY: y + 1})
			}
		}
		return regions, nil

	case domain.StrategyRow:
		regions := make([]domain.Region, 0, JobCount(strategy, width, height))
		for y := 1; y < height-1; y++ {
			regions = append(regions, domain.Region{MinX: in.MinX, MinY: y, MaxX: in.MaxX, MaxY: y + 1})
		}
		return regions, nil

	case domain.StrategyColumn:
		regions := make([]domain.Region, 0, JobCount(strategy, width, height))
		for x := 1; x < width-1; x++ {
			regions = append(regions, domain.Region{MinX: x, MinY: in.MinY, MaxX: x + 1, MaxY: in.MaxY})
		}
		return regions, nil

	case domain.StrategyHalfVertical:
		midX := splitPoint(in.MinX, in.MaxX)
		return []domain.Region{
			{MinX: in.MinX, MinY: in.MinY, MaxX: midX, MaxY: in.MaxY},
			{MinX: midX, MinY: in.MinY, MaxX: in.MaxX, MaxY: in.MaxY},
		}, nil

	case domain.StrategyHalfHorizontal:
		midY := splitPoint(in.MinY, in.MaxY)
		return []domain.Region{
			{MinX: in.MinX, MinY: in.MinY, MaxX: in.MaxX, MaxY: midY},
			{MinX: in.MinX, MinY: midY, MaxX: in.MaxX, MaxY: in.MaxY},
		}, nil

	case domain.StrategyQuarter:
		midX := splitPoint(in.MinX, in.MaxX)
		midY := splitPoint(in.MinY, in.MaxY)
		return []domain.Region{
			{MinX: in.MinX, MinY: in.MinY, MaxX: midX, MaxY: midY},
			{MinX: midX, MinY: in.MinY, MaxX: in.MaxX, MaxY: midY},
			{MinX: in.MinX, MinY: midY, MaxX: midX, MaxY: in.MaxY},
			{MinX: midX, MinY: midY, MaxX: in.MaxX, MaxY: in.MaxY},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknownStrategy, strategy)
	}
}

// splitPoint returns the boundary between the two halves of [lo, hi).
// An odd length gives the lower half the extra element.
func splitPoint(lo, hi int) int {
	return lo + (hi-lo+1)/2
}

// VerifyCover checks that regions cover the interior of a width x height
// picture exactly once and never touch the border.
func VerifyCover(regions []domain.Region, width, height int) error {
	in := domain.InteriorOf(width, height)
	owner := make([]int, width*height)

	for i, r := range regions {
		if r.Empty() {
			continue
		}
		if r.MinX < in.MinX || r.MinY < in.MinY || r.MaxX > in.MaxX || r.MaxY > in.MaxY {
			return fmt.Errorf("%w: region %d %v leaves interior %v", domain.ErrOutOfBounds, i, r, in)
		}
		for y := r.MinY; y < r.MaxY; y++ {
			for x := r.MinX; x < r.MaxX; x++ {
				idx := y*width + x
				if owner[idx] != 0 {
					return fmt.Errorf("%w: (%d,%d) claimed by regions %d and %d",
						domain.ErrRegionOverlap, x, y, owner[idx]-1, i)
				}
				owner[idx] = i + 1
			}
		}
	}

	for y := in.MinY; y < in.MaxY; y++ {
		for x := in.MinX; x < in.MaxX; x++ {
			if owner[y*width+x] == 0 {
				return fmt.Errorf("%w: (%d,%d)", domain.ErrRegionGap, x, y)
			}
		}
	}
	return nil
}
