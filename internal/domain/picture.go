package domain

import "fmt"

// Picture is a width x height grid of RGB pixels stored row-major.
type Picture struct {
	Width, Height int
	pix           []Pixel
}

// NewPicture allocates a black picture of the given size.
func NewPicture(width, height int) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Picture{
		Width:  width,
		Height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

func (p *Picture) InBounds(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

// At returns the pixel at (x, y). It panics on out of range coordinates,
// like slice indexing does.
func (p *Picture) At(x, y int) Pixel {
	if !p.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.Width, p.Height))
	}
	return p.pix[y*p.Width+x]
}

func (p *Picture) Set(x, y int, px Pixel) {
	if !p.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.Width, p.Height))
	}
	p.pix[y*p.Width+x] = px
}

// Fill sets every pixel to px.
func (p *Picture) Fill(px Pixel) {
	for i := range p.pix {
		p.pix[i] = px
	}
}

// Clone returns a deep copy of p.
func (p *Picture) Clone() *Picture {
	pix := make([]Pixel, len(p.pix))
	copy(pix, p.pix)
	return &Picture{Width: p.Width, Height: p.Height, pix: pix}
}

func (p *Picture) Equal(other *Picture) bool {
	if other == nil || p.Width != other.Width || p.Height != other.Height {
		return false
	}
	for i := range p.pix {
		if p.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// DiffCount returns how many pixels differ between two pictures of equal size.
func (p *Picture) DiffCount(other *Picture) int {
	if p.Width != other.Width || p.Height != other.Height {
		return len(p.pix)
	}
	n := 0
	for i := range p.pix {
		if p.pix[i] != other.pix[i] {
			n++
		}
	}
	return n
}

// Interior returns the region of pixels whose whole 3x3 neighbourhood lies
// inside the picture. It is empty for pictures narrower or shorter than 3.
func (p *Picture) Interior() Region {
	return InteriorOf(p.Width, p.Height)
}

func InteriorOf(width, height int) Region {
	r := Region{MinX: 1, MinY: 1, MaxX: width - 1, MaxY: height - 1}
	if r.Empty() {
		return Region{MinX: 1, MinY: 1, MaxX: 1, MaxY: 1}
	}
	return r
}

// Snapshot takes a read-only deep copy of p.
func (p *Picture) Snapshot() Snapshot {
	return Snapshot{pic: p.Clone()}
}

// Snapshot is an immutable copy of a picture. It only exposes reads, so it can
// be shared by any number of goroutines without locking.
type Snapshot struct {
	pic *Picture
}

func (s Snapshot) Width() int { return s.pic.Width }
func (s Snapshot) Height() int { return s.pic.Height }

func (s Snapshot) At(x, y int) Pixel {
	return s.pic.At(x, y)
}

// Valid reports whether the snapshot holds a picture.
func (s Snapshot) Valid() bool {
	return s.pic != nil
}

// Release drops the snapshot's reference to its pixel data.
func (s *Snapshot) Release() {
	s.pic = nil
}
