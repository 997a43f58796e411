package domain

import (
	"errors"
	"testing"
)

func TestNewPictureInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewPicture(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewPicture(%d, %d) = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestPictureSetAt(t *testing.T) {
	pic, err := NewPicture(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	px := Pixel{R: 1, G: 2, B: 3}
	pic.Set(2, 1, px)

	if got := pic.At(2, 1); got != px {
		t.Errorf("At(2,1) = %v, want %v", got, px)
	}
	if got := pic.At(1, 1); got != (Pixel{}) {
		t.Errorf("At(1,1) = %v, want zero pixel", got)
	}
}

func TestPictureAtOutOfBoundsPanics(t *testing.T) {
	pic, _ := NewPicture(2, 2)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("recovered %v, want ErrOutOfBounds", r)
		}
	}()
	pic.At(2, 0)
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	pic, _ := NewPicture(2, 2)
	pic.Fill(Pixel{R: 7})

	snap := pic.Snapshot()
	pic.Set(0, 0, Pixel{R: 99})

	if got := snap.At(0, 0); got.R != 7 {
		t.Errorf("snapshot changed with source: R = %d, want 7", got.R)
	}
	if snap.Width() != 2 || snap.Height() != 2 {
		t.Errorf("snapshot size = %dx%d, want 2x2", snap.Width(), snap.Height())
	}

	snap.Release()
	if snap.Valid() {
		t.Errorf("Valid() = true after Release")
	}
}

func TestCloneAndEqual(t *testing.T) {
	pic, _ := NewPicture(3, 3)
	pic.Fill(Pixel{G: 4})
	clone := pic.Clone()

	if !clone.Equal(pic) {
		t.Fatalf("clone not equal to source")
	}
	clone.Set(1, 1, Pixel{})
	if clone.Equal(pic) || clone.DiffCount(pic) != 1 {
		t.Errorf("DiffCount = %d after one change, want 1", clone.DiffCount(pic))
	}
}

func TestInterior(t *testing.T) {
	tests := []struct {
		w, h int
		area int
	}{
		{5, 4, 6},
		{3, 3, 1},
		{2, 9, 0},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := InteriorOf(tt.w, tt.h).Area(); got != tt.area {
			t.Errorf("InteriorOf(%d, %d).Area() = %d, want %d", tt.w, tt.h, got, tt.area)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range AllStrategies {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStrategy("diagonal"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(diagonal) = %v, want ErrUnknownStrategy", err)
	}
}
