package component

import (
	"image"
	"image/color"
	"testing"
)

func rectMask(w, h int) *Mask {
	return NewMaskFromFunc(w, h, func(x, y int) bool { return true })
}

func TestNewMaskAlphaThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.NRGBA{A: 255})
	img.Set(1, 0, color.NRGBA{A: 128})
	img.Set(2, 0, color.NRGBA{A: 127})
	img.Set(3, 0, color.NRGBA{A: 0})

	m := NewMask(img)
	want := []bool{true, true, false, false}
	for x, w := range want {
		if got := m.At(x, 0); got != w {
			t.Fatalf("At(%d,0) = %v, want %v", x, got, w)
		}
	}
	if m.Count() != 2 {
		t.Fatalf("expected 2 opaque pixels, got %d", m.Count())
	}
	if got, want := m.Bounds(), image.Rect(0, 0, 2, 1); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestMaskWideRows(t *testing.T) {
	// Spans more than one 64-bit word per row.
	m := NewMaskFromFunc(130, 3, func(x, y int) bool { return x == 129 && y == 2 })
	if !m.At(129, 2) || m.At(128, 2) || m.At(129, 1) {
		t.Fatalf("unexpected pixel layout in wide mask")
	}
	if got, want := m.Bounds(), image.Rect(129, 2, 130, 3); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestMaskOverlap(t *testing.T) {
	square := rectMask(10, 10)
	ring := NewMaskFromFunc(10, 10, func(x, y int) bool {
		return x == 0 || y == 0 || x == 9 || y == 9
	})
	dot := NewMaskFromFunc(2, 2, func(x, y int) bool { return true })

	cases := []struct {
		name   string
		a, b   *Mask
		dx, dy int
		want   bool
	}{
		{"same_spot", square, square, 0, 0, true},
		{"touching_edge", square, square, 10, 0, false},
		{"one_pixel_in", square, square, 9, 9, true},
		{"far_away", square, square, 100, -100, false},
		{"dot_inside_ring_hole", ring, dot, 4, 4, false},
		{"dot_on_ring_edge", ring, dot, 8, 4, true},
		{"empty_mask", square, NewMaskFromFunc(5, 5, nil), 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlap(c.b, c.dx, c.dy); got != c.want {
				t.Fatalf("Overlap(%d,%d) = %v, want %v", c.dx, c.dy, got, c.want)
			}
		})
	}
}
