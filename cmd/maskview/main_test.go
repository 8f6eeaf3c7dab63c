package main

import (
	"testing"

	"github.com/milk9111/armageddon/component"
)

func TestMaskImage(t *testing.T) {
	m := component.NewMaskFromFunc(3, 2, func(x, y int) bool { return x == y })
	img := maskImage(m)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	cases := []struct {
		x, y  int
		alpha uint8
	}{
		{0, 0, 0xff},
		{1, 1, 0xff},
		{1, 0, 0},
		{2, 1, 0},
	}
	for _, c := range cases {
		if got := img.NRGBAAt(c.x, c.y).A; got != c.alpha {
			t.Fatalf("alpha at (%d,%d) = %d, want %d", c.x, c.y, got, c.alpha)
		}
	}
}
