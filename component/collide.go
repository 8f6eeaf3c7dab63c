package component

import "math"

// Collidable is anything with a position and an opacity mask.
type Collidable interface {
	Position() (x, y float64)
	Mask() *Mask
}

// Collide reports whether the opaque pixels of a and b overlap at their
// current positions. Positions are floored to whole pixels before the
// offset is taken, so Collide(a, b) == Collide(b, a).
func Collide(a, b Collidable) bool {
	if a == nil || b == nil {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma.Count() == 0 || mb.Count() == 0 {
		return false
	}

	ax, ay := pixel(a.Position())
	bx, by := pixel(b.Position())
	return ma.Overlap(mb, bx-ax, by-ay)
}

func pixel(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}
