package component

import (
	"sort"

	"github.com/jakecoffman/cp"
)

// Index is a broad phase over the opaque bounds of a fixed set of
// Collidables. Each item becomes a static box in a chipmunk space, so a
// query only visits items whose bounds meet the query before the pixel test
// runs. Positions are captured at construction; rebuild it after items move.
type Index struct {
	space   *cp.Space
	items   []Collidable
	removed []bool
}

// NewIndex indexes items by their current position. Items with an empty
// mask are kept in the slice order but never reported.
func NewIndex[T Collidable](items []T) *Index {
	ix := &Index{
		space:   cp.NewSpace(),
		items:   make([]Collidable, len(items)),
		removed: make([]bool, len(items)),
	}
	for i, item := range items {
		ix.items[i] = item
		m := item.Mask()
		if m.Count() == 0 {
			continue
		}
		x, y := pixel(item.Position())
		shape := cp.NewBox2(ix.space.StaticBody, worldBB(m, x, y), 0)
		shape.UserData = i
		ix.space.AddShape(shape)
	}
	return ix
}

// Len returns the number of indexed items, removed ones included.
func (ix *Index) Len() int { return len(ix.items) }

// Remove hides item i from later queries.
func (ix *Index) Remove(i int) {
	if i >= 0 && i < len(ix.removed) {
		ix.removed[i] = true
	}
}

// Removed reports whether item i was removed.
func (ix *Index) Removed(i int) bool {
	return i >= 0 && i < len(ix.removed) && ix.removed[i]
}

// Candidates returns, in ascending order, the items whose opaque bounds
// meet those of c.
func (ix *Index) Candidates(c Collidable) []int {
	if c == nil {
		return nil
	}
	m := c.Mask()
	if m.Count() == 0 {
		return nil
	}
	x, y := pixel(c.Position())
	var out []int
	ix.space.BBQuery(worldBB(m, x, y), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		i := shape.UserData.(int)
		if !ix.removed[i] {
			out = append(out, i)
		}
	}, nil)
	sort.Ints(out)
	return out
}

// First returns the lowest-numbered live item whose pixels overlap c, or -1.
func (ix *Index) First(c Collidable) int {
	for _, i := range ix.Candidates(c) {
		if Collide(c, ix.items[i]) {
			return i
		}
	}
	return -1
}

// worldBB is the opaque bounds of m placed at (x, y). Max edges are
// exclusive, so they are pulled in by one to keep touching boxes apart.
func worldBB(m *Mask, x, y int) cp.BB {
	r := m.Bounds()
	return cp.BB{
		L: float64(x + r.Min.X),
		B: float64(y + r.Min.Y),
		R: float64(x + r.Max.X - 1),
		T: float64(y + r.Max.Y - 1),
	}
}
