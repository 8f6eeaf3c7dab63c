package component

import (
	"image"
	"math/bits"
)

// opaqueThreshold is the alpha value above which a pixel counts as solid.
const opaqueThreshold = 127

// Mask is a per-pixel opacity bitmap. Rows are packed into 64-bit words.
type Mask struct {
	width  int
	height int
	stride int
	words  []uint64
	bounds image.Rectangle
	count  int
}

// NewMask builds a mask from the alpha channel of img. The mask origin is
// the top-left corner of img's bounds.
func NewMask(img image.Image) *Mask {
	if img == nil {
		return newMask(0, 0)
	}
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > opaqueThreshold {
				m.set(x, y)
			}
		}
	}
	m.recompute()
	return m
}

// NewMaskFromFunc builds a width x height mask where solid reports which
// pixels are opaque.
func NewMaskFromFunc(width, height int, solid func(x, y int) bool) *Mask {
	m := newMask(width, height)
	if solid == nil {
		return m
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if solid(x, y) {
				m.set(x, y)
			}
		}
	}
	m.recompute()
	return m
}

func newMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 63) / 64
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

func (m *Mask) set(x, y int) {
	m.words[y*m.stride+x/64] |= 1 << uint(x%64)
}

// recompute refreshes the tight opaque bounds and the pixel count.
func (m *Mask) recompute() {
	m.count = 0
	m.bounds = image.Rectangle{}
	first := true
	for y := 0; y < m.height; y++ {
		row := m.words[y*m.stride : (y+1)*m.stride]
		for wi, w := range row {
			if w == 0 {
				continue
			}
			m.count += bits.OnesCount64(w)
			lo := wi*64 + bits.TrailingZeros64(w)
			hi := wi*64 + 63 - bits.LeadingZeros64(w)
			r := image.Rect(lo, y, hi+1, y+1)
			if first {
				m.bounds = r
				first = false
				continue
			}
			m.bounds = m.bounds.Union(r)
		}
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Bounds returns the smallest rectangle containing every opaque pixel.
func (m *Mask) Bounds() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.bounds
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	return m.count
}

// At reports whether the pixel at (x, y) is opaque. Out of range is empty.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.words[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Overlap reports whether m and other share an opaque pixel when other is
// placed at offset (dx, dy) relative to m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m.Count() == 0 || other.Count() == 0 {
		return false
	}
	shifted := other.bounds.Add(image.Pt(dx, dy))
	area := m.bounds.Intersect(shifted)
	if area.Empty() {
		return false
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
