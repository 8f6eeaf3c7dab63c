package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/armageddon/common"
	"github.com/milk9111/armageddon/obj"
	"golang.org/x/image/colornames"
)

// Surface draws simulation objects onto an ebiten screen. GPU images are
// created once per visual.
type Surface struct {
	screen *ebiten.Image
	images map[*obj.Visual]*ebiten.Image
}

var _ obj.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{images: make(map[*obj.Visual]*ebiten.Image)}
}

// Begin sets the target for the following draw calls.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
}

func (s *Surface) DrawVisual(v *obj.Visual, x, y float64) {
	if s.screen == nil || v == nil || v.Image == nil {
		return
	}
	img, ok := s.images[v]
	if !ok {
		img = ebiten.NewImageFromImage(v.Image)
		s.images[v] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.screen.DrawImage(img, op)
}

func (s *Surface) DrawBar(x, y, w, h, ratio float64) {
	if s.screen == nil {
		return
	}
	fill := w * common.Clamp(ratio, 0, 1)
	vector.FillRect(s.screen, float32(x), float32(y), float32(w), float32(h), colornames.Red, false)
	vector.FillRect(s.screen, float32(x), float32(y), float32(fill), float32(h), colornames.Lime, false)
}
