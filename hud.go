package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/armageddon/common"
	"github.com/milk9111/armageddon/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize    = 36
	bannerFontSize = 90
	hudPadding     = 10
)

// HUD draws the session counters and the game-over banner.
type HUD struct {
	label  text.Face
	banner text.Face
}

func NewHUD() (*HUD, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	return &HUD{
		label:  &text.GoTextFace{Source: s, Size: hudFontSize},
		banner: &text.GoTextFace{Source: s, Size: bannerFontSize},
	}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, w *system.World) {
	if w == nil {
		return
	}
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	line := float64(hudFontSize) + 4

	h.drawLabel(screen, fmt.Sprintf("LEVEL: %d", w.Level), colornames.Cyan, hudPadding, height-2*line-hudPadding)
	h.drawLabel(screen, fmt.Sprintf("RESURRECTIONS: %d", w.Resurrections), colornames.Red, hudPadding, height-line-hudPadding)

	if w.State() != system.StateLost {
		return
	}
	limit := w.Tuning.LostFrames()
	t := float32(1)
	if limit > 0 {
		t = float32(common.Clamp(float64(w.LostFrames())/float64(limit), 0, 1))
	}
	alpha := uint8(common.Lerp(0, 160, t))
	vector.FillRect(screen, 0, 0, float32(width), float32(height), color.NRGBA{A: alpha}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(width/2, height/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colornames.Red)
	text.Draw(screen, "GAME OVER", h.banner, op)
}

func (h *HUD) drawLabel(screen *ebiten.Image, s string, clr color.Color, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.label, op)
}
