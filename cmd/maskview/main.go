package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/armageddon/assets"
	"github.com/milk9111/armageddon/component"
	"github.com/milk9111/armageddon/obj"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 640
	screenHeight = 640
	cellPadding  = 16
)

// entry is one visual laid out beside its collision mask.
type entry struct {
	visual *obj.Visual
	sprite *ebiten.Image
	mask   *ebiten.Image
	x, y   float64
}

func (e *entry) Position() (float64, float64) { return e.x, e.y }
func (e *entry) Mask() *component.Mask        { return e.visual.Mask() }

// pointer is the visual following the mouse.
type pointer struct {
	visual *obj.Visual
	x, y   float64
}

func (p *pointer) Position() (float64, float64) { return p.x, p.y }
func (p *pointer) Mask() *component.Mask        { return p.visual.Mask() }

type viewer struct {
	entries []*entry
	current int
	cursor  pointer
}

func newViewer(lib *assets.Library, keys []string) (*viewer, error) {
	v := &viewer{}
	x, y, rowH := float64(cellPadding), float64(cellPadding), 0
	for _, key := range keys {
		vis, err := lib.Visual(key)
		if err != nil {
			return nil, err
		}
		w, h := vis.Width(), vis.Height()
		if x+float64(2*w+cellPadding) > screenWidth {
			x = cellPadding
			y += float64(rowH + cellPadding)
			rowH = 0
		}
		v.entries = append(v.entries, &entry{
			visual: vis,
			sprite: ebiten.NewImageFromImage(vis.Image),
			mask:   ebiten.NewImageFromImage(maskImage(vis.Mask())),
			x:      x,
			y:      y,
		})
		x += float64(2*w + 2*cellPadding)
		rowH = max(rowH, h)
	}
	if len(v.entries) == 0 {
		return nil, fmt.Errorf("no visuals to show")
	}
	v.cursor.visual = v.entries[0].visual
	return v, nil
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.current = (v.current + 1) % len(v.entries)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.current = (v.current + len(v.entries) - 1) % len(v.entries)
	}
	mx, my := ebiten.CursorPosition()
	v.cursor.visual = v.entries[v.current].visual
	v.cursor.x, v.cursor.y = float64(mx), float64(my)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	for _, e := range v.entries {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.x, e.y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(e.sprite, op)

		mop := &ebiten.DrawImageOptions{}
		mop.GeoM.Translate(e.x+float64(e.visual.Width()), e.y)
		mop.Filter = ebiten.FilterNearest
		screen.DrawImage(e.mask, mop)

		if component.Collide(e, &v.cursor) {
			w, h := float32(e.visual.Width()), float32(e.visual.Height())
			vector.StrokeRect(screen, float32(e.x), float32(e.y), w, h, 2, colornames.Red, false)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(v.cursor.x, v.cursor.y)
	op.ColorScale.ScaleAlpha(0.6)
	screen.DrawImage(v.entries[v.current].sprite, op)

	cur := v.entries[v.current].visual
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pointer: %s  opaque px: %d  (left/right to cycle)", cur.Key, cur.Mask().Count()), 4, screenHeight-16)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// maskImage renders opaque mask pixels white on transparent.
func maskImage(m *component.Mask) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) {
				img.Set(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	return img
}

func main() {
	dir := flag.String("assets", "", "directory of PNG sprites that override the generated art")
	flag.Parse()

	keys := flag.Args()
	if len(keys) == 0 {
		keys = assets.Keys()
		sort.Strings(keys)
	}

	v, err := newViewer(assets.NewLibrary(*dir), keys)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Mask Viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
