package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Palette for the generated art.
var (
	robeWhite  = color.NRGBA{R: 240, G: 236, B: 220, A: 255}
	haloGold   = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	skinTone   = color.NRGBA{R: 222, G: 184, B: 135, A: 255}
	satanRed   = color.NRGBA{R: 200, G: 20, B: 20, A: 255}
	hornBone   = color.NRGBA{R: 60, G: 40, B: 30, A: 255}
	judasOchre = color.NRGBA{R: 190, G: 150, B: 60, A: 255}
	pouchBrown = color.NRGBA{R: 110, G: 80, B: 40, A: 255}
	bronze     = color.NRGBA{R: 176, G: 120, B: 60, A: 255}
	crestRed   = color.NRGBA{R: 170, G: 0, B: 30, A: 255}
	lightShot  = color.NRGBA{R: 255, G: 250, B: 190, A: 255}
	fireShot   = color.NRGBA{R: 255, G: 90, B: 0, A: 255}
	silverShot = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	spearShot  = color.NRGBA{R: 150, G: 110, B: 70, A: 255}
	skyTop     = color.NRGBA{R: 20, G: 10, B: 40, A: 255}
	skyBottom  = color.NRGBA{R: 120, G: 30, B: 20, A: 255}
)

var placeholders = map[string]func() image.Image{
	"jesus":          jesus,
	"satan":          satan,
	"judas":          judas,
	"centurion":      centurion,
	"jesus_shot":     jesusShot,
	"satan_shot":     satanShot,
	"judas_shot":     judasShot,
	"centurion_shot": centurionShot,
}

// Background returns a vertical gradient sized w x h.
func Background(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.NRGBA{
			R: lerp8(skyTop.R, skyBottom.R, t),
			G: lerp8(skyTop.G, skyBottom.G, t),
			B: lerp8(skyTop.B, skyBottom.B, t),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, w, y+1), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

type canvas struct {
	*image.NRGBA
}

func newCanvas(w, h int) canvas {
	return canvas{image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (c canvas) rect(x0, y0, x1, y1 int, col color.NRGBA) {
	draw.Draw(c, image.Rect(x0, y0, x1, y1), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c canvas) ellipse(cx, cy, rx, ry float64, col color.NRGBA) {
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.SetNRGBA(x, y, col)
			}
		}
	}
}

func (c canvas) ring(cx, cy, r, thickness float64, col color.NRGBA) {
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if d <= r && d >= r-thickness {
				c.SetNRGBA(x, y, col)
			}
		}
	}
}

// triangle fills the triangle (ax,ay) (bx,by) (cx,cy).
func (c canvas) triangle(ax, ay, bx, by, cx, cy float64, col color.NRGBA) {
	b := c.Bounds()
	edge := func(x0, y0, x1, y1, px, py float64) float64 {
		return (px-x0)*(y1-y0) - (py-y0)*(x1-x0)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(ax, ay, bx, by, px, py)
			e1 := edge(bx, by, cx, cy, px, py)
			e2 := edge(cx, cy, ax, ay, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				c.SetNRGBA(x, y, col)
			}
		}
	}
}

func jesus() image.Image {
	c := newCanvas(64, 72)
	c.ring(32, 13, 13, 3, haloGold)
	c.ellipse(32, 16, 8, 9, skinTone)
	c.triangle(32, 24, 10, 72, 54, 72, robeWhite)
	c.rect(12, 34, 52, 40, robeWhite)
	return c
}

func satan() image.Image {
	c := newCanvas(64, 64)
	c.triangle(14, 2, 20, 18, 26, 12, hornBone)
	c.triangle(50, 2, 44, 18, 38, 12, hornBone)
	c.ellipse(32, 20, 12, 12, satanRed)
	c.triangle(32, 26, 8, 64, 56, 64, satanRed)
	c.triangle(56, 44, 64, 34, 60, 52, satanRed)
	return c
}

func judas() image.Image {
	c := newCanvas(64, 64)
	c.ellipse(32, 14, 9, 10, skinTone)
	c.rect(20, 24, 44, 64, judasOchre)
	c.rect(14, 28, 20, 52, judasOchre)
	c.rect(44, 28, 50, 52, judasOchre)
	c.ellipse(50, 54, 6, 6, pouchBrown)
	return c
}

func centurion() image.Image {
	c := newCanvas(64, 64)
	c.ellipse(32, 6, 14, 5, crestRed)
	c.ellipse(32, 18, 11, 10, bronze)
	c.ellipse(32, 20, 6, 6, skinTone)
	c.rect(16, 30, 48, 56, bronze)
	c.rect(2, 30, 14, 56, crestRed)
	c.rect(20, 56, 28, 64, bronze)
	c.rect(36, 56, 44, 64, bronze)
	return c
}

func jesusShot() image.Image {
	c := newCanvas(16, 28)
	c.rect(6, 0, 10, 28, lightShot)
	c.rect(0, 7, 16, 11, lightShot)
	return c
}

func satanShot() image.Image {
	c := newCanvas(16, 24)
	c.ellipse(8, 16, 7, 8, fireShot)
	c.triangle(8, 0, 2, 14, 14, 14, fireShot)
	return c
}

func judasShot() image.Image {
	c := newCanvas(14, 14)
	c.ellipse(7, 7, 7, 7, silverShot)
	return c
}

func centurionShot() image.Image {
	c := newCanvas(8, 32)
	c.rect(3, 0, 5, 24, spearShot)
	c.triangle(4, 32, 0, 22, 8, 22, silverShot)
	return c
}
