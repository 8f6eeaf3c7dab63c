package obj

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

func solidVisual(key string, w, h int) *Visual {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{R: 200, A: 255}), image.Point{}, draw.Src)
	return NewVisual(key, img)
}

type mapProvider map[string]*Visual

func (m mapProvider) Visual(key string) (*Visual, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingVisual, key)
	}
	return v, nil
}

func testProvider() mapProvider {
	return mapProvider{
		"jesus":          solidVisual("jesus", 64, 72),
		"jesus_shot":     solidVisual("jesus_shot", 16, 28),
		"satan":          solidVisual("satan", 64, 64),
		"satan_shot":     solidVisual("satan_shot", 16, 24),
		"judas":          solidVisual("judas", 64, 64),
		"judas_shot":     solidVisual("judas_shot", 14, 14),
		"centurion":      solidVisual("centurion", 64, 64),
		"centurion_shot": solidVisual("centurion_shot", 8, 32),
	}
}

func testCatalog() (*Catalog, error) {
	return NewCatalog(testProvider(), map[string]AppearanceKeys{
		"satan":     {Visual: "satan", Shot: "satan_shot"},
		"judas":     {Visual: "judas", Shot: "judas_shot"},
		"centurion": {Visual: "centurion", Shot: "centurion_shot"},
	})
}

type recordingSurface struct {
	visuals []string
	bars    []float64
}

func (s *recordingSurface) DrawVisual(v *Visual, x, y float64) {
	s.visuals = append(s.visuals, v.Key)
}

func (s *recordingSurface) DrawBar(x, y, w, h, ratio float64) {
	s.bars = append(s.bars, ratio)
}
