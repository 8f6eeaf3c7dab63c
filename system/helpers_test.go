package system

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/milk9111/armageddon/obj"
	"github.com/milk9111/armageddon/prefabs"
)

type solidProvider map[string][2]int

func (p solidProvider) Visual(key string) (*obj.Visual, error) {
	size, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", obj.ErrMissingVisual, key)
	}
	img := image.NewNRGBA(image.Rect(0, 0, size[0], size[1]))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{G: 255, A: 255}), image.Point{}, draw.Src)
	return obj.NewVisual(key, img), nil
}

func testProvider() solidProvider {
	return solidProvider{
		"jesus":          {64, 72},
		"jesus_shot":     {16, 28},
		"satan":          {64, 64},
		"satan_shot":     {16, 24},
		"judas":          {64, 64},
		"judas_shot":     {14, 14},
		"centurion":      {64, 64},
		"centurion_shot": {8, 32},
	}
}

func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	opts = append([]Option{WithSeed(1), WithFirePolicy(NeverFire{})}, opts...)
	w, err := NewWorld(prefabs.DefaultTuning(), testProvider(), opts...)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

// parkPlayer moves the player where no spawn position can reach it.
func parkPlayer(w *World) {
	w.Player.X = -1000
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
