package obj

import (
	"image"

	"github.com/milk9111/armageddon/component"
)

// Visual is an opaque handle to a sprite image and the opacity mask
// derived from it. A Visual is immutable once built.
type Visual struct {
	Key   string
	Image image.Image
	mask  *component.Mask
}

// NewVisual wraps img and precomputes its mask.
func NewVisual(key string, img image.Image) *Visual {
	return &Visual{Key: key, Image: img, mask: component.NewMask(img)}
}

// Mask returns the visual's opacity mask.
func (v *Visual) Mask() *component.Mask {
	if v == nil {
		return nil
	}
	return v.mask
}

// Width returns the sprite width in pixels.
func (v *Visual) Width() int {
	if v == nil || v.Image == nil {
		return 0
	}
	return v.Image.Bounds().Dx()
}

// Height returns the sprite height in pixels.
func (v *Visual) Height() int {
	if v == nil || v.Image == nil {
		return 0
	}
	return v.Image.Bounds().Dy()
}

// VisualProvider resolves visual keys to loaded visuals.
type VisualProvider interface {
	Visual(key string) (*Visual, error)
}

// Surface receives draw requests from simulation objects.
type Surface interface {
	DrawVisual(v *Visual, x, y float64)
	// DrawBar draws a w x h bar at (x, y) whose foreground covers ratio
	// of the width.
	DrawBar(x, y, w, h, ratio float64)
}
