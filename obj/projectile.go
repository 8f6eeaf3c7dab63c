package obj

import "github.com/milk9111/armageddon/component"

// Projectile is a shot travelling along the vertical axis. It is owned by
// the Actor that fired it.
type Projectile struct {
	X, Y   float64
	Visual *Visual
}

// NewProjectile creates a projectile at (x, y).
func NewProjectile(x, y float64, v *Visual) *Projectile {
	return &Projectile{X: x, Y: y, Visual: v}
}

// Advance moves the projectile vertically by vel. Negative moves up.
func (p *Projectile) Advance(vel float64) {
	p.Y += vel
}

// OffField reports whether the projectile is outside [0, height].
func (p *Projectile) OffField(height float64) bool {
	return p.Y < 0 || p.Y > height
}

// CollidesWith reports a pixel overlap with other.
func (p *Projectile) CollidesWith(other component.Collidable) bool {
	return component.Collide(p, other)
}

// Position implements component.Collidable.
func (p *Projectile) Position() (float64, float64) { return p.X, p.Y }

// Mask implements component.Collidable.
func (p *Projectile) Mask() *component.Mask { return p.Visual.Mask() }

// Draw renders the projectile.
func (p *Projectile) Draw(s Surface) {
	if s == nil {
		return
	}
	s.DrawVisual(p.Visual, p.X, p.Y)
}
