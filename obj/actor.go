package obj

import "github.com/milk9111/armageddon/component"

// Target is something a projectile can strike and damage.
type Target interface {
	component.Collidable
	TakeDamage(amount int)
}

// ShotContext carries the per-frame parameters for advancing projectiles.
// Enemy shots resolve against Target; player shots resolve against
// Enemies, which is pruned in place and must be read back by the caller.
type ShotContext struct {
	Velocity    float64
	FieldHeight float64
	Damage      int

	Target  Target
	Enemies []*Enemy
	Killed  []*Enemy
}

// Shooter advances the projectiles it owns for one frame.
type Shooter interface {
	AdvanceProjectiles(ctx *ShotContext)
}

var (
	_ Shooter = (*Player)(nil)
	_ Shooter = (*Enemy)(nil)
	_ Target  = (*Player)(nil)
)

// Actor is the state shared by every health-bearing, projectile-firing
// object.
type Actor struct {
	X, Y       float64
	Health     component.Health
	Cooldown   component.Cooldown
	Visual     *Visual
	ShotVisual *Visual
	Shots      []*Projectile
}

func newActor(x, y float64, health, cooldown int, visual, shot *Visual) Actor {
	return Actor{
		X:          x,
		Y:          y,
		Health:     component.Health{Max: health, Current: health},
		Cooldown:   component.NewCooldown(cooldown),
		Visual:     visual,
		ShotVisual: shot,
	}
}

// Fire spawns a projectile at the actor's position when the cooldown is
// ready. Reports whether a projectile was created.
func (a *Actor) Fire() bool {
	if !a.Cooldown.Ready() {
		return false
	}
	a.Shots = append(a.Shots, NewProjectile(a.X, a.Y, a.ShotVisual))
	a.Cooldown.Start()
	return true
}

// TickCooldown advances the fire cooldown by one frame.
func (a *Actor) TickCooldown() {
	a.Cooldown.Tick()
}

// AdvanceProjectiles ticks the cooldown, then moves every owned shot,
// dropping it when it leaves the field or strikes ctx.Target.
func (a *Actor) AdvanceProjectiles(ctx *ShotContext) {
	a.TickCooldown()
	if ctx == nil {
		return
	}
	kept := a.Shots[:0]
	for _, shot := range a.Shots {
		shot.Advance(ctx.Velocity)
		if shot.OffField(ctx.FieldHeight) {
			continue
		}
		if ctx.Target != nil && shot.CollidesWith(ctx.Target) {
			ctx.Target.TakeDamage(ctx.Damage)
			continue
		}
		kept = append(kept, shot)
	}
	clearTail(a.Shots, len(kept))
	a.Shots = kept
}

// TakeDamage subtracts amount from the actor's health.
func (a *Actor) TakeDamage(amount int) {
	a.Health.Damage(amount)
}

// Position implements component.Collidable.
func (a *Actor) Position() (float64, float64) { return a.X, a.Y }

// Mask implements component.Collidable.
func (a *Actor) Mask() *component.Mask { return a.Visual.Mask() }

// Width returns the sprite width.
func (a *Actor) Width() float64 { return float64(a.Visual.Width()) }

// Height returns the sprite height.
func (a *Actor) Height() float64 { return float64(a.Visual.Height()) }

// Draw renders the actor and its shots.
func (a *Actor) Draw(s Surface) {
	if s == nil {
		return
	}
	s.DrawVisual(a.Visual, a.X, a.Y)
	for _, shot := range a.Shots {
		shot.Draw(s)
	}
}

// clearTail nils out dropped slots so removed shots can be collected.
func clearTail(shots []*Projectile, from int) {
	for i := from; i < len(shots); i++ {
		shots[i] = nil
	}
}
