package obj

import "github.com/milk9111/armageddon/component"

const (
	healthBarHeight = 10
	healthBarGap    = 10
)

// Player is the single user-controlled actor.
type Player struct {
	Actor
}

// NewPlayer creates a player at (x, y). health is also the max health.
func NewPlayer(x, y float64, health, cooldown int, visual, shot *Visual) *Player {
	return &Player{Actor: newActor(x, y, health, cooldown, visual, shot)}
}

// MaxHealth returns the health the player was created with.
func (p *Player) MaxHealth() int { return p.Health.Max }

// HealthRatio returns health/maxHealth clamped to [0, 1].
func (p *Player) HealthRatio() float64 {
	return p.Health.Ratio()
}

// AdvanceProjectiles ticks the cooldown and moves every shot. A shot that
// overlaps an enemy removes that enemy from ctx.Enemies and is consumed;
// at most one enemy dies per shot per frame. When a shot overlaps several
// enemies, the earliest in ctx.Enemies dies.
func (p *Player) AdvanceProjectiles(ctx *ShotContext) {
	p.TickCooldown()
	if ctx == nil {
		return
	}
	var index *component.Index
	if len(ctx.Enemies) > 0 && len(p.Shots) > 0 {
		index = component.NewIndex(ctx.Enemies)
	}
	kept := p.Shots[:0]
	for _, shot := range p.Shots {
		shot.Advance(ctx.Velocity)
		if shot.OffField(ctx.FieldHeight) {
			continue
		}
		hit := -1
		if index != nil {
			hit = index.First(shot)
		}
		if hit < 0 {
			kept = append(kept, shot)
			continue
		}
		index.Remove(hit)
		ctx.Killed = append(ctx.Killed, ctx.Enemies[hit])
	}
	clearTail(p.Shots, len(kept))
	p.Shots = kept
	if len(ctx.Killed) > 0 {
		ctx.Enemies = survivors(ctx.Enemies, index)
	}
}

// Draw renders the player, its shots, and the health bar beneath it.
func (p *Player) Draw(s Surface) {
	if s == nil {
		return
	}
	p.Actor.Draw(s)
	s.DrawBar(p.X, p.Y+p.Height()+healthBarGap, p.Width(), healthBarHeight, p.HealthRatio())
}

// survivors filters enemies in place, dropping those removed from index.
func survivors(enemies []*Enemy, index *component.Index) []*Enemy {
	kept := enemies[:0]
	for i, e := range enemies {
		if !index.Removed(i) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return kept
}
