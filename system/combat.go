package system

import (
	"github.com/milk9111/armageddon/component"
	"github.com/milk9111/armageddon/obj"
)

// PlayerShotStage moves player shots and removes the enemies they strike.
type PlayerShotStage struct{}

func (PlayerShotStage) Update(w *World) error {
	ctx := &obj.ShotContext{
		Velocity:    w.Tuning.PlayerShotSpeed(),
		FieldHeight: w.Tuning.Field.Height,
		Damage:      w.Tuning.Combat.ShotDamage,
		Enemies:     w.Enemies,
	}
	w.Player.AdvanceProjectiles(ctx)
	w.Enemies = ctx.Enemies
	for _, e := range ctx.Killed {
		w.emit(Event{Type: EventEnemyKilled, Kind: e.Kind, X: e.X, Y: e.Y})
	}
	return nil
}

// EnemyStage moves each enemy, resolves its shots against the player, lets
// it fire, and prunes enemies that rammed the player or escaped the field.
type EnemyStage struct{}

func (EnemyStage) Update(w *World) error {
	t := w.Tuning
	escapeY := t.Field.Height + t.Session.EscapeMargin
	ctx := &obj.ShotContext{
		Velocity:    t.EnemyShotSpeed(),
		FieldHeight: t.Field.Height,
		Damage:      t.Combat.ShotDamage,
		Target:      w.Player,
	}

	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.Advance(t.Enemy.Speed)
		e.AdvanceProjectiles(ctx)

		if w.fire.ShouldFire(w, e) && e.Fire() {
			w.emit(Event{Type: EventEnemyFired, Kind: e.Kind, X: e.X, Y: e.Y})
		}

		if component.Collide(e, w.Player) {
			w.Player.TakeDamage(t.Combat.BodyDamage)
			w.emit(Event{Type: EventPlayerRammed, Kind: e.Kind, X: e.X, Y: e.Y, Value: t.Combat.BodyDamage})
			continue
		}
		if e.Y+e.Height() > escapeY {
			w.Resurrections--
			w.emit(Event{Type: EventEnemyEscaped, Kind: e.Kind, X: e.X, Y: e.Y, Value: w.Resurrections})
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return nil
}
