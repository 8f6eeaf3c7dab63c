package obj

import (
	"testing"

	"github.com/milk9111/armageddon/component"
)

type dummyTarget struct {
	x, y   float64
	v      *Visual
	damage int
}

func (d *dummyTarget) Position() (float64, float64) { return d.x, d.y }
func (d *dummyTarget) Mask() *component.Mask        { return d.v.Mask() }
func (d *dummyTarget) TakeDamage(amount int)        { d.damage += amount }

func TestActorFireCooldown(t *testing.T) {
	e := &Enemy{Actor: newActor(100, 100, 100, 30, solidVisual("e", 10, 10), solidVisual("s", 2, 2))}
	ctx := &ShotContext{Velocity: 0, FieldHeight: 900}

	fired := 0
	for frame := 0; frame < 29; frame++ {
		if e.Fire() {
			fired++
		}
		e.AdvanceProjectiles(ctx)
	}
	if fired != 1 {
		t.Fatalf("expected exactly one shot within the cooldown, got %d", fired)
	}
	if len(e.Shots) != 1 {
		t.Fatalf("expected one live projectile, got %d", len(e.Shots))
	}
	e.AdvanceProjectiles(ctx)
	if !e.Cooldown.Ready() || e.Cooldown.Counter != 0 {
		t.Fatalf("cooldown should wrap to ready after 30 frames, counter=%d", e.Cooldown.Counter)
	}
	if !e.Fire() {
		t.Fatalf("expected fire to succeed once ready")
	}
}

func TestActorShotHitsTarget(t *testing.T) {
	shot := solidVisual("s", 4, 4)
	a := newActor(50, 0, 100, 30, solidVisual("e", 10, 10), shot)
	target := &dummyTarget{x: 40, y: 20, v: solidVisual("t", 30, 30)}

	a.Fire()
	ctx := &ShotContext{Velocity: 5, FieldHeight: 900, Damage: 10, Target: target}
	for i := 0; i < 10 && len(a.Shots) > 0; i++ {
		a.AdvanceProjectiles(ctx)
	}
	if target.damage != 10 {
		t.Fatalf("expected target damaged once for 10, got %d", target.damage)
	}
	if len(a.Shots) != 0 {
		t.Fatalf("the striking projectile should be removed, %d left", len(a.Shots))
	}
}

func TestActorDropsOffFieldShots(t *testing.T) {
	a := newActor(0, 890, 100, 1, solidVisual("e", 10, 10), solidVisual("s", 2, 2))
	a.Fire()
	ctx := &ShotContext{Velocity: 5, FieldHeight: 900}
	a.AdvanceProjectiles(ctx)
	if len(a.Shots) != 1 {
		t.Fatalf("shot at y=895 should survive, got %d shots", len(a.Shots))
	}
	a.AdvanceProjectiles(ctx)
	a.AdvanceProjectiles(ctx)
	if len(a.Shots) != 0 {
		t.Fatalf("shot past the field should be dropped, got %d shots", len(a.Shots))
	}
}

func TestActorAdvanceKeepsSurvivorOrder(t *testing.T) {
	cases := []struct {
		name     string
		starts   [][2]float64
		target   [2]float64
		wantKept []int
		damage   int
	}{
		{"middle_off_field", [][2]float64{{0, 100}, {200, 897}, {400, 400}}, [2]float64{-500, 0}, []int{0, 2}, 0},
		{"middle_hits_target", [][2]float64{{0, 100}, {200, 400}, {400, 700}}, [2]float64{190, 390}, []int{0, 2}, 10},
		{"ends_off_field", [][2]float64{{0, 898}, {200, 400}, {400, 899}}, [2]float64{-500, 0}, []int{1}, 0},
		{"none_dropped", [][2]float64{{0, 100}, {200, 400}, {400, 700}}, [2]float64{-500, 0}, []int{0, 1, 2}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shotVis := solidVisual("s", 4, 4)
			a := newActor(0, 0, 100, 30, solidVisual("e", 10, 10), shotVis)
			var shots []*Projectile
			for _, st := range c.starts {
				shot := NewProjectile(st[0], st[1], shotVis)
				shots = append(shots, shot)
				a.Shots = append(a.Shots, shot)
			}
			target := &dummyTarget{x: c.target[0], y: c.target[1], v: solidVisual("t", 30, 30)}
			ctx := &ShotContext{Velocity: 5, FieldHeight: 900, Damage: 10, Target: target}

			a.AdvanceProjectiles(ctx)

			if len(a.Shots) != len(c.wantKept) {
				t.Fatalf("kept %d shots, want %d", len(a.Shots), len(c.wantKept))
			}
			for i, idx := range c.wantKept {
				if a.Shots[i] != shots[idx] {
					t.Fatalf("shot %d is not the original shot %d", i, idx)
				}
				if want := c.starts[idx][1] + 5; a.Shots[i].Y != want {
					t.Fatalf("shot %d at y=%v, want %v", idx, a.Shots[i].Y, want)
				}
			}
			if target.damage != c.damage {
				t.Fatalf("target damage = %d, want %d", target.damage, c.damage)
			}
		})
	}
}
