package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/armageddon/obj"
	"github.com/milk9111/armageddon/prefabs"
)

// FirePolicy decides whether an enemy tries to shoot this frame.
type FirePolicy interface {
	ShouldFire(w *World, e *obj.Enemy) bool
}

// RandomFirePolicy fires when a roll in [0, fire_chance) comes up 1.
type RandomFirePolicy struct{}

func (RandomFirePolicy) ShouldFire(w *World, _ *obj.Enemy) bool {
	return w.rng.Intn(w.Tuning.Enemy.FireChance) == 1
}

// NeverFire keeps every enemy silent.
type NeverFire struct{}

func (NeverFire) ShouldFire(*World, *obj.Enemy) bool { return false }

// ScriptFirePolicy evaluates a tengo script per enemy per frame. The
// script sees roll, chance, kind, x, y, and frame, and sets fire.
type ScriptFirePolicy struct {
	name     string
	compiled *tengo.Compiled
}

var scriptInputs = map[string]any{
	"roll":   0,
	"chance": 1,
	"kind":   "",
	"x":      0.0,
	"y":      0.0,
	"frame":  0,
}

// NewScriptFirePolicy compiles src. name is used in error messages.
func NewScriptFirePolicy(name string, src []byte) (*ScriptFirePolicy, error) {
	script := tengo.NewScript(src)
	for k, v := range scriptInputs {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("system: fire script %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "rand", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: fire script %s: %w", name, err)
	}
	return &ScriptFirePolicy{name: name, compiled: compiled}, nil
}

// LoadScriptFirePolicy loads and compiles a script from prefabs.
func LoadScriptFirePolicy(name string) (*ScriptFirePolicy, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("system: load fire script %s: %w", name, err)
	}
	return NewScriptFirePolicy(name, src)
}

func (p *ScriptFirePolicy) ShouldFire(w *World, e *obj.Enemy) bool {
	chance := w.Tuning.Enemy.FireChance
	values := map[string]any{
		"roll":   w.rng.Intn(chance),
		"chance": chance,
		"kind":   string(e.Kind),
		"x":      e.X,
		"y":      e.Y,
		"frame":  w.frame,
	}
	for k, v := range values {
		if err := p.compiled.Set(k, v); err != nil {
			log.Printf("system: fire script %s: set %s: %v", p.name, k, err)
			return false
		}
	}
	if err := p.compiled.Run(); err != nil {
		log.Printf("system: fire script %s: %v", p.name, err)
		return false
	}
	return p.compiled.Get("fire").Bool()
}
