package system

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/milk9111/armageddon/obj"
	"github.com/milk9111/armageddon/prefabs"
)

// State is the session state machine position.
type State int

const (
	StatePlaying State = iota
	StateLost
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is the control state sampled once per frame.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Quit                  bool
}

// Rand is the randomness source used for spawning and firing.
type Rand interface {
	Intn(n int) int
}

// World owns the session: the player, the active enemies, and the
// counters that decide when the session is lost.
type World struct {
	Tuning        prefabs.Tuning
	Player        *obj.Player
	Enemies       []*obj.Enemy
	Level         int
	Resurrections int
	WaveLength    int

	catalog    *obj.Catalog
	rng        Rand
	fire       FirePolicy
	scheduler  *Scheduler
	events     EventQueue
	input      Input
	state      State
	frame      int
	lostFrames int
}

// Option configures a World.
type Option func(*World)

// WithRand sets the randomness source.
func WithRand(r Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithSeed seeds a math/rand source.
func WithSeed(seed int64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewSource(seed)) }
}

// WithFirePolicy replaces the enemy fire rule.
func WithFirePolicy(p FirePolicy) Option {
	return func(w *World) { w.fire = p }
}

// NewWorld builds a fresh session. Catalog and visual errors are
// configuration errors and are returned unchanged.
func NewWorld(t prefabs.Tuning, provider obj.VisualProvider, opts ...Option) (*World, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	keys := make(map[string]obj.AppearanceKeys, len(t.Enemy.Kinds))
	for name, k := range t.Enemy.Kinds {
		keys[name] = obj.AppearanceKeys{Visual: k.Visual, Shot: k.ShotVisual}
	}
	catalog, err := obj.NewCatalog(provider, keys)
	if err != nil {
		return nil, fmt.Errorf("system: enemy catalog: %w", err)
	}

	body, err := provider.Visual(t.Player.Visual)
	if err != nil {
		return nil, fmt.Errorf("system: player visual: %w", err)
	}
	shot, err := provider.Visual(t.Player.ShotVisual)
	if err != nil {
		return nil, fmt.Errorf("system: player shot visual: %w", err)
	}

	w := &World{
		Tuning:        t,
		Player:        obj.NewPlayer(t.Player.X, t.Player.Y, t.Player.Health, t.Combat.CooldownFrames, body, shot),
		Resurrections: t.Session.Resurrections,
		WaveLength:    t.Session.InitialWaveLength,
		catalog:       catalog,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if w.fire == nil {
		w.fire = RandomFirePolicy{}
	}
	w.scheduler = NewScheduler(
		InputStage{},
		PlayerShotStage{},
		EnemyStage{},
		WaveStage{},
	)
	return w, nil
}

// Update advances the session by one frame and returns the resulting
// state. Errors come only from configuration problems surfaced by a stage.
func (w *World) Update(in Input) (State, error) {
	if w.state == StateEnded {
		return w.state, nil
	}
	w.frame++
	if in.Quit {
		w.end()
		return w.state, nil
	}
	w.input = in

	if w.state == StatePlaying {
		if w.Player.Health.Depleted() {
			w.Resurrections--
			w.Player.Health.Reset()
			w.emit(Event{Type: EventPlayerResurrect, Value: w.Resurrections})
		}
		if w.Resurrections <= 0 {
			w.state = StateLost
			w.emit(Event{Type: EventSessionLost, Value: w.Level})
		}
	}

	if w.state == StateLost {
		w.lostFrames++
		if w.lostFrames > w.Tuning.LostFrames() {
			w.end()
		}
		return w.state, nil
	}

	if err := w.scheduler.Update(w); err != nil {
		return w.state, err
	}
	return w.state, nil
}

func (w *World) end() {
	w.state = StateEnded
	w.emit(Event{Type: EventSessionEnded, Value: w.Level})
}

// State returns the current session state.
func (w *World) State() State { return w.state }

// Frame returns the number of frames processed.
func (w *World) Frame() int { return w.frame }

// LostFrames returns how long the session has been in the lost state.
func (w *World) LostFrames() int { return w.lostFrames }

// Events returns the gameplay event queue.
func (w *World) Events() *EventQueue { return &w.events }

// Catalog returns the enemy catalog.
func (w *World) Catalog() *obj.Catalog { return w.catalog }

// SetTuning swaps in new tuning. Counters of the running session are kept
// and the field size stays fixed for the life of the world; speeds,
// damages, cooldowns, and fire odds take effect on the next frame.
func (w *World) SetTuning(t prefabs.Tuning) error {
	t.Field = w.Tuning.Field
	if err := t.Validate(); err != nil {
		return err
	}
	w.Tuning = t
	w.Player.Cooldown.Period = t.Combat.CooldownFrames
	for _, e := range w.Enemies {
		e.Cooldown.Period = t.Combat.CooldownFrames
	}
	return nil
}

// SetFirePolicy replaces the enemy fire rule.
func (w *World) SetFirePolicy(p FirePolicy) {
	if p == nil {
		p = RandomFirePolicy{}
	}
	w.fire = p
}

// SpawnEnemy creates an enemy and adds it to the active set.
func (w *World) SpawnEnemy(x, y float64, kind obj.Kind) (*obj.Enemy, error) {
	e, err := obj.NewEnemy(x, y, kind, w.Tuning.Enemy.Health, w.Tuning.Combat.CooldownFrames, w.catalog)
	if err != nil {
		return nil, err
	}
	w.Enemies = append(w.Enemies, e)
	return e, nil
}

// Draw submits every enemy and the player to s.
func (w *World) Draw(s obj.Surface) {
	for _, e := range w.Enemies {
		e.Draw(s)
	}
	w.Player.Draw(s)
}

func (w *World) emit(evt Event) {
	evt.Frame = w.frame
	w.events.Push(evt)
}

func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
