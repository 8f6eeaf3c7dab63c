package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultTuningFile is the embedded tuning prefab.
const DefaultTuningFile = "game.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

type FieldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MarginSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

type PlayerSpec struct {
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	Health     int        `yaml:"health"`
	Speed      float64    `yaml:"speed"`
	Visual     string     `yaml:"visual"`
	ShotVisual string     `yaml:"shot_visual"`
	Margins    MarginSpec `yaml:"margins"`
}

type EnemyKindSpec struct {
	Visual     string `yaml:"visual"`
	ShotVisual string `yaml:"shot_visual"`
}

type EnemySpec struct {
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	// FireChance is the denominator of the per-frame fire roll.
	FireChance int                      `yaml:"fire_chance"`
	FireScript string                   `yaml:"fire_script"`
	Kinds      map[string]EnemyKindSpec `yaml:"kinds"`
}

type CombatSpec struct {
	ShotSpeed            float64 `yaml:"shot_speed"`
	PlayerShotMultiplier float64 `yaml:"player_shot_multiplier"`
	ShotDamage           int     `yaml:"shot_damage"`
	BodyDamage           int     `yaml:"body_damage"`
	CooldownFrames       int     `yaml:"cooldown_frames"`
}

type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type SessionSpec struct {
	Resurrections      int     `yaml:"resurrections"`
	InitialWaveLength  int     `yaml:"initial_wave_length"`
	WaveIncrement      int     `yaml:"wave_increment"`
	EscapeMargin       float64 `yaml:"escape_margin"`
	LostDisplaySeconds int     `yaml:"lost_display_seconds"`
}

type SpawnSpec struct {
	// X is an absolute minimum and a maximum inset from the right edge.
	MinX       int       `yaml:"min_x"`
	RightInset int       `yaml:"right_inset"`
	Y          RangeSpec `yaml:"y"`
}

// Tuning holds every gameplay constant.
type Tuning struct {
	Field   FieldSpec   `yaml:"field"`
	FPS     int         `yaml:"fps"`
	Player  PlayerSpec  `yaml:"player"`
	Enemy   EnemySpec   `yaml:"enemy"`
	Combat  CombatSpec  `yaml:"combat"`
	Session SessionSpec `yaml:"session"`
	Spawn   SpawnSpec   `yaml:"spawn"`
}

// DefaultTuning returns the built-in tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Field: FieldSpec{Width: 900, Height: 900},
		FPS:   60,
		Player: PlayerSpec{
			X:          370,
			Y:          570,
			Health:     100,
			Speed:      10,
			Visual:     "jesus",
			ShotVisual: "jesus_shot",
			Margins:    MarginSpec{Left: -30, Right: 30, Top: 0, Bottom: 30},
		},
		Enemy: EnemySpec{
			Health:     100,
			Speed:      2,
			FireChance: 240,
			Kinds: map[string]EnemyKindSpec{
				"satan":     {Visual: "satan", ShotVisual: "satan_shot"},
				"judas":     {Visual: "judas", ShotVisual: "judas_shot"},
				"centurion": {Visual: "centurion", ShotVisual: "centurion_shot"},
			},
		},
		Combat: CombatSpec{
			ShotSpeed:            5,
			PlayerShotMultiplier: 2,
			ShotDamage:           10,
			BodyDamage:           50,
			CooldownFrames:       30,
		},
		Session: SessionSpec{
			Resurrections:      9,
			InitialWaveLength:  5,
			WaveIncrement:      3,
			EscapeMargin:       155,
			LostDisplaySeconds: 3,
		},
		Spawn: SpawnSpec{
			MinX:       50,
			RightInset: 100,
			Y:          RangeSpec{Min: -1500, Max: -100},
		},
	}
}

// LoadTuning reads name over the defaults and validates the result.
// Fields absent from the file keep their default values.
func LoadTuning(name string) (Tuning, error) {
	t := DefaultTuning()
	data, err := Load(name)
	if err != nil {
		return Tuning{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return t, nil
}

// Validate checks the tuning for values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.Field.Width <= 0 || t.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidTuning, t.Field.Width, t.Field.Height)
	case t.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidTuning, t.FPS)
	case t.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalidTuning)
	case t.Combat.CooldownFrames <= 0:
		return fmt.Errorf("%w: cooldown_frames must be positive", ErrInvalidTuning)
	case t.Enemy.FireChance <= 0:
		return fmt.Errorf("%w: fire_chance must be positive", ErrInvalidTuning)
	case len(t.Enemy.Kinds) == 0:
		return fmt.Errorf("%w: no enemy kinds", ErrInvalidTuning)
	case t.Spawn.Y.Min >= t.Spawn.Y.Max:
		return fmt.Errorf("%w: spawn y range [%d, %d) is empty", ErrInvalidTuning, t.Spawn.Y.Min, t.Spawn.Y.Max)
	case float64(t.Spawn.MinX) >= t.Field.Width-float64(t.Spawn.RightInset):
		return fmt.Errorf("%w: spawn x range is empty", ErrInvalidTuning)
	}
	for name, k := range t.Enemy.Kinds {
		if k.Visual == "" || k.ShotVisual == "" {
			return fmt.Errorf("%w: kind %q needs visual and shot_visual", ErrInvalidTuning, name)
		}
	}
	return nil
}

// LostFrames is how many frames the game-over screen stays up.
func (t Tuning) LostFrames() int {
	return t.FPS * t.Session.LostDisplaySeconds
}

// PlayerShotSpeed is the signed velocity of player shots (upward).
func (t Tuning) PlayerShotSpeed() float64 {
	return -t.Combat.ShotSpeed * t.Combat.PlayerShotMultiplier
}

// EnemyShotSpeed is the signed velocity of enemy shots (downward).
func (t Tuning) EnemyShotSpeed() float64 {
	return t.Combat.ShotSpeed
}
