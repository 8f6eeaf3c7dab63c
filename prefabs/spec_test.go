package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningEmbedded(t *testing.T) {
	got, err := LoadTuning(DefaultTuningFile)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	def := DefaultTuning()
	if got.Field != def.Field || got.FPS != def.FPS || got.Combat != def.Combat || got.Session != def.Session {
		t.Fatalf("embedded tuning drifted from defaults: %+v", got)
	}
	if got.Enemy.FireScript != "enemy_fire.tengo" {
		t.Fatalf("fire_script = %q", got.Enemy.FireScript)
	}
	if len(got.Enemy.Kinds) != 3 {
		t.Fatalf("expected 3 enemy kinds, got %d", len(got.Enemy.Kinds))
	}
}

func TestLoadTuningOverrides(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, tu Tuning)
	}{
		{
			name: "partial_keeps_defaults",
			yaml: "fps: 30\nsession:\n  resurrections: 3\n",
			check: func(t *testing.T, tu Tuning) {
				if tu.FPS != 30 || tu.Session.Resurrections != 3 {
					t.Fatalf("overrides not applied: fps=%d res=%d", tu.FPS, tu.Session.Resurrections)
				}
				if tu.Session.WaveIncrement != 3 || tu.Field.Width != 900 {
					t.Fatalf("defaults lost: %+v", tu.Session)
				}
				if tu.LostFrames() != 90 {
					t.Fatalf("lost frames = %d, want 90", tu.LostFrames())
				}
			},
		},
		{
			name: "kinds_merge",
			yaml: "enemy:\n  kinds:\n    satan:\n      visual: devil\n      shot_visual: devil_shot\n",
			check: func(t *testing.T, tu Tuning) {
				if tu.Enemy.Kinds["satan"].Visual != "devil" {
					t.Fatalf("satan override missing: %+v", tu.Enemy.Kinds["satan"])
				}
				if tu.Enemy.Kinds["judas"].Visual != "judas" {
					t.Fatalf("judas default lost: %+v", tu.Enemy.Kinds)
				}
			},
		},
		{
			name:    "zero_fps",
			yaml:    "fps: 0\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "empty_spawn_range",
			yaml:    "spawn:\n  y:\n    min: 10\n    max: 10\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "kind_without_shot",
			yaml:    "enemy:\n  kinds:\n    satan:\n      visual: satan\n      shot_visual: \"\"\n",
			wantErr: ErrInvalidTuning,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			tu, err := LoadTuning(path)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTuning: %v", err)
			}
			c.check(t, tu)
		})
	}
}

func TestLoadTuningMissing(t *testing.T) {
	if _, err := LoadTuning("does-not-exist.yaml"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestShotSpeeds(t *testing.T) {
	tu := DefaultTuning()
	if tu.PlayerShotSpeed() != -10 {
		t.Fatalf("player shot speed = %v, want -10", tu.PlayerShotSpeed())
	}
	if tu.EnemyShotSpeed() != 5 {
		t.Fatalf("enemy shot speed = %v, want 5", tu.EnemyShotSpeed())
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"enemy_fire.tengo", "scripts/enemy_fire.tengo", "prefabs/scripts/enemy_fire.tengo"} {
		t.Run(name, func(t *testing.T) {
			src, err := LoadScript(name)
			if err != nil {
				t.Fatalf("LoadScript: %v", err)
			}
			if len(src) == 0 {
				t.Fatalf("empty script")
			}
		})
	}
}
