package obj

import (
	"errors"
	"testing"
)

func TestNewEnemyKinds(t *testing.T) {
	cat, err := testCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	cases := []struct {
		name    string
		kind    Kind
		visual  string
		shot    string
		wantErr error
	}{
		{"satan", KindSatan, "satan", "satan_shot", nil},
		{"judas", KindJudas, "judas", "judas_shot", nil},
		{"centurion", KindCenturion, "centurion", "centurion_shot", nil},
		{"unknown", Kind("pilate"), "", "", ErrUnknownKind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := NewEnemy(10, -50, c.kind, 100, 30, cat)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				if e != nil {
					t.Fatalf("no enemy should be created on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEnemy: %v", err)
			}
			if e.Visual.Key != c.visual || e.ShotVisual.Key != c.shot {
				t.Fatalf("appearance = %s/%s, want %s/%s", e.Visual.Key, e.ShotVisual.Key, c.visual, c.shot)
			}
			e.Advance(2)
			if e.Y != -48 {
				t.Fatalf("y after advance = %v, want -48", e.Y)
			}
		})
	}
}

func TestNewCatalogRejectsUnknownKind(t *testing.T) {
	_, err := NewCatalog(testProvider(), map[string]AppearanceKeys{
		"herod": {Visual: "satan", Shot: "satan_shot"},
	})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestNewCatalogMissingVisual(t *testing.T) {
	_, err := NewCatalog(testProvider(), map[string]AppearanceKeys{
		"satan": {Visual: "satan"},
	})
	if !errors.Is(err, ErrMissingVisual) {
		t.Fatalf("expected ErrMissingVisual, got %v", err)
	}
}

func TestCatalogKindsSorted(t *testing.T) {
	cat, err := testCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	got := cat.Kinds()
	want := []Kind{KindCenturion, KindJudas, KindSatan}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
}
