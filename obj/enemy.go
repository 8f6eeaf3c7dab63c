package obj

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownKind   = errors.New("obj: unknown enemy kind")
	ErrMissingVisual = errors.New("obj: missing visual")
)

// Kind selects an enemy's appearance from the closed catalog.
type Kind string

const (
	KindSatan     Kind = "satan"
	KindJudas     Kind = "judas"
	KindCenturion Kind = "centurion"
)

// Kinds lists every valid enemy kind.
var Kinds = []Kind{KindSatan, KindJudas, KindCenturion}

// ParseKind validates a kind key.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Appearance binds a kind to its body and shot visuals.
type Appearance struct {
	Visual *Visual
	Shot   *Visual
}

// AppearanceKeys names the visuals for one kind.
type AppearanceKeys struct {
	Visual string
	Shot   string
}

// Catalog maps each enemy kind to its appearance.
type Catalog struct {
	entries map[Kind]Appearance
	kinds   []Kind
}

// NewCatalog resolves every entry of keys through provider. Every kind in
// keys must be one of Kinds.
func NewCatalog(provider VisualProvider, keys map[string]AppearanceKeys) (*Catalog, error) {
	c := &Catalog{entries: make(map[Kind]Appearance, len(keys))}
	for name, k := range keys {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		body, err := resolveVisual(provider, k.Visual)
		if err != nil {
			return nil, fmt.Errorf("obj: kind %s: %w", kind, err)
		}
		shot, err := resolveVisual(provider, k.Shot)
		if err != nil {
			return nil, fmt.Errorf("obj: kind %s shot: %w", kind, err)
		}
		c.entries[kind] = Appearance{Visual: body, Shot: shot}
		c.kinds = append(c.kinds, kind)
	}
	sort.Slice(c.kinds, func(i, j int) bool { return c.kinds[i] < c.kinds[j] })
	return c, nil
}

func resolveVisual(provider VisualProvider, key string) (*Visual, error) {
	if key == "" {
		return nil, ErrMissingVisual
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingVisual, key)
	}
	return provider.Visual(key)
}

// Lookup returns the appearance for kind.
func (c *Catalog) Lookup(kind Kind) (Appearance, error) {
	if c != nil {
		if a, ok := c.entries[kind]; ok {
			return a, nil
		}
	}
	return Appearance{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Kinds returns the catalog kinds in a stable order.
func (c *Catalog) Kinds() []Kind {
	if c == nil {
		return nil
	}
	return append([]Kind(nil), c.kinds...)
}

// Enemy is a descending hostile actor.
type Enemy struct {
	Actor
	Kind Kind
}

// NewEnemy creates an enemy of kind at (x, y). An unknown kind is a
// configuration error.
func NewEnemy(x, y float64, kind Kind, health, cooldown int, catalog *Catalog) (*Enemy, error) {
	look, err := catalog.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return &Enemy{
		Actor: newActor(x, y, health, cooldown, look.Visual, look.Shot),
		Kind:  kind,
	}, nil
}

// Advance moves the enemy down by vel.
func (e *Enemy) Advance(vel float64) {
	e.Y += vel
}
