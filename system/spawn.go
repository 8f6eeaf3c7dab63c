package system

import (
	"fmt"

	"github.com/milk9111/armageddon/obj"
)

// WaveStage replenishes the field once every enemy is gone: the level goes
// up, the wave grows, and a new batch enters above the visible field.
type WaveStage struct{}

func (WaveStage) Update(w *World) error {
	if len(w.Enemies) > 0 {
		return nil
	}
	return w.spawnWave()
}

func (w *World) spawnWave() error {
	w.Level++
	w.WaveLength += w.Tuning.Session.WaveIncrement

	kinds := w.catalog.Kinds()
	if len(kinds) == 0 {
		return fmt.Errorf("system: spawn wave %d: %w", w.Level, obj.ErrUnknownKind)
	}
	sp := w.Tuning.Spawn
	maxX := int(w.Tuning.Field.Width) - sp.RightInset
	for i := 0; i < w.WaveLength; i++ {
		x := randRange(w.rng, sp.MinX, maxX)
		y := randRange(w.rng, sp.Y.Min, sp.Y.Max)
		kind := kinds[w.rng.Intn(len(kinds))]
		if _, err := w.SpawnEnemy(float64(x), float64(y), kind); err != nil {
			return fmt.Errorf("system: spawn wave %d: %w", w.Level, err)
		}
	}
	w.emit(Event{Type: EventWaveSpawned, Value: w.Level})
	return nil
}
