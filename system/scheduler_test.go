package system

import (
	"errors"
	"fmt"
	"testing"
)

func TestSchedulerOrderAndStop(t *testing.T) {
	var order []string
	stage := func(name string, err error) Stage {
		return StageFunc(func(*World) error {
			order = append(order, name)
			return err
		})
	}
	stop := errors.New("stop")
	s := NewScheduler(stage("a", nil), stage("b", stop))
	s.Add(stage("c", nil))

	if err := s.Update(nil); !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v", order)
	}
	if len(s.Stages()) != 3 {
		t.Fatalf("stages = %d", len(s.Stages()))
	}
}

func TestWorldStageOrder(t *testing.T) {
	w := newTestWorld(t)
	stages := w.scheduler.Stages()
	want := []string{"system.InputStage", "system.PlayerShotStage", "system.EnemyStage", "system.WaveStage"}
	if len(stages) != len(want) {
		t.Fatalf("stages = %d", len(stages))
	}
	for i, s := range stages {
		if got := fmt.Sprintf("%T", s); got != want[i] {
			t.Fatalf("stage %d = %s, want %s", i, got, want[i])
		}
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventWaveSpawned, Value: 1})
	q.Push(Event{Type: EventEnemyKilled})
	if q.Len() != 2 {
		t.Fatalf("len = %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventWaveSpawned {
		t.Fatalf("drain = %v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}
}
