package system

// Stage is one step of the per-frame pipeline.
type Stage interface {
	Update(w *World) error
}

// StageFunc adapts a function to Stage.
type StageFunc func(w *World) error

func (f StageFunc) Update(w *World) error { return f(w) }

// Scheduler runs stages in insertion order. Later stages see the results
// of earlier ones within the same frame.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	copied := append([]Stage(nil), stages...)
	return &Scheduler{stages: copied}
}

func (s *Scheduler) Add(stage Stage) {
	if stage == nil {
		return
	}
	s.stages = append(s.stages, stage)
}

// Update runs every stage and stops at the first error.
func (s *Scheduler) Update(w *World) error {
	for _, stage := range s.stages {
		if err := stage.Update(w); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) Stages() []Stage {
	stages := make([]Stage, 0, len(s.stages))
	return append(stages, s.stages...)
}
