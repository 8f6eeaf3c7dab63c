package system

// InputStage applies bounded player movement and the fire key.
type InputStage struct{}

func (InputStage) Update(w *World) error {
	p := w.Player
	in := w.input
	speed := w.Tuning.Player.Speed
	m := w.Tuning.Player.Margins
	field := w.Tuning.Field

	if in.Left && p.X-speed >= m.Left {
		p.X -= speed
	}
	if in.Right && p.X+speed+p.Width() <= field.Width+m.Right {
		p.X += speed
	}
	if in.Up && p.Y-speed >= m.Top {
		p.Y -= speed
	}
	if in.Down && p.Y+speed+p.Height() <= field.Height-m.Bottom {
		p.Y += speed
	}
	if in.Fire && p.Fire() {
		w.emit(Event{Type: EventPlayerFired, X: p.X, Y: p.Y})
	}
	return nil
}
