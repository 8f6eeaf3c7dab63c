package component

// DefaultCooldownFrames is the fire cooldown period used when none is set.
const DefaultCooldownFrames = 30

// Cooldown is a frame counter gating repeated actions. A zero counter means
// ready. Start sets it to 1 and each Tick advances it until it reaches
// Period, at which point it wraps back to zero.
type Cooldown struct {
	Counter int
	Period  int
}

// NewCooldown creates a ready cooldown with the given period.
func NewCooldown(period int) Cooldown {
	if period <= 0 {
		period = DefaultCooldownFrames
	}
	return Cooldown{Period: period}
}

// Ready reports whether the action may fire this frame.
func (c *Cooldown) Ready() bool {
	return c != nil && c.Counter == 0
}

// Start begins a cooldown. Counting starts on the next Tick.
func (c *Cooldown) Start() {
	if c == nil {
		return
	}
	c.Counter = 1
}

// Tick advances the counter by one frame. Must run once per frame.
func (c *Cooldown) Tick() {
	if c == nil {
		return
	}
	period := c.Period
	if period <= 0 {
		period = DefaultCooldownFrames
	}
	switch {
	case c.Counter >= period:
		c.Counter = 0
	case c.Counter > 0:
		c.Counter++
	}
}
