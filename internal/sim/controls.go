package sim

// ControlState is a plain Controls value. Hosts without their own adapter
// (tests, replays) set the fields directly before each Step.
type ControlState struct {
	Axis       float64
	Fire       bool
	Shield     bool
	Boomba     bool
	Missile    bool
	WeaponNext bool
	WeaponPrev bool
	Restart    bool
}

func (c *ControlState) MovementAxis() float64 {
	switch {
	case c.Axis > 1:
		return 1
	case c.Axis < -1:
		return -1
	}
	return c.Axis
}

func (c *ControlState) Firing() bool            { return c.Fire }
func (c *ControlState) Shielding() bool         { return c.Shield }
func (c *ControlState) BoombaHeld() bool        { return c.Boomba }
func (c *ControlState) MissileRequested() bool  { return c.Missile }
func (c *ControlState) WeaponNextPressed() bool { return c.WeaponNext }
func (c *ControlState) WeaponPrevPressed() bool { return c.WeaponPrev }
func (c *ControlState) RestartRequested() bool  { return c.Restart }

// Button is an edge-triggered control.
type Button uint8

const (
	ButtonWeaponNext Button = iota
	ButtonWeaponPrev
	ButtonMissile
	ButtonRestart
)

// Latch sits between a device poller and the simulation. Held controls
// reflect the latest poll; each Press is handed to exactly one tick, even
// when a frame runs zero or several ticks.
type Latch struct {
	held    ControlState
	pending [ButtonRestart + 1]bool
}

// SetHeld records the level-triggered controls of the latest poll.
func (l *Latch) SetHeld(axis float64, fire, shield, boomba bool) {
	l.held.Axis = axis
	l.held.Fire = fire
	l.held.Shield = shield
	l.held.Boomba = boomba
}

// Press latches b until a tick consumes it.
func (l *Latch) Press(b Button) {
	if int(b) < len(l.pending) {
		l.pending[b] = true
	}
}

func (l *Latch) take(b Button) bool {
	v := l.pending[b]
	l.pending[b] = false
	return v
}

func (l *Latch) MovementAxis() float64   { return l.held.MovementAxis() }
func (l *Latch) Firing() bool            { return l.held.Fire }
func (l *Latch) Shielding() bool         { return l.held.Shield }
func (l *Latch) BoombaHeld() bool        { return l.held.Boomba }
func (l *Latch) MissileRequested() bool  { return l.take(ButtonMissile) }
func (l *Latch) WeaponNextPressed() bool { return l.take(ButtonWeaponNext) }
func (l *Latch) WeaponPrevPressed() bool { return l.take(ButtonWeaponPrev) }
func (l *Latch) RestartRequested() bool  { return l.take(ButtonRestart) }
