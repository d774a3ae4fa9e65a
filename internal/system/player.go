package system

import (
	"math"

	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/world"
)

// PlayerSystem turns polled controls into ship movement, shield state,
// weapon fire, weapon cycling, missile launches and boomba activation.
// Phase 0 (Input).
type PlayerSystem struct {
	world    *world.State
	controls Controls
}

func NewPlayerSystem(ws *world.State, controls Controls) *PlayerSystem {
	return &PlayerSystem{world: ws, controls: controls}
}

func (s *PlayerSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *PlayerSystem) Update() {
	s.move()
	s.updateShield()
	s.shoot()
	s.cycleWeapon()
	if s.controls.MissileRequested() {
		FireMissile(s.world)
	}
	s.handleBoomba()
}

func (s *PlayerSystem) move() {
	sh := &s.world.Ship
	sh.Angle += s.controls.MovementAxis() * 0.15
	sh.Angle *= 0.88
	sh.X = math.Max(80, math.Min(s.world.Width-80, sh.X+sh.Angle*12))
}

// updateShield drains while held and regenerates otherwise. The shield
// cannot come up with an empty tank, while charging a boomba or respawning.
func (s *PlayerSystem) updateShield() {
	ws := s.world
	sh := &ws.Ship
	sh.ShieldActive = s.controls.Shielding() &&
		sh.Shield > 1 &&
		!sh.ChargingBoomba &&
		ws.RespawnTimer == 0

	if sh.ShieldActive {
		sh.AdjustShield(-world.ShieldDrainRate)
	} else if sh.Shield < world.ShieldMax {
		sh.AdjustShield(world.ShieldRegenRate)
	}
}

func (s *PlayerSystem) shoot() {
	ws := s.world
	if ws.Ship.ChargingBoomba || ws.RespawnTimer > 0 {
		return
	}
	if !s.controls.Firing() || ws.Time%world.FireDelay != 0 {
		return
	}
	if w := ws.Weapons.Get(ws.Ship.CurrentWeapon()); w != nil {
		FireWeapon(ws, w)
	}
}

func (s *PlayerSystem) cycleWeapon() {
	if s.controls.WeaponNextPressed() {
		s.world.Ship.CycleWeapon(1)
	}
	if s.controls.WeaponPrevPressed() {
		s.world.Ship.CycleWeapon(-1)
	}
}

// handleBoomba acts on the rising edge of the boomba button. A charged boomba
// keeps charging while the button stays down and fires on release.
func (s *PlayerSystem) handleBoomba() {
	sh := &s.world.Ship
	held := s.controls.BoombaHeld()
	pressed := held && !sh.BoombaHeldPrev
	sh.BoombaHeldPrev = held

	if pressed && !sh.ChargingBoomba {
		LaunchBoomba(s.world)
	}
	if !sh.ChargingBoomba {
		return
	}
	if held {
		sh.BoombaCharge += world.BoombaChargeRate
		if sh.BoombaCharge > world.BoombaChargeMax {
			sh.BoombaCharge = world.BoombaChargeMax
		}
		return
	}
	ReleaseChargedBoomba(s.world)
}

// FireWeapon spawns one volley of w from the ship. Chapters 2 and 3 aim the
// volley at the horizon; chapters 1 and 4 fire straight up.
func FireWeapon(ws *world.State, w *data.Weapon) {
	sh := &ws.Ship
	startY := sh.Y - 35
	kind := bulletKind(w.Kind)

	count := w.Count
	if count < 1 {
		count = 1
	}
	first := -(count - 1) / 2

	if ws.LaneChapter() {
		hx, hy := ws.Horizon()
		base := math.Atan2(hy-startY, hx-sh.X)
		for i := first; i < first+count; i++ {
			x := sh.X + float64(i)*w.Spacing
			a := base + float64(i)*w.Spread
			ws.SpawnBullet(world.Bullet{
				X: x, Y: startY,
				VX: math.Cos(a) * w.LaneSpeed, VY: math.Sin(a) * w.LaneSpeed,
				Kind: kind, OriginX: x, Phase: ws.Time, Width: w.Width,
			})
		}
	} else {
		for i := first; i < first+count; i++ {
			x := sh.X + float64(i)*w.Spacing
			ws.SpawnBullet(world.Bullet{
				X: x, Y: startY,
				VX: float64(i) * w.Drift, VY: -w.DropSpeed,
				Kind: kind, OriginX: x, Phase: ws.Time, Width: w.Width,
			})
		}
	}
	ws.Sound(w.Sound.Freq, event.Waveform(w.Sound.Wave), w.Sound.Duration, w.Sound.Volume)
}

func bulletKind(k data.WeaponKind) world.BulletKind {
	switch k {
	case data.WeaponSine:
		return world.BulletSine
	case data.WeaponScatter:
		return world.BulletScatter
	case data.WeaponLaser:
		return world.BulletLaser
	}
	return world.BulletPlain
}
