package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
)

const (
	missileStep        = 0.025 // progress per tick, ~40 tick flight
	missileHitRadius   = 40.0
	missileSplash      = 8
	missileDrift       = 15.0
	missileTrailArc    = 8
	missileTrailBounce = 12
	missileBounceSpeed = 12.0
	missileBounceLife  = 120
	missileGravity     = 0.12
)

// MissileSystem flies homing missiles along a quadratic Bezier arc that is
// rebuilt every tick from the launch point and the target's live position.
// Phase 3 (Update).
type MissileSystem struct {
	world *world.State
}

func NewMissileSystem(ws *world.State) *MissileSystem {
	return &MissileSystem{world: ws}
}

func (s *MissileSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MissileSystem) Update() {
	s.world.Missiles.Each(func(id ecs.EntityID, m *world.Missile) {
		if m.Bounced {
			s.ballistic(id, m)
			return
		}
		s.home(id, m)
	})
}

// FireMissile launches a missile at the nearest mini-boss, or the Harasser
// when no mini-boss is alive. It returns false with no state change when
// out of ammo, cooling down or without a target.
func FireMissile(ws *world.State) bool {
	sh := &ws.Ship
	if ws.GameOver || ws.RespawnTimer > 0 {
		return false
	}
	if sh.MissileAmmo <= 0 || sh.MissileCooldown > 0 {
		return false
	}
	target, kind, ok := missileTarget(ws)
	if !ok {
		return false
	}

	x, y := sh.X, sh.Y-20
	ws.SpawnMissile(world.Missile{
		X: x, Y: y,
		StartX: x, StartY: y,
		Target:     target,
		TargetKind: kind,
		Speed:      missileStep,
	})
	sh.AdjustMissileAmmo(-1)
	sh.MissileCooldown = world.MissileCooldownTicks
	ws.Sound(150, event.WaveSawtooth, 0.4, 0.25)
	ws.Sound(80, event.WaveSquare, 0.3, 0.15)
	return true
}

func missileTarget(ws *world.State) (ecs.EntityID, world.TargetKind, bool) {
	var (
		best     ecs.EntityID
		bestDist = math.Inf(1)
	)
	ws.MiniBosses.Each(func(id ecs.EntityID, mb *world.MiniBoss) {
		if d := dist(mb.X, mb.Y, ws.Ship.X, ws.Ship.Y); d < bestDist {
			best, bestDist = id, d
		}
	})
	if !best.IsZero() {
		return best, world.TargetMiniBoss, true
	}
	if id, _, ok := ws.Bosses.First(); ok {
		return id, world.TargetBoss, true
	}
	return 0, 0, false
}

// targetPos resolves a missile's handle against the live stores.
func (s *MissileSystem) targetPos(m *world.Missile) (x, y float64, ok bool) {
	switch m.TargetKind {
	case world.TargetMiniBoss:
		if mb, found := s.world.MiniBosses.Get(m.Target); found {
			return mb.X, mb.Y, true
		}
	case world.TargetBoss:
		if b, found := s.world.Bosses.Get(m.Target); found {
			return b.X, b.Y, true
		}
	}
	return 0, 0, false
}

func (s *MissileSystem) home(id ecs.EntityID, m *world.Missile) {
	ws := s.world
	tx, ty, ok := s.targetPos(m)
	if !ok {
		// Target gone: drift up and despawn off the top.
		m.Y -= missileDrift
		if m.Y < -50 {
			ws.Remove(id)
		}
		return
	}

	m.Trail.Push(world.Point{X: m.X, Y: m.Y}, missileTrailArc)
	m.Progress += m.Speed

	side := -1.0
	if m.StartX < ws.Width/2 {
		side = 1
	}
	cx := (m.StartX+tx)/2 + side*150
	cy := math.Min(m.StartY, ty) - 100

	t := math.Min(m.Progress, 1)
	u := 1 - t
	m.X = u*u*m.StartX + 2*u*t*cx + t*t*tx
	m.Y = u*u*m.StartY + 2*u*t*cy + t*t*ty

	if dist(m.X, m.Y, tx, ty) >= missileHitRadius && m.Progress < 1 {
		return
	}
	switch m.TargetKind {
	case world.TargetMiniBoss:
		s.hitMiniBoss(id, m, tx, ty)
	case world.TargetBoss:
		s.bounce(m, tx, ty)
	}
}

func (s *MissileSystem) hitMiniBoss(id ecs.EntityID, m *world.Missile, tx, ty float64) {
	ws := s.world
	ws.MissileExplosion(tx, ty)
	ws.Sound(60, event.WaveSawtooth, 0.6, 0.4)
	ws.Sound(120, event.WaveSquare, 0.4, 0.3)
	if mb, ok := ws.MiniBosses.Get(m.Target); ok {
		damageMiniBoss(ws, m.Target, mb, missileSplash)
	}
	ws.Remove(id)
}

// bounce deflects a missile off the Harasser. Missiles never damage it.
func (s *MissileSystem) bounce(m *world.Missile, tx, ty float64) {
	ws := s.world
	ws.DeflectionSpark(m.X, m.Y)
	ws.DeflectionSpark(m.X+10, m.Y-5)
	ws.DeflectionSpark(m.X-10, m.Y+5)
	ws.DeflectionSpark(m.X, m.Y+10)
	ws.Sound(1200, event.WaveSine, 0.05, 0.08)
	ws.Sound(1200, event.WaveSine, 0.08, 0.12)

	a := math.Pi/2 + (ws.Rand.Float64()-0.5)*1.5
	m.Bounced = true
	m.BounceVX = math.Cos(a) * missileBounceSpeed
	m.BounceVY = math.Sin(a) * missileBounceSpeed
	m.BounceLife = missileBounceLife
	m.Trail.Reset()
	m.X = tx + math.Cos(a)*60
	m.Y = ty + math.Sin(a)*60
}

// ballistic flies a bounced missile under gravity. A second contact with
// the Harasser removes it.
func (s *MissileSystem) ballistic(id ecs.EntityID, m *world.Missile) {
	ws := s.world
	m.Trail.Push(world.Point{X: m.X, Y: m.Y}, missileTrailBounce)
	m.X += m.BounceVX
	m.Y += m.BounceVY
	m.BounceVY += missileGravity
	m.BounceLife--

	if b, ok := ws.Bosses.Get(m.Target); ok && dist(m.X, m.Y, b.X, b.Y) < missileHitRadius {
		ws.DeflectionSpark(m.X, m.Y)
		ws.Remove(id)
		return
	}
	if m.BounceLife <= 0 || m.Y > ws.Height+50 || m.X < -50 || m.X > ws.Width+50 {
		ws.DeflectionSpark(m.X, m.Y)
		ws.Remove(id)
	}
}
