package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/world"
)

// bulletHomingSpeed is the chapter 2/3 speed toward the horizon.
const bulletHomingSpeed = 12

// MotionSystem integrates every passive entity kind for one tick: player
// bullets, enemies, trench blocks, pickups, hearts and hostile bullets.
// Bosses, mini-bosses and missiles steer themselves in their own systems.
// Phase 3 (Update).
type MotionSystem struct {
	world *world.State
}

func NewMotionSystem(ws *world.State) *MotionSystem {
	return &MotionSystem{world: ws}
}

func (s *MotionSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MotionSystem) Update() {
	ws := s.world
	ws.Bullets.Each(func(_ ecs.EntityID, b *world.Bullet) { s.moveBullet(b) })
	ws.Enemies.Each(func(_ ecs.EntityID, e *world.Enemy) { s.moveEnemy(e) })
	ws.Trench.Each(func(_ ecs.EntityID, b *world.TrenchBlock) { s.moveBlock(b) })
	ws.Pickups.Each(func(_ ecs.EntityID, p *world.Pickup) {
		speed := 0.005 + ws.GameSpeed*0.1
		if p.Type == world.PickupExtraLife {
			speed = s.enemyDepthSpeed() * 0.5
		}
		advance(&p.Motion, speed)
	})
	ws.Hearts.Each(func(_ ecs.EntityID, h *world.Heart) {
		advance(&h.Motion, 0.005+ws.GameSpeed*0.1)
	})
	ws.BossBullets.Each(func(_ ecs.EntityID, b *world.HostileBullet) { b.Y += b.VY })
	ws.MiniBossBullets.Each(func(_ ecs.EntityID, b *world.HostileBullet) { s.moveMiniBossBullet(b) })
}

func (s *MotionSystem) enemyDepthSpeed() float64 {
	return 0.005 + s.world.GameSpeed*0.15
}

// advance moves a drop entity by its fall speed or a lane entity deeper.
// Drop pickups and hearts fall straight down.
func advance(m *world.Motion, depthSpeed float64) {
	if m.IsDrop() {
		m.Drop.Y += m.Drop.VY
		return
	}
	m.Lane.Z += depthSpeed
}

func (s *MotionSystem) moveBullet(b *world.Bullet) {
	ws := s.world
	if ws.LaneChapter() && !b.Bounced() {
		hx, hy := ws.Horizon()
		dx, dy := hx-b.X, hy-b.Y
		d := math.Hypot(dx, dy)
		b.DistanceToHorizon = d
		if d <= 80 {
			b.ReachedHorizon = true
		}
		if d > 5 {
			b.VX = dx / d * bulletHomingSpeed
			b.VY = dy / d * bulletHomingSpeed
		}
	}

	b.X += b.VX
	b.Y += b.VY

	if !ws.LaneChapter() && b.Kind == world.BulletSine {
		b.X = b.OriginX + math.Sin(float64(ws.Time-b.Phase)*0.2)*50
	}
	if b.Bounced() {
		b.BounceLife--
	}
}

func (s *MotionSystem) moveEnemy(e *world.Enemy) {
	if e.IsDrop() {
		e.Drop.X += e.Drop.VX
		e.Drop.Y += e.Drop.VY
		return
	}
	e.Lane.Z += s.enemyDepthSpeed()
	if e.Blockdot {
		e.Lane.LateralPhase += 0.05
		e.Lane.WorldLane += math.Sin(e.Lane.LateralPhase) * e.Lane.LateralSpeed * 0.01
		e.Lane.WorldLane = math.Max(-450, math.Min(450, e.Lane.WorldLane))
	}
}

// moveBlock advances trench walls fast and chapter 2 single blocks at a
// third of enemy speed.
func (s *MotionSystem) moveBlock(b *world.TrenchBlock) {
	if b.Single {
		b.Z += s.enemyDepthSpeed() / 3
		return
	}
	b.Z += 0.03 + s.world.GameSpeed*0.2
}

// moveMiniBossBullet falls and, for triangle bullets still on screen, slides
// toward the ship.
func (s *MotionSystem) moveMiniBossBullet(b *world.HostileBullet) {
	ws := s.world
	b.Y += b.VY
	if b.Type == data.BulletTriangle && b.Y < ws.Height {
		a := math.Atan2(ws.Ship.Y-b.Y, ws.Ship.X-b.X)
		b.X += math.Cos(a) * 1.5
	}
}
