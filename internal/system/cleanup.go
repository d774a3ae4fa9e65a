package system

import (
	"github.com/apophis/game/internal/core/ecs"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
)

// CleanupSystem culls entities past their bounds and then compacts every
// store in a single pass.
// Phase 7 (Cleanup).
type CleanupSystem struct {
	world *world.State
}

func NewCleanupSystem(ws *world.State) *CleanupSystem {
	return &CleanupSystem{world: ws}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update() {
	ws := s.world
	h := ws.Height

	cull(ws, ws.Bullets, s.bulletGone)
	cull(ws, ws.Enemies, func(e *world.Enemy) bool { return s.motionGone(&e.Motion) })
	cull(ws, ws.Trench, func(b *world.TrenchBlock) bool { return b.Z >= world.LaneCull })
	cull(ws, ws.Pickups, func(p *world.Pickup) bool { return s.motionGone(&p.Motion) })
	cull(ws, ws.Hearts, func(hr *world.Heart) bool { return s.motionGone(&hr.Motion) })
	offScreen := func(b *world.HostileBullet) bool { return b.Y > h || b.Y < 0 }
	cull(ws, ws.BossBullets, offScreen)
	cull(ws, ws.MiniBossBullets, offScreen)
	cull(ws, ws.Missiles, func(m *world.Missile) bool { return m.Y <= -100 || m.Y >= h+100 })

	ws.ECS.Compact()
}

// bulletGone: bounced bullets expire or leave the screen; otherwise chapters
// 1/4 cull above the top edge and chapters 2/3 at the horizon.
func (s *CleanupSystem) bulletGone(b *world.Bullet) bool {
	ws := s.world
	if b.Bounced() {
		return b.BounceLife <= 0 || b.X <= 0 || b.X >= ws.Width || b.Y <= 0 || b.Y >= ws.Height
	}
	if ws.LaneChapter() {
		return b.ReachedHorizon
	}
	return b.Y <= -50
}

func (s *CleanupSystem) motionGone(m *world.Motion) bool {
	if m.IsDrop() {
		return m.Drop.Y >= s.world.Height
	}
	return m.Lane.Z >= world.LaneCull
}

func cull[T any](ws *world.State, store *ecs.Store[T], gone func(*T) bool) {
	store.Each(func(id ecs.EntityID, v *T) {
		if gone(v) {
			ws.Remove(id)
		}
	})
}
