package system

import (
	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
)

const (
	pickupRadius    = 60.0
	pickupDepthGate = 0.8
)

// PickupSystem collects pickups and hearts that reach the ship.
// Phase 4 (Collision), after CombatSystem.
type PickupSystem struct {
	world *world.State
}

func NewPickupSystem(ws *world.State) *PickupSystem {
	return &PickupSystem{world: ws}
}

func (s *PickupSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *PickupSystem) Update() {
	ws := s.world
	ws.Pickups.EachReverse(func(id ecs.EntityID, p *world.Pickup) {
		if !s.reached(&p.Motion) {
			return
		}
		ws.Remove(id)
		s.apply(p)
		event.Emit(ws.Bus, event.PickupCollected{Type: string(p.Type)})
	})
	ws.Hearts.EachReverse(func(id ecs.EntityID, h *world.Heart) {
		if !s.reached(&h.Motion) {
			return
		}
		ws.Remove(id)
		ws.Ship.AdjustHealth(1)
		ws.Sound(800, event.WaveSine, 0.3, 0.2)
		event.Emit(ws.Bus, event.PickupCollected{Type: "heart"})
	})
}

// reached reports whether a pickup is within collection range. Lane pickups
// must also be near the camera.
func (s *PickupSystem) reached(m *world.Motion) bool {
	if !m.IsDrop() && m.Lane.Z <= pickupDepthGate {
		return false
	}
	x, y := s.world.ScreenPos(m)
	return dist(s.world.Ship.X, s.world.Ship.Y, x, y) < pickupRadius
}

func (s *PickupSystem) apply(p *world.Pickup) {
	ws := s.world
	sh := &ws.Ship
	switch p.Type {
	case world.PickupShield:
		sh.AdjustShield(world.ShieldPickup)
		ws.Sound(600, event.WaveSine, 0.3, 0.2)
	case world.PickupWeapon:
		if id, ok := s.rollWeapon(); ok {
			sh.AddWeapon(id)
		}
		ws.Sound(600, event.WaveSine, 0.3, 0.2)
	case world.PickupBoomba:
		sh.QueueBoomba(p.Boomba)
		ws.Sound(600, event.WaveSine, 0.3, 0.2)
	case world.PickupInvuln:
		sh.InvulnTimer = world.InvulnPickupTicks
		ws.Sound(600, event.WaveSine, 0.3, 0.2)
	case world.PickupExtraLife:
		sh.Lives++
		ws.Sound(900, event.WaveSine, 0.5, 0.3)
	case world.PickupMissile:
		sh.AdjustMissileAmmo(world.MissilePickupAmmo)
		ws.Sound(550, event.WaveSine, 0.3, 0.2)
	}
}

// rollWeapon picks a random non-default weapon from the table. Owning it
// already makes the pickup a no-op.
func (s *PickupSystem) rollWeapon() (int, bool) {
	var ids []int
	for _, id := range s.world.Weapons.IDs() {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, false
	}
	return ids[s.world.Rand.Intn(len(ids))], true
}
