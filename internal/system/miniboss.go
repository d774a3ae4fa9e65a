package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/world"
)

// MiniBossSystem steers mini-bosses and fires on their profile cadence.
// Phase 3 (Update).
type MiniBossSystem struct {
	world *world.State
}

func NewMiniBossSystem(ws *world.State) *MiniBossSystem {
	return &MiniBossSystem{world: ws}
}

func (s *MiniBossSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MiniBossSystem) Update() {
	s.world.MiniBosses.Each(func(_ ecs.EntityID, mb *world.MiniBoss) {
		s.steer(mb)
		if mb.FireRate > 0 && s.world.Time%mb.FireRate == 0 {
			s.fire(mb)
		}
	})
}

// steer mirrors the Harasser chase but with the profile's chaos rate driving
// both target re-rolls and steering noise.
func (s *MiniBossSystem) steer(mb *world.MiniBoss) {
	ws := s.world
	r := ws.Rand
	chaos := mb.Profile.ChaosRate
	mb.Phase += 0.06
	if !mb.HasTarget || r.Float64() < chaos {
		mb.TargetX = ws.Width * (0.2 + r.Float64()*0.6)
		mb.HasTarget = true
	}
	mb.X += (mb.TargetX-mb.X)*0.08 + (r.Float64()-0.5)*chaos*50
	mb.X = math.Max(ws.Width*0.1, math.Min(ws.Width*0.9, mb.X))
	mb.Y = ws.Height*0.25 + math.Sin(mb.Phase*2)*20
}

func (s *MiniBossSystem) fire(mb *world.MiniBoss) {
	ws := s.world
	b := world.HostileBullet{
		X:    mb.X,
		Y:    mb.Y,
		VY:   5 + ws.GameSpeed*20,
		Size: 6,
		Type: mb.Profile.BulletType,
	}
	switch b.Type {
	case data.BulletCircle:
		b.VY *= 0.7
	case data.BulletTriangle:
		b.VY *= 0.6
	}
	ws.SpawnMiniBossBullet(b)
	ws.Sound(250, event.WaveSine, 0.08, 0.04)
}
