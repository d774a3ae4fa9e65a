package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
)

// BossSystem steers the Harasser and runs its burst fire cycle.
// Phase 3 (Update).
type BossSystem struct {
	world *world.State
}

func NewBossSystem(ws *world.State) *BossSystem {
	return &BossSystem{world: ws}
}

func (s *BossSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *BossSystem) Update() {
	ws := s.world
	ws.Bosses.Each(func(_ ecs.EntityID, b *world.Boss) { s.steer(b) })
	s.fire()
}

// steer bobs the boss vertically and chases a target column that is
// re-rolled 2% of ticks, clamped to the central 70% of the screen.
func (s *BossSystem) steer(b *world.Boss) {
	ws := s.world
	r := ws.Rand
	b.Phase += 0.04
	if !b.HasTarget || r.Float64() < 0.02 {
		b.TargetX = ws.Width * (0.2 + r.Float64()*0.6)
		b.HasTarget = true
	}
	b.X += (b.TargetX-b.X)*0.05 + (r.Float64()-0.5)*8
	b.X = math.Max(ws.Width*0.15, math.Min(ws.Width*0.85, b.X))
	b.Y = ws.Height*0.2 + math.Sin(b.Phase*2)*15
}

// fire emits one bullet every 5th tick inside a burst. Burst sizes follow
// BossBurstSequence; the cooldown after the last burst of the cycle is 90
// ticks, 30 after the others.
func (s *BossSystem) fire() {
	ws := s.world
	bs := &ws.Burst
	if bs.Cooldown > 0 {
		bs.Cooldown--
		return
	}
	_, b, ok := ws.Bosses.First()
	if !ok || ws.Time%5 != 0 {
		return
	}

	ws.SpawnBossBullet(world.HostileBullet{
		X:    b.X + (ws.Rand.Float64()-0.5)*120,
		Y:    b.Y,
		VY:   7 + ws.GameSpeed*25,
		Size: 4,
	})
	ws.Sound(200, event.WaveSine, 0.1, 0.03)

	bs.Count++
	if bs.Count < world.BossBurstSequence[bs.Phase] {
		return
	}
	bs.Count = 0
	bs.Phase = (bs.Phase + 1) % len(world.BossBurstSequence)
	if bs.Phase == 0 {
		bs.Cooldown = 90
	} else {
		bs.Cooldown = 30
	}
}
