package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
	"go.uber.org/zap"
)

// Respawn purge radii.
const (
	respawnBulletClear = 200.0
	respawnEnemyClear  = 150.0
)

// ProgressionSystem owns chapter and level progression and the sub-state
// gate that decides what runs each tick.
//
// Gate runs before the pipeline. Update runs in PostUpdate and advances the
// chapter once chapters 1-3 have used up their duration; chapter 4 only ends
// through the boss death timer.
// Phase 6 (PostUpdate).
type ProgressionSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewProgressionSystem(ws *world.State, log *zap.Logger) *ProgressionSystem {
	return &ProgressionSystem{world: ws, log: log}
}

func (s *ProgressionSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ProgressionSystem) Update() {
	ws := s.world
	if ws.Chapter < 4 && ws.ChapterTimer >= world.ChapterDuration {
		s.AdvanceChapter()
	}
}

// State reports the current sub-state.
func (s *ProgressionSystem) State() world.SubState { return s.world.SubState() }

// Gate steps the active sub-state timer and reports whether the tick is
// gated. A gated tick only runs event delivery, particles and cleanup.
// An ungated tick gets the per-tick bookkeeping here.
func (s *ProgressionSystem) Gate(restart bool) bool {
	ws := s.world
	switch ws.SubState() {
	case world.StateGameOver:
		if restart {
			ws.Reset()
			s.log.Info("run restarted")
			return true
		}
		if ws.DeathTimer > 0 {
			ws.DeathTimer--
		}
		return true

	case world.StateRespawning:
		ws.RespawnTimer--
		s.clearNearSpawn()
		return true

	case world.StateLevelTransition:
		ws.LevelTransitionTimer--
		return true

	case world.StateBossDefeated:
		ws.BossDefeatedTimer--
		if ws.BossDefeatedTimer == 1 {
			s.AdvanceChapter()
			ws.LevelTransitionTimer = world.LevelTransitionTicks
		}
		return true

	case world.StateChapterTransition:
		ws.ChapterTransitionTimer--
		return true
	}

	ws.Time++
	ws.GameSpeed += world.GameSpeedStep
	ws.ChapterTimer++
	sh := &ws.Ship
	if sh.InvulnTimer > 0 {
		sh.InvulnTimer--
	}
	if sh.MissileCooldown > 0 {
		sh.MissileCooldown--
	}
	return false
}

// AdvanceChapter moves to the next chapter. Past chapter 4 the level
// increments and every level-scoped collection is cleared; score, lives,
// weapons, boombas and missile ammo carry over.
func (s *ProgressionSystem) AdvanceChapter() {
	ws := s.world
	ws.ChapterTimer = 0
	ws.Chapter++

	if ws.Chapter > 4 {
		ws.Level++
		ws.Chapter = 1
		ws.ClearLevelScoped()
		event.Emit(ws.Bus, event.LevelCompleted{Level: ws.Level})
		return
	}
	ws.ChapterTransitionTimer = world.ChapterTransitionTicks
	ws.ClearChapterScoped()
	event.Emit(ws.Bus, event.ChapterAdvanced{Level: ws.Level, Chapter: ws.Chapter})
}

// clearNearSpawn purges hostile bullets around the respawning ship, and in
// chapter 1 the falling enemies as well.
func (s *ProgressionSystem) clearNearSpawn() {
	ws := s.world
	sx, sy := ws.Ship.X, ws.Ship.Y
	purge := func(id ecs.EntityID, hb *world.HostileBullet) {
		if math.Hypot(hb.X-sx, hb.Y-sy) <= respawnBulletClear {
			ws.Remove(id)
		}
	}
	ws.BossBullets.Each(purge)
	ws.MiniBossBullets.Each(purge)

	if ws.Chapter != 1 {
		return
	}
	ws.Enemies.Each(func(id ecs.EntityID, e *world.Enemy) {
		if e.IsDrop() && math.Hypot(e.Drop.X-sx, e.Drop.Y-sy) <= respawnEnemyClear {
			ws.Remove(id)
		}
	})
}
