package system

import (
	"math"

	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
	"go.uber.org/zap"
)

// SpawnSystem creates hostiles and ambient pickups. Every spawn is an
// independent per-tick roll except trench walls (every 3rd tick in chapter 3)
// and the Harasser (once on chapter 4 entry).
// Phase 2 (Spawn).
type SpawnSystem struct {
	world      *world.State
	difficulty world.Difficulty
	log        *zap.Logger
}

func NewSpawnSystem(ws *world.State, diff world.Difficulty, log *zap.Logger) *SpawnSystem {
	if diff == nil {
		diff = world.DefaultDifficulty{}
	}
	return &SpawnSystem{world: ws, difficulty: diff, log: log}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update() {
	ws := s.world
	if ws.Chapter == 4 {
		if !ws.BossActive && ws.Bosses.Len() == 0 {
			s.spawnBoss()
		}
		return
	}

	chances := s.difficulty.SpawnChances(world.DifficultyInput{
		Level:     ws.Level,
		Chapter:   ws.Chapter,
		GameSpeed: ws.GameSpeed,
		Time:      ws.Time,
	})
	r := ws.Rand

	if ws.Level >= 2 && ws.MiniBosses.Len() == 0 && r.Float64() < chances.MiniBoss {
		s.spawnMiniBoss()
	}
	if r.Float64() < chances.Enemy {
		s.spawnEnemy(false)
	}
	if r.Float64() < chances.Blockdot {
		s.spawnEnemy(true)
	}
	if ws.Chapter == 3 && ws.Time%3 == 0 {
		s.spawnTrenchWalls()
	}
	if ws.Chapter == 2 && r.Float64() < chances.Obstacle {
		ws.SpawnTrench(world.TrenchBlock{WorldLane: ws.RandomLane(), Single: true})
	}

	if r.Float64() < chances.Shield {
		s.spawnPickup(world.PickupShield)
	}
	if r.Float64() < chances.Heart {
		s.spawnHeart()
	}
	if r.Float64() < chances.Invuln {
		s.spawnPickup(world.PickupInvuln)
	}
}

// dropX is a random spawn column away from the screen edges.
func (s *SpawnSystem) dropX() float64 {
	return s.world.Rand.Float64()*(s.world.Width-200) + 100
}

// spawnLane picks the lane of a new chapter 2/3 hostile. Chapter 3 follows
// the canyon instead of the fixed lanes.
func (s *SpawnSystem) spawnLane() float64 {
	ws := s.world
	if ws.Chapter == 3 {
		return (ws.Rand.Float64()-0.5)*350 + ws.TrenchOffset(0)
	}
	return ws.RandomLane()
}

func (s *SpawnSystem) spawnEnemy(blockdot bool) {
	ws := s.world
	r := ws.Rand
	var e world.Enemy
	switch {
	case !ws.LaneChapter() && blockdot:
		e = world.Enemy{
			Motion: world.DropMotion(s.dropX(), 0, (r.Float64()-0.5)*4, 3+r.Float64()*2),
			Size:   35 + r.Float64()*20,
		}
	case !ws.LaneChapter():
		e = world.Enemy{
			Motion: world.DropMotion(s.dropX(), 0, 0, 4+r.Float64()*2),
			Size:   30 + r.Float64()*30,
		}
	default:
		e = world.Enemy{Motion: world.LaneMotion(s.spawnLane(), 0), Size: 40}
		if blockdot {
			e.Lane.LateralSpeed = (r.Float64() - 0.5) * 300
			e.Lane.LateralPhase = r.Float64() * 2 * math.Pi
		}
	}
	e.Blockdot = blockdot
	ws.SpawnEnemy(e)
}

// spawnTrenchWalls places a wall pair around the canyon centre. The gap
// narrows from 1800 to 900 over the first 600 ticks of the chapter.
func (s *SpawnSystem) spawnTrenchWalls() {
	ws := s.world
	offset := ws.TrenchOffset(0)
	progress := math.Min(float64(ws.ChapterTimer)/600, 1)
	width := 1800 - progress*900
	ws.SpawnTrench(world.TrenchBlock{WorldLane: -width/2 + offset})
	ws.SpawnTrench(world.TrenchBlock{WorldLane: width/2 + offset})
}

func (s *SpawnSystem) spawnPickup(t world.PickupType) {
	ws := s.world
	if ws.LaneChapter() {
		ws.SpawnPickup(world.Pickup{Motion: world.LaneMotion(ws.RandomLane(), 0), Type: t})
		return
	}
	r := ws.Rand
	ws.SpawnPickup(world.Pickup{
		Motion: world.DropMotion(s.dropX(), 0, 0, 3+r.Float64()*2),
		Size:   20 + r.Float64()*15,
		Type:   t,
	})
}

func (s *SpawnSystem) spawnHeart() {
	ws := s.world
	if ws.LaneChapter() {
		ws.SpawnHeart(world.Heart{Motion: world.LaneMotion(ws.RandomLane(), 0)})
		return
	}
	r := ws.Rand
	ws.SpawnHeart(world.Heart{
		Motion: world.DropMotion(s.dropX(), 0, 0, 3+r.Float64()*2),
		Size:   15 + r.Float64()*10,
	})
}

func (s *SpawnSystem) spawnMiniBoss() {
	ws := s.world
	profile := ws.MiniBossProfiles.ForLevel(ws.Level)
	hp := s.difficulty.MiniBossHP(ws.Level, ws.Rand.Float64())
	if hp < 1 {
		hp = 1
	}
	ws.SpawnMiniBoss(world.MiniBoss{
		X:        ws.Width / 2,
		Y:        ws.Height * 0.25,
		HP:       hp,
		MaxHP:    hp,
		FireRate: profile.FireRate,
		Profile:  profile,
	})
	s.log.Debug("mini-boss spawned",
		zap.String("name", profile.Name),
		zap.Int("level", ws.Level),
		zap.Int("hp", hp))
}

func (s *SpawnSystem) spawnBoss() {
	ws := s.world
	hp := s.difficulty.BossHP(ws.Level)
	if hp < 1 {
		hp = 1
	}
	ws.SpawnBoss(world.Boss{
		X:     ws.Width / 2,
		Y:     ws.Height * 0.2,
		HP:    hp,
		MaxHP: hp,
	})
	ws.BossActive = true
	ws.Burst = world.BurstState{}
	s.log.Info("boss spawned", zap.Int("level", ws.Level), zap.Int("hp", hp))
}
