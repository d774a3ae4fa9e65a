package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	coresys "github.com/apophis/game/internal/core/system"
	"github.com/apophis/game/internal/world"
)

// Hit radii.
const (
	deflectRadius      = 35.0
	deflectPush        = 40.0
	bulletBounceLife   = 60
	dropEnemyRadius    = 50.0
	bossRadius         = 70.0
	projectileRadius   = 45.0
	playerEnemyRadius  = 60.0
	trenchDepthGate    = 0.82
	laneEnemyDepthGate = 0.85
	singleBlockWidth   = 50.0
	trenchWallWidth    = 120.0
)

// CombatSystem resolves every collision for one tick in a fixed order:
//
//  1. player bullets deflecting off mini-bosses
//  2. bullets vs chapter 2 single blocks
//  3. bullets vs enemies
//  4. bullets vs the Harasser
//  5. Harasser bullets vs the ship
//  6. mini-boss bullets vs the ship
//  7. trench blocks vs the ship
//  8. enemies vs the ship
//
// Phase 4 (Collision).
type CombatSystem struct {
	world *world.State
}

func NewCombatSystem(ws *world.State) *CombatSystem {
	return &CombatSystem{world: ws}
}

func (s *CombatSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CombatSystem) Update() {
	s.deflectOffMiniBosses()
	if s.world.Chapter == 2 {
		s.bulletsVsSingleBlocks()
	}
	s.bulletsVsEnemies()
	s.bulletsVsBoss()
	s.projectilesVsShip(s.world.BossBullets)
	s.projectilesVsShip(s.world.MiniBossBullets)
	if s.world.LaneChapter() {
		s.trenchVsShip()
	}
	s.enemiesVsShip()
}

// deflectOffMiniBosses bounces live bullets away from a mini-boss. A bounced
// bullet is never deflected again. Each deflection chips 1 hp off unless the
// profile's defense roll absorbs it.
func (s *CombatSystem) deflectOffMiniBosses() {
	ws := s.world
	if ws.MiniBosses.Len() == 0 {
		return
	}
	ws.Bullets.Each(func(_ ecs.EntityID, b *world.Bullet) {
		if b.Bounced() {
			return
		}
		ws.MiniBosses.Scan(func(mbID ecs.EntityID, mb *world.MiniBoss) bool {
			if dist(b.X, b.Y, mb.X, mb.Y) >= deflectRadius {
				return true
			}
			ws.DeflectionSpark(b.X, b.Y)
			ws.Sound(1200, event.WaveSine, 0.05, 0.08)

			a := math.Atan2(b.Y-mb.Y, b.X-mb.X) + (ws.Rand.Float64()-0.5)*0.8
			speed := 10 + ws.Rand.Float64()*4
			b.VX = math.Cos(a) * speed
			b.VY = math.Sin(a) * speed
			b.Kind = world.BulletBounced
			b.BounceLife = bulletBounceLife
			b.X = mb.X + math.Cos(a)*deflectPush
			b.Y = mb.Y + math.Sin(a)*deflectPush

			if ws.Rand.Float64() >= mb.Profile.Defense {
				damageMiniBoss(ws, mbID, mb, 1)
			}
			return false
		})
	})
}

// bulletsVsSingleBlocks absorbs bullets that strike a chapter 2 block. The
// block itself is only destroyed by boombas.
func (s *CombatSystem) bulletsVsSingleBlocks() {
	ws := s.world
	ws.Bullets.Each(func(bID ecs.EntityID, b *world.Bullet) {
		if b.Bounced() {
			return
		}
		ws.Trench.Scan(func(_ ecs.EntityID, blk *world.TrenchBlock) bool {
			if !blk.Single {
				return true
			}
			bx, by := ws.Project(blk.WorldLane, blk.Z)
			if dist(b.X, b.Y, bx, by) >= 40+blk.Z*20 {
				return true
			}
			ws.Remove(bID)
			ws.Sound(800, event.WaveSine, 0.05, 0.06)
			return false
		})
	})
}

func (s *CombatSystem) bulletsVsEnemies() {
	ws := s.world
	ws.Bullets.Each(func(bID ecs.EntityID, b *world.Bullet) {
		if b.Bounced() {
			return
		}
		ws.Enemies.ScanReverse(func(eID ecs.EntityID, e *world.Enemy) bool {
			ex, ey := ws.ScreenPos(&e.Motion)
			radius := dropEnemyRadius
			if !e.IsDrop() {
				radius = 30 + e.Lane.Z*30
			}
			if dist(b.X, b.Y, ex, ey) >= radius {
				return true
			}

			ws.Sound(150, event.WaveSawtooth, 0.2, 0.1)
			if e.Blockdot {
				dropBlockdotLoot(ws, e)
			}
			score := world.ScoreEnemy
			if e.Blockdot {
				score = world.ScoreBlockdot
			}
			killEnemy(ws, eID, e, score)
			ws.Remove(bID)
			return false
		})
	})
}

func (s *CombatSystem) bulletsVsBoss() {
	ws := s.world
	if ws.Bosses.Len() == 0 {
		return
	}
	ws.Bullets.Each(func(bID ecs.EntityID, b *world.Bullet) {
		if b.Bounced() {
			return
		}
		ws.Bosses.Scan(func(hID ecs.EntityID, h *world.Boss) bool {
			if dist(b.X, b.Y, h.X, h.Y) >= bossRadius {
				return true
			}
			ws.Remove(bID)
			ws.Explosion(h.X, h.Y)
			ws.Sound(400, event.WaveSquare, 0.05, 0.1)
			damageBoss(ws, hID, h, 1)
			return false
		})
	})
}

// projectilesVsShip handles hostile bullets reaching the ship. Shielded or
// invulnerable contact destroys the bullet for a small bonus.
func (s *CombatSystem) projectilesVsShip(store *ecs.Store[world.HostileBullet]) {
	ws := s.world
	sh := &ws.Ship
	store.Each(func(id ecs.EntityID, hb *world.HostileBullet) {
		if ws.RespawnTimer > 0 || dist(hb.X, hb.Y, sh.X, sh.Y) >= projectileRadius {
			return
		}
		ws.Remove(id)
		if sh.Protected() {
			ws.AddScore(world.ScoreDeflect)
			return
		}
		damagePlayer(ws)
	})
}

// trenchVsShip checks blocks close enough to the camera to reach the ship.
// Only the horizontal distance matters.
func (s *CombatSystem) trenchVsShip() {
	ws := s.world
	sh := &ws.Ship
	ws.Trench.EachReverse(func(id ecs.EntityID, blk *world.TrenchBlock) {
		if blk.Z <= trenchDepthGate {
			return
		}
		bx, _ := ws.Project(blk.WorldLane, blk.Z)
		width := trenchWallWidth
		if blk.Single {
			width = singleBlockWidth
		}
		if math.Abs(sh.X-bx) >= width || sh.Protected() {
			return
		}
		ws.Remove(id)
		ws.Sound(40, event.WaveSawtooth, 0.8, 0.4)
		damagePlayer(ws)
	})
}

// enemiesVsShip destroys any enemy that rams the ship. Blockdots still
// drop their boomba.
func (s *CombatSystem) enemiesVsShip() {
	ws := s.world
	sh := &ws.Ship
	ws.Enemies.EachReverse(func(id ecs.EntityID, e *world.Enemy) {
		if !e.IsDrop() && e.Lane.Z <= laneEnemyDepthGate {
			return
		}
		ex, ey := ws.ScreenPos(&e.Motion)
		if dist(sh.X, sh.Y, ex, ey) >= playerEnemyRadius {
			return
		}
		if e.Blockdot {
			dropBlockdotLoot(ws, e)
		}
		ws.Explosion(ex, ey)
		ws.Remove(id)
		if sh.Protected() {
			ws.Sound(100, event.WaveSine, 0.1, 0.2)
			return
		}
		damagePlayer(ws)
	})
}
