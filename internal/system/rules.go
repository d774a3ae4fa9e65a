package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	"github.com/apophis/game/internal/world"
)

// Shared gameplay rules used by more than one system.

// ==================== player damage ====================

// damagePlayer applies one lethal contact. Ignored once the run is over.
func damagePlayer(s *world.State) {
	if s.GameOver {
		return
	}
	sh := &s.Ship
	sh.AdjustHealth(-1)
	s.DamageExplosion(sh.X, sh.Y)
	s.Sound(50, event.WaveSawtooth, 0.5, 0.3)

	if sh.Health > 0 {
		return
	}
	sh.Lives--
	s.UltimateExplosion(sh.X, sh.Y)
	if sh.Lives > 0 {
		s.RespawnTimer = world.RespawnTicks
		sh.Health = world.MaxHealth
		sh.InvulnTimer = world.InvulnRespawnTicks
		event.Emit(s.Bus, event.PlayerDied{LivesLeft: sh.Lives})
		return
	}
	sh.Lives = 0
	s.DeathTimer = world.DeathTicks
	s.GameOver = true
	event.Emit(s.Bus, event.PlayerDied{LivesLeft: 0, GameOver: true})
}

// ==================== mini-boss ====================

// damageMiniBoss subtracts hp and runs the destruction path at hp <= 0.
// Returns true when the mini-boss died.
func damageMiniBoss(s *world.State, id ecs.EntityID, mb *world.MiniBoss, dmg int) bool {
	if dmg <= 0 {
		return false
	}
	mb.HP -= dmg
	if mb.HP > 0 {
		return false
	}
	mb.HP = 0
	destroyMiniBoss(s, id, mb)
	return true
}

// destroyMiniBoss drops loot (extra life or weapon, plus missile ammo) at two
// offset points, removes the mini-boss and scores it. Stale ids are a no-op
// so a double kill in one tick scores once.
func destroyMiniBoss(s *world.State, id ecs.EntityID, mb *world.MiniBoss) {
	if !s.Remove(id) {
		return
	}
	s.SpectacularExplosion(mb.X, mb.Y)

	drop := world.PickupExtraLife
	if s.Rand.Float64() >= 0.5 {
		drop = world.PickupWeapon
	}
	s.SpawnPickup(world.Pickup{Motion: world.DropMotion(mb.X, mb.Y, 0, 2.5), Size: 25, Type: drop})
	s.SpawnPickup(world.Pickup{Motion: world.DropMotion(mb.X+30, mb.Y, 0, 2.5), Size: 20, Type: world.PickupMissile})

	s.AddScore(world.ScoreMiniBoss)
	event.Emit(s.Bus, event.EntityKilled{Entity: id, Kind: event.KillMiniBoss, X: mb.X, Y: mb.Y, Score: world.ScoreMiniBoss})
}

// slowMiniBoss raises the fire interval, capped at 60 ticks.
func slowMiniBoss(mb *world.MiniBoss, ticks int) {
	mb.FireRate += ticks
	if mb.FireRate > 60 {
		mb.FireRate = 60
	}
}

// ==================== boss ====================

// damageBoss subtracts hp and runs the boss death path at hp <= 0.
func damageBoss(s *world.State, id ecs.EntityID, b *world.Boss, dmg int) bool {
	if dmg <= 0 {
		return false
	}
	b.HP -= dmg
	if b.HP > 0 {
		return false
	}
	b.HP = 0
	destroyBoss(s, id, b)
	return true
}

// destroyBoss ends the boss fight: mega burst now, delayed bursts scheduled
// off the BossDefeated event, all boss bullets cleared, celebration timer set.
func destroyBoss(s *world.State, id ecs.EntityID, b *world.Boss) {
	if !s.Remove(id) {
		return
	}
	s.MegaExplosion(b.X, b.Y)
	world.ClearStore(s, s.BossBullets)
	s.BossActive = false
	s.BossScoreGained = world.ScoreBoss
	s.AddScore(world.ScoreBoss)
	s.BossDefeatedTimer = world.BossDefeatedTicks
	s.Sound(50, event.WaveSawtooth, 1.5, 0.5)

	event.Emit(s.Bus, event.EntityKilled{Entity: id, Kind: event.KillBoss, X: b.X, Y: b.Y, Score: world.ScoreBoss})
	event.Emit(s.Bus, event.BossDefeated{X: b.X, Y: b.Y, Level: s.Level})
}

// ==================== loot ====================

// dropBlockdotLoot spawns the guaranteed boomba pickup and rolls the 25%
// missile ammo drop where a blockdot died.
func dropBlockdotLoot(s *world.State, e *world.Enemy) {
	kind := world.BoombaTypes[s.Rand.Intn(len(world.BoombaTypes))]
	p := world.Pickup{Motion: e.Motion, Size: 25, Type: world.PickupBoomba, Boomba: kind}
	if p.IsDrop() {
		p.Drop.VX, p.Drop.VY = 0, 2
	}
	p.Lane.LateralSpeed = 0
	s.SpawnPickup(p)
	s.Sound(400, event.WaveSine, 0.3, 0.15)

	if s.Rand.Float64() >= 0.25 {
		return
	}
	if e.IsDrop() {
		s.SpawnPickup(world.Pickup{Motion: world.DropMotion(e.Drop.X+20, e.Drop.Y, 0, 2.2), Size: 20, Type: world.PickupMissile})
	} else {
		s.SpawnPickup(world.Pickup{Motion: world.LaneMotion(e.Lane.WorldLane+50, e.Lane.Z), Type: world.PickupMissile})
	}
}

// killEnemy removes an enemy that was shot or blasted and scores it.
func killEnemy(s *world.State, id ecs.EntityID, e *world.Enemy, score int) {
	x, y := s.ScreenPos(&e.Motion)
	if !s.Remove(id) {
		return
	}
	s.Explosion(x, y)
	s.AddScore(score)
	kind := event.KillEnemy
	if e.Blockdot {
		kind = event.KillBlockdot
	}
	event.Emit(s.Bus, event.EntityKilled{Entity: id, Kind: kind, X: x, Y: y, Score: score})
}

// killBlock removes a single obstacle block and scores it.
func killBlock(s *world.State, id ecs.EntityID, b *world.TrenchBlock) {
	x, y := s.Project(b.WorldLane, b.Z)
	if !s.Remove(id) {
		return
	}
	s.Explosion(x, y)
	s.AddScore(world.ScoreObstacle)
	event.Emit(s.Bus, event.EntityKilled{Entity: id, Kind: event.KillObstacle, X: x, Y: y, Score: world.ScoreObstacle})
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
