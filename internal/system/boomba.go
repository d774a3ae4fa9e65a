package system

import (
	"math"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	"github.com/apophis/game/internal/world"
)

// Boomba damage.
const (
	screenMiniBossDamage = 15
	screenBossDamage     = 25
	areaFireRateSlow     = 5
	screenFireRateSlow   = 10
)

// LaunchBoomba activates the head of the boomba queue. Area and screen
// boombas go off at once and leave the queue; a charged boomba starts
// charging and stays queued until ReleaseChargedBoomba. Returns false with
// no state change when the queue is empty, a charge is already running or
// the ship is respawning.
func LaunchBoomba(ws *world.State) bool {
	sh := &ws.Ship
	if ws.RespawnTimer > 0 || sh.ChargingBoomba {
		return false
	}
	next, ok := sh.NextBoomba()
	if !ok {
		return false
	}
	switch next {
	case world.BoombaCharged:
		sh.ChargingBoomba = true
		sh.BoombaCharge = 0
		return true
	case world.BoombaArea:
		areaBoomba(ws)
	case world.BoombaScreen:
		screenBoomba(ws)
	}
	sh.PopBoomba()
	return true
}

// ReleaseChargedBoomba fires the charging boomba with power proportional
// to the charge built so far.
func ReleaseChargedBoomba(ws *world.State) bool {
	sh := &ws.Ship
	if !sh.ChargingBoomba {
		return false
	}
	chargedBoomba(ws, float64(sh.BoombaCharge)/world.BoombaChargeMax)
	sh.PopBoomba()
	sh.ChargingBoomba = false
	sh.BoombaCharge = 0
	return true
}

// areaBoomba clears enemies, single blocks and hostile bullets strictly
// inside AreaBoombaRadius of the ship and slows every mini-boss.
func areaBoomba(ws *world.State) {
	sx, sy := ws.Ship.X, ws.Ship.Y
	inside := func(x, y float64) bool { return dist(sx, sy, x, y) < world.AreaBoombaRadius }

	ws.Enemies.Each(func(id ecs.EntityID, e *world.Enemy) {
		if x, y := ws.ScreenPos(&e.Motion); inside(x, y) {
			killEnemy(ws, id, e, world.ScoreEnemy)
		}
	})
	ws.MiniBosses.Each(func(_ ecs.EntityID, mb *world.MiniBoss) {
		slowMiniBoss(mb, areaFireRateSlow)
	})
	clearBullets := func(_ ecs.EntityID, hb *world.HostileBullet) bool { return inside(hb.X, hb.Y) }
	popHostileBullets(ws, ws.MiniBossBullets, clearBullets)
	popHostileBullets(ws, ws.BossBullets, clearBullets)
	ws.Trench.Each(func(id ecs.EntityID, b *world.TrenchBlock) {
		if !b.Single {
			return
		}
		if x, y := ws.Project(b.WorldLane, b.Z); inside(x, y) {
			killBlock(ws, id, b)
		}
	})

	ws.Sound(120, event.WaveSquare, 0.6, 0.3)
	ws.AreaRings(sx, sy)
}

// screenBoomba wipes every enemy, single block and hostile bullet, and hits
// every mini-boss and the Harasser hard.
func screenBoomba(ws *world.State) {
	ws.Enemies.Each(func(id ecs.EntityID, e *world.Enemy) {
		killEnemy(ws, id, e, world.ScoreEnemy)
	})
	all := func(ecs.EntityID, *world.HostileBullet) bool { return true }
	popHostileBullets(ws, ws.MiniBossBullets, all)
	popHostileBullets(ws, ws.BossBullets, all)

	ws.MiniBosses.Each(func(id ecs.EntityID, mb *world.MiniBoss) {
		slowMiniBoss(mb, screenFireRateSlow)
		if !damageMiniBoss(ws, id, mb, screenMiniBossDamage) {
			ws.SpectacularExplosion(mb.X, mb.Y)
		}
	})
	ws.Bosses.Each(func(id ecs.EntityID, b *world.Boss) {
		if !damageBoss(ws, id, b, screenBossDamage) {
			ws.MegaExplosion(b.X, b.Y)
		}
	})
	ws.Trench.Each(func(id ecs.EntityID, b *world.TrenchBlock) {
		if b.Single {
			killBlock(ws, id, b)
		}
	})

	ws.Sound(60, event.WaveSquare, 1.2, 0.4)
	ws.ScreenFlash()
}

// chargedBoomba scales with power in [0,1]: each enemy and single block is
// destroyed with probability power, bosses take flat damage scaled by it.
func chargedBoomba(ws *world.State, power float64) {
	r := ws.Rand
	ws.Enemies.Each(func(id ecs.EntityID, e *world.Enemy) {
		if r.Float64() < power {
			killEnemy(ws, id, e, world.ScoreEnemy)
		}
	})
	ws.MiniBosses.Each(func(id ecs.EntityID, mb *world.MiniBoss) {
		slowMiniBoss(mb, int(math.Floor(power*8)))
		ws.Explosion(mb.X, mb.Y)
		damageMiniBoss(ws, id, mb, int(math.Floor(power*10)))
	})
	ws.Bosses.Each(func(id ecs.EntityID, b *world.Boss) {
		ws.Explosion(b.X, b.Y)
		damageBoss(ws, id, b, int(math.Floor(power*20)))
	})
	ws.Trench.Each(func(id ecs.EntityID, b *world.TrenchBlock) {
		if b.Single && r.Float64() < power {
			killBlock(ws, id, b)
		}
	})

	ws.Sound(80, event.WaveSquare, 1.0, 0.3)
	ws.ChargedBurst(power)
}

// popHostileBullets removes matching hostile bullets with a small burst each.
func popHostileBullets(ws *world.State, store *ecs.Store[world.HostileBullet], match func(ecs.EntityID, *world.HostileBullet) bool) {
	store.Each(func(id ecs.EntityID, hb *world.HostileBullet) {
		if match(id, hb) {
			ws.Explosion(hb.X, hb.Y)
			ws.Remove(id)
		}
	})
}
