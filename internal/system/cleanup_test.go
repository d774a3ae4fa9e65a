package system

import (
	"testing"

	"github.com/apophis/game/internal/world"
	"github.com/stretchr/testify/assert"
)

func TestCleanupDropChapter(t *testing.T) {
	ws := newTestState()
	gone := []func() bool{}
	kept := []func() bool{}

	b1 := ws.SpawnBullet(world.Bullet{Y: -51})
	b2 := ws.SpawnBullet(world.Bullet{Y: -49})
	gone = append(gone, func() bool { return ws.Bullets.Has(b1) })
	kept = append(kept, func() bool { return ws.Bullets.Has(b2) })

	e1 := ws.SpawnEnemy(world.Enemy{Motion: world.DropMotion(100, 800, 0, 4)})
	e2 := ws.SpawnEnemy(world.Enemy{Motion: world.DropMotion(100, 799, 0, 4)})
	gone = append(gone, func() bool { return ws.Enemies.Has(e1) })
	kept = append(kept, func() bool { return ws.Enemies.Has(e2) })

	h1 := ws.SpawnBossBullet(world.HostileBullet{Y: 801})
	h2 := ws.SpawnMiniBossBullet(world.HostileBullet{Y: -1})
	h3 := ws.SpawnMiniBossBullet(world.HostileBullet{Y: 400})
	gone = append(gone, func() bool { return ws.BossBullets.Has(h1) }, func() bool { return ws.MiniBossBullets.Has(h2) })
	kept = append(kept, func() bool { return ws.MiniBossBullets.Has(h3) })

	m1 := ws.SpawnMissile(world.Missile{Y: -100})
	m2 := ws.SpawnMissile(world.Missile{Y: 100})
	gone = append(gone, func() bool { return ws.Missiles.Has(m1) })
	kept = append(kept, func() bool { return ws.Missiles.Has(m2) })

	NewCleanupSystem(ws).Update()
	for i, has := range gone {
		assert.False(t, has(), "gone[%d]", i)
	}
	for i, has := range kept {
		assert.True(t, has(), "kept[%d]", i)
	}
}

func TestCleanupLaneChapter(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 2

	reached := ws.SpawnBullet(world.Bullet{Y: 300, ReachedHorizon: true})
	flying := ws.SpawnBullet(world.Bullet{Y: -60})
	deep := ws.SpawnEnemy(world.Enemy{Motion: world.LaneMotion(0, 1.2)})
	near := ws.SpawnPickup(world.Pickup{Motion: world.LaneMotion(0, 1.19)})
	wall := ws.SpawnTrench(world.TrenchBlock{Z: 1.25})

	NewCleanupSystem(ws).Update()
	assert.False(t, ws.Bullets.Has(reached))
	assert.True(t, ws.Bullets.Has(flying), "lane chapters cull by horizon only")
	assert.False(t, ws.Enemies.Has(deep))
	assert.True(t, ws.Pickups.Has(near))
	assert.False(t, ws.Trench.Has(wall))
}

func TestCleanupBouncedBullets(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 2
	expired := ws.SpawnBullet(world.Bullet{X: 300, Y: 300, Kind: world.BulletBounced})
	offside := ws.SpawnBullet(world.Bullet{X: 1000, Y: 300, Kind: world.BulletBounced, BounceLife: 10})
	alive := ws.SpawnBullet(world.Bullet{X: 300, Y: 300, Kind: world.BulletBounced, BounceLife: 10, ReachedHorizon: true})

	NewCleanupSystem(ws).Update()
	assert.False(t, ws.Bullets.Has(expired))
	assert.False(t, ws.Bullets.Has(offside))
	assert.True(t, ws.Bullets.Has(alive))
}
