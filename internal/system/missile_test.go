package system

import (
	"testing"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireMissileNeedsTarget(t *testing.T) {
	ws := newTestState()
	assert.False(t, FireMissile(ws))
	assert.Equal(t, world.StartingMissileAmmo, ws.Ship.MissileAmmo)
	assert.Equal(t, 0, ws.Missiles.Len())
}

func TestFireMissileNeedsAmmoAndNoCooldown(t *testing.T) {
	ws := newTestState()
	spawnTestMiniBoss(ws, 500, 200, 10)

	ws.Ship.MissileAmmo = 0
	assert.False(t, FireMissile(ws))

	ws.Ship.MissileAmmo = 2
	ws.Ship.MissileCooldown = 1
	assert.False(t, FireMissile(ws))
	assert.Equal(t, 2, ws.Ship.MissileAmmo)

	ws.Ship.MissileCooldown = 0
	require.True(t, FireMissile(ws))
	assert.Equal(t, 1, ws.Ship.MissileAmmo)
	assert.Equal(t, world.MissileCooldownTicks, ws.Ship.MissileCooldown)
	assert.Equal(t, 1, ws.Missiles.Len())
}

func TestMissileTargetsNearestMiniBossFirst(t *testing.T) {
	ws := newTestState()
	ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 50})
	spawnTestMiniBoss(ws, 100, 100, 10)
	near := ws.SpawnMiniBoss(world.MiniBoss{X: 500, Y: 400, HP: 10})

	id, kind, ok := missileTarget(ws)
	require.True(t, ok)
	assert.Equal(t, near, id)
	assert.Equal(t, world.TargetMiniBoss, kind)
}

func TestMissileKillsMiniBoss(t *testing.T) {
	ws := newTestState()
	spawnTestMiniBoss(ws, 300, 200, 8)
	require.True(t, FireMissile(ws))
	ms := NewMissileSystem(ws)

	for i := 0; i < 60 && ws.Missiles.Len() > 0; i++ {
		ms.Update()
	}
	assert.Equal(t, 0, ws.Missiles.Len())
	assert.Equal(t, 0, ws.MiniBosses.Len())
	assert.Equal(t, world.ScoreMiniBoss, ws.Score)
	assert.Equal(t, 2, ws.Pickups.Len())
}

func TestMissileSplashDamage(t *testing.T) {
	ws := newTestState()
	spawnTestMiniBoss(ws, 300, 200, 20)
	require.True(t, FireMissile(ws))
	ms := NewMissileSystem(ws)
	for i := 0; i < 60 && ws.Missiles.Len() > 0; i++ {
		ms.Update()
	}
	_, mb, ok := ws.MiniBosses.First()
	require.True(t, ok)
	assert.Equal(t, 20-missileSplash, mb.HP)
}

func TestMissileBouncesOffBoss(t *testing.T) {
	ws := newTestState()
	ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 50, MaxHP: 50})
	require.True(t, FireMissile(ws))
	mid := ws.Missiles.IDs()[0]
	ms := NewMissileSystem(ws)

	bounced := false
	for i := 0; i < 400 && ws.Missiles.Has(mid); i++ {
		ms.Update()
		m, ok := ws.Missiles.Get(mid)
		if !ok {
			break
		}
		if bounced {
			assert.True(t, m.Bounced, "bounce never reverts")
		}
		bounced = m.Bounced
		assert.LessOrEqual(t, m.Trail.Len(), missileTrailBounce)
	}
	assert.True(t, bounced)
	assert.False(t, ws.Missiles.Has(mid), "bounced missile expires")

	_, b, _ := ws.Bosses.First()
	assert.Equal(t, 50, b.HP, "missiles never damage the Harasser")
}

func TestBouncedMissileSecondContactRemoves(t *testing.T) {
	ws := newTestState()
	bossID := ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 50})
	mid := ws.SpawnMissile(world.Missile{
		X: 500, Y: 180,
		Target: bossID, TargetKind: world.TargetBoss,
		Bounced: true, BounceLife: 100,
	})

	NewMissileSystem(ws).Update()
	assert.False(t, ws.Missiles.Has(mid))
	_, b, _ := ws.Bosses.First()
	assert.Equal(t, 50, b.HP)
}

func TestMissileLosesTarget(t *testing.T) {
	ws := newTestState()
	mbID := ws.SpawnMiniBoss(world.MiniBoss{X: 300, Y: 200, HP: 10})
	require.True(t, FireMissile(ws))
	mid := ws.Missiles.IDs()[0]
	ms := NewMissileSystem(ws)
	ms.Update()

	ws.Remove(mbID)
	m, _ := ws.Missiles.Get(mid)
	y := m.Y
	ms.Update()
	assert.Equal(t, y-missileDrift, m.Y)

	for i := 0; i < 100 && ws.Missiles.Has(mid); i++ {
		ms.Update()
	}
	assert.False(t, ws.Missiles.Has(mid))
}

func TestStaleHandleAfterReuse(t *testing.T) {
	ws := newTestState()
	old := ws.SpawnMiniBoss(world.MiniBoss{X: 300, Y: 200, HP: 10})
	ws.Remove(old)
	ws.ECS.Compact()
	fresh := ws.SpawnMiniBoss(world.MiniBoss{X: 300, Y: 200, HP: 10})

	assert.Equal(t, old.Index(), fresh.Index())
	ms := NewMissileSystem(ws)
	_, _, ok := ms.targetPos(&world.Missile{Target: old, TargetKind: world.TargetMiniBoss})
	assert.False(t, ok, "a recycled slot must not resurrect an old target")
	_, _, ok = ms.targetPos(&world.Missile{Target: fresh, TargetKind: world.TargetMiniBoss})
	assert.True(t, ok)
	var zero ecs.EntityID
	_, _, ok = ms.targetPos(&world.Missile{Target: zero, TargetKind: world.TargetBoss})
	assert.False(t, ok)
}
