package system

import (
	"testing"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireBossUntil ticks the boss until n bullets exist in total.
func fireBossUntil(t *testing.T, ws *world.State, bs *BossSystem, n int) {
	t.Helper()
	for i := 0; i < 10000 && ws.BossBullets.Len() < n; i++ {
		ws.Time++
		bs.Update()
	}
	require.Equal(t, n, ws.BossBullets.Len())
}

func TestBossBurstSequence(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 4
	ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 100, MaxHP: 100})
	bs := NewBossSystem(ws)

	fireBossUntil(t, ws, bs, 6)
	assert.Equal(t, world.BurstState{Count: 0, Phase: 1, Cooldown: 30}, ws.Burst)

	fireBossUntil(t, ws, bs, 13)
	assert.Equal(t, world.BurstState{Count: 0, Phase: 2, Cooldown: 30}, ws.Burst)

	fireBossUntil(t, ws, bs, 15)
	assert.Equal(t, world.BurstState{Count: 0, Phase: 0, Cooldown: 90}, ws.Burst)
}

func TestBossFiresEveryFifthTick(t *testing.T) {
	ws := newTestState()
	ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 100})
	bs := NewBossSystem(ws)

	for ws.Time = 1; ws.Time <= 4; ws.Time++ {
		bs.Update()
	}
	assert.Equal(t, 0, ws.BossBullets.Len())
	ws.Time = 5
	bs.Update()
	require.Equal(t, 1, ws.BossBullets.Len())

	_, b, _ := ws.BossBullets.First()
	_, boss, _ := ws.Bosses.First()
	assert.InDelta(t, boss.X, b.X, 60)
	assert.InDelta(t, 7+ws.GameSpeed*25, b.VY, 1e-9)
}

func TestBossCooldownBlocksFire(t *testing.T) {
	ws := newTestState()
	ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 100})
	ws.Burst.Cooldown = 2
	ws.Time = 5
	bs := NewBossSystem(ws)
	bs.Update()
	assert.Equal(t, 1, ws.Burst.Cooldown)
	assert.Equal(t, 0, ws.BossBullets.Len())
}

func TestBossStaysInBand(t *testing.T) {
	ws := newTestState()
	ws.SpawnBoss(world.Boss{X: 500, Y: 160, HP: 100})
	bs := NewBossSystem(ws)
	for i := 0; i < 2000; i++ {
		ws.Time++
		bs.Update()
		_, b, _ := ws.Bosses.First()
		require.GreaterOrEqual(t, b.X, 150.0)
		require.LessOrEqual(t, b.X, 850.0)
		require.InDelta(t, 160, b.Y, 15)
	}
}

func TestMiniBossFiresProfileBullets(t *testing.T) {
	ws := newTestState()
	ws.SpawnMiniBoss(world.MiniBoss{
		X: 500, Y: 200, HP: 10, FireRate: 25,
		Profile: data.MiniBossProfile{FireRate: 25, ChaosRate: 0.02, BulletType: data.BulletTriangle},
	})
	ms := NewMiniBossSystem(ws)
	ws.Time = 25
	ms.Update()
	require.Equal(t, 1, ws.MiniBossBullets.Len())
	_, b, _ := ws.MiniBossBullets.First()
	assert.Equal(t, data.BulletTriangle, b.Type)
	assert.InDelta(t, (5+ws.GameSpeed*20)*0.6, b.VY, 1e-9)

	ws.Time = 26
	ms.Update()
	assert.Equal(t, 1, ws.MiniBossBullets.Len())
}

func TestMiniBossStaysInBand(t *testing.T) {
	ws := newTestState()
	spawnTestMiniBoss(ws, 500, 200, 10)
	ms := NewMiniBossSystem(ws)
	for i := 0; i < 2000; i++ {
		ws.Time++
		ms.Update()
	}
	ws.MiniBosses.Each(func(_ ecs.EntityID, mb *world.MiniBoss) {
		assert.GreaterOrEqual(t, mb.X, 100.0)
		assert.LessOrEqual(t, mb.X, 900.0)
		assert.True(t, mb.HasTarget)
	})
}
