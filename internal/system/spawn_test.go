package system

import (
	"testing"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossSpawnsOnceInChapterFour(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 4
	ws.Burst = world.BurstState{Count: 3, Phase: 2, Cooldown: 9}
	s := NewSpawnSystem(ws, fixedDifficulty{hp: 55}, nopLogger())

	for i := 0; i < 50; i++ {
		s.Update()
	}
	require.Equal(t, 1, ws.Bosses.Len())
	assert.True(t, ws.BossActive)
	assert.Equal(t, world.BurstState{}, ws.Burst)
	_, b, _ := ws.Bosses.First()
	assert.Equal(t, 55, b.HP)
	assert.Equal(t, 500.0, b.X)
	assert.Equal(t, 160.0, b.Y)
	assert.Equal(t, 0, ws.Enemies.Len(), "chapter 4 only spawns the boss")
}

func TestBossWaitsWhileOneIsAlive(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 4
	ws.SpawnBoss(world.Boss{HP: 3, MaxHP: 3})
	NewSpawnSystem(ws, fixedDifficulty{hp: 5}, nopLogger()).Update()
	assert.Equal(t, 1, ws.Bosses.Len())
	assert.False(t, ws.BossActive)
}

func TestBossHPFloorsAtOne(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 4
	NewSpawnSystem(ws, fixedDifficulty{hp: -3}, nopLogger()).Update()
	_, b, ok := ws.Bosses.First()
	require.True(t, ok)
	assert.Equal(t, 1, b.HP)
}

func TestTrenchWallsEveryThirdTick(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 3
	s := NewSpawnSystem(ws, fixedDifficulty{}, nopLogger())

	for tick := 1; tick <= 9; tick++ {
		ws.Time = tick
		s.Update()
	}
	assert.Equal(t, 6, ws.Trench.Len())
	ws.Trench.Each(func(_ ecs.EntityID, b *world.TrenchBlock) {
		assert.False(t, b.Single)
		assert.Equal(t, 0.0, b.Z)
	})
}

func TestTrenchGapNarrows(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 3
	s := NewSpawnSystem(ws, fixedDifficulty{}, nopLogger())

	gap := func() float64 {
		var lanes []float64
		ws.Trench.Each(func(_ ecs.EntityID, b *world.TrenchBlock) { lanes = append(lanes, b.WorldLane) })
		require.Len(t, lanes, 2)
		return lanes[1] - lanes[0]
	}

	s.Update()
	assert.InDelta(t, 1800, gap(), 1e-9)

	world.ClearStore(ws, ws.Trench)
	ws.ChapterTimer = 900
	s.Update()
	assert.InDelta(t, 900, gap(), 1e-9)
}

func TestObstaclesOnlyInChapterTwo(t *testing.T) {
	for chapter, want := range map[int]int{1: 0, 2: 1, 3: 0} {
		ws := newTestState()
		ws.Chapter = chapter
		ws.Time = 1
		NewSpawnSystem(ws, fixedDifficulty{chances: world.SpawnChances{Obstacle: 1}}, nopLogger()).Update()
		assert.Equal(t, want, ws.Trench.Len(), "chapter %d", chapter)
		ws.Trench.Each(func(_ ecs.EntityID, b *world.TrenchBlock) {
			assert.True(t, b.Single)
			assert.Contains(t, world.Lanes[:], b.WorldLane)
		})
	}
}

func TestMiniBossNeedsLevelTwo(t *testing.T) {
	d := fixedDifficulty{chances: world.SpawnChances{MiniBoss: 1}, hp: 12}

	ws := newTestState()
	NewSpawnSystem(ws, d, nopLogger()).Update()
	assert.Equal(t, 0, ws.MiniBosses.Len())

	ws.Level = 2
	s := NewSpawnSystem(ws, d, nopLogger())
	for i := 0; i < 20; i++ {
		s.Update()
	}
	require.Equal(t, 1, ws.MiniBosses.Len(), "at most one mini-boss alive")
	_, mb, _ := ws.MiniBosses.First()
	assert.Equal(t, 12, mb.HP)
	assert.Equal(t, mb.Profile.FireRate, mb.FireRate)
	assert.Equal(t, 200.0, mb.Y)
}

func TestDropChapterSpawnShapes(t *testing.T) {
	ws := newTestState()
	d := fixedDifficulty{chances: world.SpawnChances{Enemy: 1, Blockdot: 1, Shield: 1, Heart: 1, Invuln: 1}}
	NewSpawnSystem(ws, d, nopLogger()).Update()

	require.Equal(t, 2, ws.Enemies.Len())
	var blockdots int
	ws.Enemies.Each(func(_ ecs.EntityID, e *world.Enemy) {
		require.True(t, e.IsDrop())
		assert.GreaterOrEqual(t, e.Drop.X, 100.0)
		assert.Less(t, e.Drop.X, 900.0)
		assert.Equal(t, 0.0, e.Drop.Y)
		assert.Greater(t, e.Drop.VY, 0.0)
		if e.Blockdot {
			blockdots++
		}
	})
	assert.Equal(t, 1, blockdots)
	assert.Equal(t, 2, ws.Pickups.Len())
	assert.Equal(t, 1, ws.Hearts.Len())
}

func TestLaneChapterSpawnsAtDepthZero(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 2
	d := fixedDifficulty{chances: world.SpawnChances{Blockdot: 1, Shield: 1}}
	NewSpawnSystem(ws, d, nopLogger()).Update()

	_, e, ok := ws.Enemies.First()
	require.True(t, ok)
	assert.False(t, e.IsDrop())
	assert.Equal(t, 0.0, e.Lane.Z)
	assert.Contains(t, world.Lanes[:], e.Lane.WorldLane)
	assert.LessOrEqual(t, e.Lane.LateralSpeed, 150.0)
	assert.GreaterOrEqual(t, e.Lane.LateralSpeed, -150.0)

	_, p, ok := ws.Pickups.First()
	require.True(t, ok)
	assert.Equal(t, world.PickupShield, p.Type)
	assert.Equal(t, 0.0, p.Lane.Z)
}
