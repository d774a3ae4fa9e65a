package system

import (
	"testing"

	"github.com/apophis/game/internal/core/event"
	"github.com/apophis/game/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickProgression(p *ProgressionSystem) bool {
	if p.Gate(false) {
		return true
	}
	p.Update()
	return false
}

func TestChapterAdvancesOnceAfterDuration(t *testing.T) {
	for _, chapter := range []int{1, 2, 3} {
		ws := newTestState()
		ws.Chapter = chapter
		p := NewProgressionSystem(ws, nopLogger())

		for i := 0; i < world.ChapterDuration-1; i++ {
			tickProgression(p)
		}
		assert.Equal(t, chapter, ws.Chapter)

		tickProgression(p)
		assert.Equal(t, chapter+1, ws.Chapter)
		assert.Equal(t, 0, ws.ChapterTimer)
		assert.Equal(t, world.ChapterTransitionTicks, ws.ChapterTransitionTimer)

		// The transition holds the timer, so no second advance follows.
		for i := 0; i < world.ChapterTransitionTicks; i++ {
			assert.True(t, tickProgression(p))
		}
		assert.Equal(t, chapter+1, ws.Chapter)
	}
}

func TestChapterFourNeverTimesOut(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 4
	ws.ChapterTimer = 10 * world.ChapterDuration
	p := NewProgressionSystem(ws, nopLogger())
	for i := 0; i < 10; i++ {
		tickProgression(p)
	}
	assert.Equal(t, 4, ws.Chapter)
}

func TestNormalTickBookkeeping(t *testing.T) {
	ws := newTestState()
	ws.Ship.InvulnTimer = 2
	ws.Ship.MissileCooldown = 1
	p := NewProgressionSystem(ws, nopLogger())

	assert.False(t, p.Gate(false))
	assert.Equal(t, 1, ws.Time)
	assert.Equal(t, 1, ws.ChapterTimer)
	assert.InDelta(t, world.StartingGameSpeed+world.GameSpeedStep, ws.GameSpeed, 1e-12)
	assert.Equal(t, 1, ws.Ship.InvulnTimer)
	assert.Equal(t, 0, ws.Ship.MissileCooldown)

	p.Gate(false)
	assert.Equal(t, 0, ws.Ship.MissileCooldown)
}

func TestLevelAdvanceClearsLevelScope(t *testing.T) {
	ws := newTestState()
	completed := collect[event.LevelCompleted](t, ws.Bus)
	ws.Chapter = 4
	ws.Score = 1234
	ws.Ship.Weapons = []int{0, 2}
	ws.Ship.Boombas = []world.BoombaType{world.BoombaScreen}
	ws.Ship.MissileAmmo = 7
	ws.SpawnEnemy(world.Enemy{})
	ws.SpawnPickup(world.Pickup{})
	spawnTestMiniBoss(ws, 1, 1, 5)
	ws.SpawnMiniBossBullet(world.HostileBullet{})
	ws.SpawnMissile(world.Missile{})

	NewProgressionSystem(ws, nopLogger()).AdvanceChapter()

	assert.Equal(t, 2, ws.Level)
	assert.Equal(t, 1, ws.Chapter)
	assert.Equal(t, 0, ws.Enemies.Len())
	assert.Equal(t, 0, ws.Pickups.Len())
	assert.Equal(t, 0, ws.MiniBosses.Len())
	assert.Equal(t, 0, ws.MiniBossBullets.Len())
	assert.Equal(t, 0, ws.Missiles.Len())
	assert.Equal(t, 0, ws.ChapterTransitionTimer)

	assert.Equal(t, 1234, ws.Score)
	assert.Equal(t, []int{0, 2}, ws.Ship.Weapons)
	assert.Equal(t, []world.BoombaType{world.BoombaScreen}, ws.Ship.Boombas)
	assert.Equal(t, 7, ws.Ship.MissileAmmo)

	dispatch(ws.Bus)
	require.Len(t, *completed, 1)
	assert.Equal(t, 2, (*completed)[0].Level)
}

func TestChapterAdvanceKeepsMiniBoss(t *testing.T) {
	ws := newTestState()
	spawnTestMiniBoss(ws, 1, 1, 5)
	ws.SpawnHeart(world.Heart{})
	NewProgressionSystem(ws, nopLogger()).AdvanceChapter()
	assert.Equal(t, 2, ws.Chapter)
	assert.Equal(t, 1, ws.MiniBosses.Len())
	assert.Equal(t, 0, ws.Hearts.Len())
}

func TestBossDefeatedFlow(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 4
	ws.BossDefeatedTimer = world.BossDefeatedTicks
	p := NewProgressionSystem(ws, nopLogger())

	for i := 0; i < world.BossDefeatedTicks-2; i++ {
		require.True(t, p.Gate(false))
	}
	assert.Equal(t, 4, ws.Chapter)

	require.True(t, p.Gate(false))
	assert.Equal(t, 1, ws.BossDefeatedTimer)
	assert.Equal(t, 2, ws.Level)
	assert.Equal(t, 1, ws.Chapter)
	assert.Equal(t, world.LevelTransitionTicks, ws.LevelTransitionTimer)
	assert.Equal(t, world.StateLevelTransition, ws.SubState())

	for i := 0; i < world.LevelTransitionTicks+1; i++ {
		require.True(t, p.Gate(false))
	}
	assert.Equal(t, world.StateNormal, ws.SubState())
	assert.Equal(t, 2, ws.Level)
	assert.False(t, p.Gate(false))
}

func TestRespawnPurgesNearbyThreats(t *testing.T) {
	ws := newTestState()
	ws.RespawnTimer = 5
	near := ws.SpawnBossBullet(world.HostileBullet{X: 500, Y: 500})
	far := ws.SpawnMiniBossBullet(world.HostileBullet{X: 500, Y: 300})
	nearEnemy := ws.SpawnEnemy(world.Enemy{Motion: world.DropMotion(450, 600, 0, 4)})
	farEnemy := ws.SpawnEnemy(world.Enemy{Motion: world.DropMotion(100, 100, 0, 4)})
	p := NewProgressionSystem(ws, nopLogger())

	assert.True(t, p.Gate(false))
	assert.Equal(t, 4, ws.RespawnTimer)
	assert.False(t, ws.BossBullets.Has(near))
	assert.True(t, ws.MiniBossBullets.Has(far))
	assert.False(t, ws.Enemies.Has(nearEnemy))
	assert.True(t, ws.Enemies.Has(farEnemy))
	assert.Equal(t, 0, ws.Time, "respawn ticks do not advance time")
}

func TestGameOverWaitsForRestart(t *testing.T) {
	ws := newTestState()
	ws.GameOver = true
	ws.DeathTimer = 2
	ws.Score = 900
	ws.Level = 3
	p := NewProgressionSystem(ws, nopLogger())

	for i := 0; i < 5; i++ {
		assert.True(t, p.Gate(false))
	}
	assert.Equal(t, 0, ws.DeathTimer)
	assert.True(t, ws.GameOver)
	assert.Equal(t, world.StateGameOver, p.State())

	assert.True(t, p.Gate(true))
	assert.False(t, ws.GameOver)
	assert.Equal(t, 0, ws.Score)
	assert.Equal(t, 1, ws.Level)
	assert.Equal(t, world.StateNormal, p.State())
}
