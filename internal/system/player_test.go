package system

import (
	"testing"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipMovementClampsToMargins(t *testing.T) {
	ws := newTestState()
	c := &fakeControls{axis: 1}
	p := NewPlayerSystem(ws, c)

	p.Update()
	assert.Greater(t, ws.Ship.X, 500.0)

	for i := 0; i < 300; i++ {
		p.Update()
	}
	assert.Equal(t, 920.0, ws.Ship.X)

	c.axis = -1
	for i := 0; i < 600; i++ {
		p.Update()
	}
	assert.Equal(t, 80.0, ws.Ship.X)
}

func TestShipCoastsToAStop(t *testing.T) {
	ws := newTestState()
	c := &fakeControls{axis: 1}
	p := NewPlayerSystem(ws, c)
	for i := 0; i < 5; i++ {
		p.Update()
	}
	c.axis = 0
	for i := 0; i < 200; i++ {
		p.Update()
	}
	assert.InDelta(t, 0, ws.Ship.Angle, 1e-6)
}

func TestFiresEverySixthTick(t *testing.T) {
	ws := newTestState()
	p := NewPlayerSystem(ws, &fakeControls{fire: true})
	for tick := 1; tick <= 12; tick++ {
		ws.Time = tick
		p.Update()
	}
	assert.Equal(t, 2, ws.Bullets.Len())

	ws.Bullets.Each(func(_ ecs.EntityID, b *world.Bullet) {
		assert.Equal(t, 500.0, b.X)
		assert.Equal(t, 605.0, b.Y)
		assert.Equal(t, -12.0, b.VY)
		assert.Equal(t, world.BulletPlain, b.Kind)
	})
}

func TestNoFireWhileRespawningOrCharging(t *testing.T) {
	ws := newTestState()
	p := NewPlayerSystem(ws, &fakeControls{fire: true})
	ws.RespawnTimer = 10
	p.Update()
	assert.Equal(t, 0, ws.Bullets.Len())

	ws.RespawnTimer = 0
	ws.Ship.ChargingBoomba = true
	ws.Ship.BoombaHeldPrev = true
	p.Update()
	assert.Equal(t, 0, ws.Bullets.Len())
}

func TestScatterFansOutInDropChapters(t *testing.T) {
	ws := newTestState()
	ws.Ship.Weapons = []int{0, 2}
	ws.Ship.WeaponIndex = 1
	NewPlayerSystem(ws, &fakeControls{fire: true}).Update()

	require.Equal(t, 5, ws.Bullets.Len())
	var xs, vxs []float64
	ws.Bullets.Each(func(_ ecs.EntityID, b *world.Bullet) {
		xs = append(xs, b.X)
		vxs = append(vxs, b.VX)
		assert.Equal(t, -14.0, b.VY)
		assert.Equal(t, world.BulletScatter, b.Kind)
	})
	assert.Equal(t, []float64{470, 485, 500, 515, 530}, xs)
	assert.Equal(t, []float64{-4, -2, 0, 2, 4}, vxs)
}

func TestLaneVolleyAimsAtHorizon(t *testing.T) {
	ws := newTestState()
	ws.Chapter = 2
	ws.Ship.X = 300
	NewPlayerSystem(ws, &fakeControls{fire: true}).Update()

	_, b, ok := ws.Bullets.First()
	require.True(t, ok)
	hx, hy := ws.Horizon()
	// Velocity is parallel to the line from the muzzle to the horizon.
	cross := (hx-b.X)*b.VY - (hy-b.Y)*b.VX
	assert.InDelta(t, 0, cross, 1e-6)
	assert.Greater(t, b.VX, 0.0)
	assert.Less(t, b.VY, 0.0)
	assert.InDelta(t, 12, dist(0, 0, b.VX, b.VY), 1e-9)
}

func TestShieldDrainsWhileHeld(t *testing.T) {
	ws := newTestState()
	c := &fakeControls{shield: true}
	p := NewPlayerSystem(ws, c)

	p.Update()
	assert.True(t, ws.Ship.ShieldActive)
	assert.Equal(t, world.ShieldMax-world.ShieldDrainRate, ws.Ship.Shield)

	c.shield = false
	p.Update()
	assert.False(t, ws.Ship.ShieldActive)
	assert.InDelta(t, world.ShieldMax-world.ShieldDrainRate+world.ShieldRegenRate, ws.Ship.Shield, 1e-9)
}

func TestShieldNeedsMoreThanOne(t *testing.T) {
	ws := newTestState()
	ws.Ship.Shield = 1
	p := NewPlayerSystem(ws, &fakeControls{shield: true})
	p.Update()
	assert.False(t, ws.Ship.ShieldActive)
	assert.InDelta(t, 1.05, ws.Ship.Shield, 1e-9)

	// Regenerated above 1, so it comes up again and drains.
	p.Update()
	assert.True(t, ws.Ship.ShieldActive)
	assert.InDelta(t, 0.55, ws.Ship.Shield, 1e-9)
}

func TestShieldStaysInRange(t *testing.T) {
	ws := newTestState()
	c := &fakeControls{shield: true}
	p := NewPlayerSystem(ws, c)
	for i := 0; i < 1000; i++ {
		c.shield = i%300 < 250
		p.Update()
		require.GreaterOrEqual(t, ws.Ship.Shield, 0.0)
		require.LessOrEqual(t, ws.Ship.Shield, world.ShieldMax)
	}
}

func TestShieldBlockedWhileRespawning(t *testing.T) {
	ws := newTestState()
	ws.RespawnTimer = 30
	NewPlayerSystem(ws, &fakeControls{shield: true}).Update()
	assert.False(t, ws.Ship.ShieldActive)
}

func TestWeaponCycleWraps(t *testing.T) {
	ws := newTestState()
	ws.Ship.Weapons = []int{0, 1, 2}
	c := &fakeControls{next: true}
	p := NewPlayerSystem(ws, c)

	p.Update()
	assert.Equal(t, 1, ws.Ship.CurrentWeapon())

	c.next, c.prev = false, true
	p.Update()
	p.Update()
	assert.Equal(t, 2, ws.Ship.CurrentWeapon())
}

func TestMissileRequestLaunches(t *testing.T) {
	ws := newTestState()
	spawnTestMiniBoss(ws, 500, 200, 20)
	NewPlayerSystem(ws, &fakeControls{missile: true}).Update()
	assert.Equal(t, 1, ws.Missiles.Len())
	assert.Equal(t, world.StartingMissileAmmo-1, ws.Ship.MissileAmmo)
}
