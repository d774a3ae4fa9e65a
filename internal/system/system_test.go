package system

import (
	"math/rand"
	"testing"

	"github.com/apophis/game/internal/core/event"
	"github.com/apophis/game/internal/data"
	"github.com/apophis/game/internal/world"
	"go.uber.org/zap"
)

// Ship starts at (500, 640).
func newTestState() *world.State {
	return world.NewState(world.Options{Width: 1000, Height: 800, Rand: rand.New(rand.NewSource(11))})
}

type fakeControls struct {
	axis    float64
	fire    bool
	shield  bool
	boomba  bool
	missile bool
	next    bool
	prev    bool
	restart bool
}

func (c *fakeControls) MovementAxis() float64   { return c.axis }
func (c *fakeControls) Firing() bool            { return c.fire }
func (c *fakeControls) Shielding() bool         { return c.shield }
func (c *fakeControls) BoombaHeld() bool        { return c.boomba }
func (c *fakeControls) MissileRequested() bool  { return c.missile }
func (c *fakeControls) WeaponNextPressed() bool { return c.next }
func (c *fakeControls) WeaponPrevPressed() bool { return c.prev }
func (c *fakeControls) RestartRequested() bool  { return c.restart }

// fixedDifficulty returns the same chances every tick.
type fixedDifficulty struct {
	chances world.SpawnChances
	hp      int
}

func (d fixedDifficulty) SpawnChances(world.DifficultyInput) world.SpawnChances { return d.chances }
func (d fixedDifficulty) MiniBossHP(int, float64) int                          { return d.hp }
func (d fixedDifficulty) BossHP(int) int                                        { return d.hp }

// testProfile never blocks chip damage.
var testProfile = data.MiniBossProfile{Name: "TEST", FireRate: 20, ChaosRate: 0.05, BulletType: data.BulletLine}

func spawnTestMiniBoss(ws *world.State, x, y float64, hp int) {
	ws.SpawnMiniBoss(world.MiniBoss{X: x, Y: y, HP: hp, MaxHP: hp, FireRate: testProfile.FireRate, Profile: testProfile})
}

func nopLogger() *zap.Logger { return zap.NewNop() }

// collect subscribes to T and delivers one swap worth of events.
func collect[T any](t *testing.T, bus *event.Bus) *[]T {
	t.Helper()
	var got []T
	event.Subscribe(bus, func(e T) { got = append(got, e) })
	return &got
}

func dispatch(bus *event.Bus) {
	bus.SwapBuffers()
	bus.DispatchAll()
}
