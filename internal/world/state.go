package world

import (
	"math"
	"math/rand"

	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/core/event"
	"github.com/apophis/game/internal/data"
)

// SubState is the mutually exclusive progression state gating a tick.
type SubState uint8

const (
	StateNormal SubState = iota
	StateRespawning
	StateLevelTransition
	StateBossDefeated
	StateChapterTransition
	StateGameOver
)

func (s SubState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateRespawning:
		return "respawning"
	case StateLevelTransition:
		return "level_transition"
	case StateBossDefeated:
		return "boss_defeated"
	case StateChapterTransition:
		return "chapter_transition"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Options configures a new State.
type Options struct {
	Width, Height float64
	StartingLives int
	Rand          *rand.Rand // gameplay rolls
	FXRand        *rand.Rand // cosmetic rolls; defaults to a fork of Rand
	MiniBosses    *data.MiniBossTable
	Weapons       *data.WeaponTable
	Bus           *event.Bus
}

// State owns every piece of simulation state for one run.
// It is mutated only by the tick; renderers read it.
type State struct {
	Width, Height float64

	Rand   *rand.Rand
	FXRand *rand.Rand
	Bus    *event.Bus

	MiniBossProfiles *data.MiniBossTable
	Weapons          *data.WeaponTable

	ECS             *ecs.World
	Bullets         *ecs.Store[Bullet]
	Enemies         *ecs.Store[Enemy]
	Trench          *ecs.Store[TrenchBlock]
	Pickups         *ecs.Store[Pickup]
	Hearts          *ecs.Store[Heart]
	MiniBosses      *ecs.Store[MiniBoss]
	Bosses          *ecs.Store[Boss]
	Missiles        *ecs.Store[Missile]
	BossBullets     *ecs.Store[HostileBullet]
	MiniBossBullets *ecs.Store[HostileBullet]
	Particles       []Particle

	Ship Ship

	Score        int
	Level        int
	Chapter      int
	ChapterTimer int
	Time         int
	GameSpeed    float64
	GameOver     bool

	DeathTimer             int
	RespawnTimer           int
	BossDefeatedTimer      int
	LevelTransitionTimer   int
	ChapterTransitionTimer int

	BossActive      bool
	BossScoreGained int
	Burst           BurstState

	startingLives int
}

func NewState(opts Options) *State {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.FXRand == nil {
		opts.FXRand = rand.New(rand.NewSource(opts.Rand.Int63()))
	}
	if opts.MiniBosses == nil {
		opts.MiniBosses = data.DefaultMiniBossTable()
	}
	if opts.Weapons == nil {
		opts.Weapons = data.DefaultWeaponTable()
	}
	if opts.Bus == nil {
		opts.Bus = event.NewBus()
	}
	if opts.StartingLives <= 0 {
		opts.StartingLives = StartingLives
	}

	s := &State{
		Width:            opts.Width,
		Height:           opts.Height,
		Rand:             opts.Rand,
		FXRand:           opts.FXRand,
		Bus:              opts.Bus,
		MiniBossProfiles: opts.MiniBosses,
		Weapons:          opts.Weapons,
		ECS:              ecs.NewWorld(),
		Bullets:          ecs.NewStore[Bullet](),
		Enemies:          ecs.NewStore[Enemy](),
		Trench:           ecs.NewStore[TrenchBlock](),
		Pickups:          ecs.NewStore[Pickup](),
		Hearts:           ecs.NewStore[Heart](),
		MiniBosses:       ecs.NewStore[MiniBoss](),
		Bosses:           ecs.NewStore[Boss](),
		Missiles:         ecs.NewStore[Missile](),
		BossBullets:      ecs.NewStore[HostileBullet](),
		MiniBossBullets:  ecs.NewStore[HostileBullet](),
		startingLives:    opts.StartingLives,
	}
	reg := s.ECS.Registry()
	reg.Register(s.Bullets)
	reg.Register(s.Enemies)
	reg.Register(s.Trench)
	reg.Register(s.Pickups)
	reg.Register(s.Hearts)
	reg.Register(s.MiniBosses)
	reg.Register(s.Bosses)
	reg.Register(s.Missiles)
	reg.Register(s.BossBullets)
	reg.Register(s.MiniBossBullets)

	s.Reset()
	return s
}

// Reset rebuilds the run from constants. Pending scheduled effects may
// still add particles afterwards; that is harmless.
func (s *State) Reset() {
	s.Bullets.Clear()
	s.Enemies.Clear()
	s.Trench.Clear()
	s.Pickups.Clear()
	s.Hearts.Clear()
	s.MiniBosses.Clear()
	s.Bosses.Clear()
	s.Missiles.Clear()
	s.BossBullets.Clear()
	s.MiniBossBullets.Clear()
	s.ECS.Reset()
	s.Particles = s.Particles[:0]
	s.Bus.Clear()

	s.Ship = newShip(s.startingLives)
	s.Ship.X = s.Width / 2
	s.Ship.Y = s.Height * 0.8

	s.Score = 0
	s.Level = 1
	s.Chapter = 1
	s.ChapterTimer = 0
	s.Time = 0
	s.GameSpeed = StartingGameSpeed
	s.GameOver = false

	s.DeathTimer = 0
	s.RespawnTimer = 0
	s.BossDefeatedTimer = 0
	s.LevelTransitionTimer = 0
	s.ChapterTransitionTimer = 0

	s.BossActive = false
	s.BossScoreGained = 0
	s.Burst = BurstState{}
}

// Resize updates the play field and re-centres the ship.
func (s *State) Resize(width, height float64) {
	s.Width, s.Height = width, height
	s.Ship.X = clamp(s.Ship.X, 80, math.Max(80, width-80))
	s.Ship.Y = height * 0.8
}

// SubState reports the gating state in priority order.
func (s *State) SubState() SubState {
	switch {
	case s.GameOver:
		return StateGameOver
	case s.RespawnTimer > 0:
		return StateRespawning
	case s.LevelTransitionTimer > 0:
		return StateLevelTransition
	case s.BossDefeatedTimer > 0:
		return StateBossDefeated
	case s.ChapterTransitionTimer > 0:
		return StateChapterTransition
	}
	return StateNormal
}

// LaneChapter reports whether the current chapter uses lane/depth motion.
func (s *State) LaneChapter() bool {
	return s.Chapter == 2 || s.Chapter == 3
}

func (s *State) AddScore(n int) {
	if n > 0 {
		s.Score += n
	}
}

// Project maps a lane position to screen space.
func (s *State) Project(worldLane, z float64) (x, y float64) {
	return s.Width/2 + worldLane*FOVScale*z, s.Height*HorizonY + z*s.Height*DepthSpan
}

// ScreenPos returns the screen position of a motion envelope.
func (s *State) ScreenPos(m *Motion) (x, y float64) {
	if m.IsDrop() {
		return m.Drop.X, m.Drop.Y
	}
	return s.Project(m.Lane.WorldLane, m.Lane.Z)
}

// Horizon is the vanishing point lane bullets home toward.
func (s *State) Horizon() (x, y float64) {
	return s.Width / 2, s.Height * HorizonY
}

// TrenchOffset is the canyon wander at depth z for the current tick.
func (s *State) TrenchOffset(z float64) float64 {
	t := float64(s.Time)
	wobble := math.Sin(t*0.05)*100 + math.Cos(t*0.03)*80
	return math.Sin(t*0.02+z*3)*250 + wobble
}

// RandomLane picks one of the fixed lanes.
func (s *State) RandomLane() float64 {
	return Lanes[s.Rand.Intn(len(Lanes))]
}

// Sound queues a tone for the audio boundary.
func (s *State) Sound(freq float64, wave event.Waveform, duration, volume float64) {
	event.Emit(s.Bus, event.SoundTriggered{Freq: freq, Wave: wave, Duration: duration, Volume: volume})
}

// Spawn helpers allocate a handle and insert into the matching store.

func spawn[T any](s *State, store *ecs.Store[T], v T) ecs.EntityID {
	id := s.ECS.CreateEntity()
	store.Add(id, &v)
	return id
}

func (s *State) SpawnBullet(b Bullet) ecs.EntityID      { return spawn(s, s.Bullets, b) }
func (s *State) SpawnEnemy(e Enemy) ecs.EntityID        { return spawn(s, s.Enemies, e) }
func (s *State) SpawnTrench(b TrenchBlock) ecs.EntityID { return spawn(s, s.Trench, b) }
func (s *State) SpawnPickup(p Pickup) ecs.EntityID      { return spawn(s, s.Pickups, p) }
func (s *State) SpawnHeart(h Heart) ecs.EntityID        { return spawn(s, s.Hearts, h) }
func (s *State) SpawnMiniBoss(m MiniBoss) ecs.EntityID  { return spawn(s, s.MiniBosses, m) }
func (s *State) SpawnBoss(b Boss) ecs.EntityID          { return spawn(s, s.Bosses, b) }
func (s *State) SpawnMissile(m Missile) ecs.EntityID    { return spawn(s, s.Missiles, m) }

func (s *State) SpawnBossBullet(b HostileBullet) ecs.EntityID {
	return spawn(s, s.BossBullets, b)
}

func (s *State) SpawnMiniBossBullet(b HostileBullet) ecs.EntityID {
	return spawn(s, s.MiniBossBullets, b)
}

// Remove destroys an entity. Same-tick scans skip it; stores compact at
// tick end.
func (s *State) Remove(id ecs.EntityID) bool {
	return s.ECS.Destroy(id)
}

// ClearStore empties one store and invalidates the handles it held.
func ClearStore[T any](s *State, store *ecs.Store[T]) {
	s.ECS.Release(store.Clear())
}

// ClearChapterScoped drops the per-chapter collections.
func (s *State) ClearChapterScoped() {
	ClearStore(s, s.Enemies)
	ClearStore(s, s.Trench)
	ClearStore(s, s.Pickups)
	ClearStore(s, s.Hearts)
}

// ClearLevelScoped drops everything ClearChapterScoped does plus the
// mini-boss fight and missiles.
func (s *State) ClearLevelScoped() {
	s.ClearChapterScoped()
	ClearStore(s, s.MiniBosses)
	ClearStore(s, s.MiniBossBullets)
	ClearStore(s, s.Missiles)
}
