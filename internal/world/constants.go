package world

// Tick-counted gameplay constants. One tick is 1/60 s.
const (
	TicksPerSecond = 60

	MaxHealth     = 3
	StartingLives = 3

	ShieldMax       = 100.0
	ShieldDrainRate = 0.5
	ShieldRegenRate = 0.05
	ShieldPickup    = 20.0

	MaxBoombaQueue   = 40
	BoombaChargeMax  = 300
	BoombaChargeRate = 2
	AreaBoombaRadius = 400.0

	InvulnPickupTicks      = 600
	InvulnRespawnTicks     = 180
	RespawnTicks           = 120
	DeathTicks             = 180
	BossDefeatedTicks      = 180
	LevelTransitionTicks   = 180
	ChapterTransitionTicks = 120
	ChapterDuration        = 1200

	FireDelay            = 6
	MaxMissileAmmo       = 10
	StartingMissileAmmo  = 3
	MissileCooldownTicks = 30
	MissilePickupAmmo    = 2

	StartingGameSpeed = 0.08
	GameSpeedStep     = 0.00001

	FOVScale = 0.75

	// HorizonY is the vanishing point height as a fraction of the screen.
	HorizonY = 0.3
	// DepthSpan is the screen height fraction covered by depth 0..1.
	DepthSpan = 0.5
	// LaneCull is the depth at which lane entities are culled.
	LaneCull = 1.2
)

const (
	ScoreEnemy    = 50
	ScoreBlockdot = 200
	ScoreMiniBoss = 1000
	ScoreBoss     = 5000
	ScoreObstacle = 100
	ScoreDeflect  = 5
)

// Lanes are the fixed lateral world offsets used by chapters 2 and 3.
var Lanes = [...]float64{-350, -220, -120, 0, 120, 220, 350}

// BossBurstSequence is the bullet count of each boss burst phase.
var BossBurstSequence = [...]int{6, 7, 2}

var ChapterNames = [...]string{"OPEN SPACE", "PLANETSIDE", "TRENCH CANYON", "BOSS SECTOR"}

// ChapterName returns the display name of a chapter (1-4).
func ChapterName(chapter int) string {
	if chapter < 1 || chapter > len(ChapterNames) {
		return ""
	}
	return ChapterNames[chapter-1]
}
