package world

import (
	"github.com/apophis/game/internal/core/ecs"
	"github.com/apophis/game/internal/data"
)

// MotionKind tags which half of a Motion is meaningful.
type MotionKind uint8

const (
	MotionDrop MotionKind = iota // chapter 1/4: straight Cartesian fall
	MotionLane                   // chapter 2/3: lane + depth perspective
)

// Dropping is a screen-space position with a per-tick velocity.
type Dropping struct {
	X, Y   float64
	VX, VY float64
}

// Lane is a world lane offset and a depth in [0, LaneCull).
// LateralSpeed/LateralPhase drive the blockdot side-to-side drift.
type Lane struct {
	WorldLane    float64
	Z            float64
	LateralSpeed float64
	LateralPhase float64
}

// Motion is the shared positional envelope of enemies, pickups and hearts.
type Motion struct {
	Kind MotionKind
	Drop Dropping
	Lane Lane
}

func DropMotion(x, y, vx, vy float64) Motion {
	return Motion{Kind: MotionDrop, Drop: Dropping{X: x, Y: y, VX: vx, VY: vy}}
}

func LaneMotion(worldLane, z float64) Motion {
	return Motion{Kind: MotionLane, Lane: Lane{WorldLane: worldLane, Z: z}}
}

func (m Motion) IsDrop() bool { return m.Kind == MotionDrop }

type Enemy struct {
	Motion
	Size     float64
	Blockdot bool
}

// TrenchBlock is either a chapter-3 canyon wall or a chapter-2 single block.
type TrenchBlock struct {
	WorldLane float64
	Z         float64
	Single    bool
}

type PickupType string

const (
	PickupWeapon    PickupType = "weapon"
	PickupMissile   PickupType = "missile"
	PickupBoomba    PickupType = "boomba"
	PickupInvuln    PickupType = "invuln"
	PickupExtraLife PickupType = "extralife"
	PickupShield    PickupType = "shield"
)

type BoombaType string

const (
	BoombaArea    BoombaType = "area"
	BoombaScreen  BoombaType = "screen"
	BoombaCharged BoombaType = "charged"
)

// BoombaTypes lists every boomba variant a blockdot can drop.
var BoombaTypes = [...]BoombaType{BoombaArea, BoombaScreen, BoombaCharged}

type Pickup struct {
	Motion
	Size   float64
	Type   PickupType
	Boomba BoombaType // only for PickupBoomba
}

type Heart struct {
	Motion
	Size float64
}

type BulletKind uint8

const (
	BulletPlain BulletKind = iota
	BulletSine
	BulletScatter
	BulletLaser
	BulletBounced
)

func (k BulletKind) String() string {
	switch k {
	case BulletPlain:
		return "plain"
	case BulletSine:
		return "sine"
	case BulletScatter:
		return "scatter"
	case BulletLaser:
		return "laser"
	case BulletBounced:
		return "bounced"
	}
	return "unknown"
}

// Bullet is a player projectile. Once Kind is BulletBounced it is ballistic
// and counts BounceLife down to zero.
type Bullet struct {
	X, Y    float64
	VX, VY  float64
	Kind    BulletKind
	OriginX float64
	Phase   int // tick the sine bullet was fired
	Width   float64

	BounceLife int

	// Horizon homing bookkeeping, chapters 2/3.
	DistanceToHorizon float64
	ReachedHorizon    bool
}

func (b *Bullet) Bounced() bool { return b.Kind == BulletBounced }

type MiniBoss struct {
	X, Y      float64
	Phase     float64
	HP, MaxHP int
	TargetX   float64
	HasTarget bool
	FireRate  int
	Profile   data.MiniBossProfile
}

// Boss is the chapter-4 Harasser.
type Boss struct {
	X, Y      float64
	Phase     float64
	HP, MaxHP int
	TargetX   float64
	HasTarget bool
}

// HostileBullet is fired by the boss (Type empty) or a mini-boss.
type HostileBullet struct {
	X, Y float64
	VY   float64
	Size float64
	Type data.BulletType
}

type TargetKind uint8

const (
	TargetMiniBoss TargetKind = iota
	TargetBoss
)

// Missile flies a reshaping quadratic Bezier arc toward a live target.
// Target is a generational handle: a stale handle means the target is gone.
type Missile struct {
	X, Y           float64
	StartX, StartY float64
	Target         ecs.EntityID
	TargetKind     TargetKind
	Progress       float64
	Speed          float64
	Trail          Trail

	Bounced    bool
	BounceVX   float64
	BounceVY   float64
	BounceLife int
}

// BurstState tracks the boss bullet burst cycle.
type BurstState struct {
	Count    int // bullets fired in the current phase
	Phase    int // index into BossBurstSequence
	Cooldown int
}
