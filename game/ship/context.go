package ship

import (
	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

// MissileLock is the secondary weapon lock progression. Transitions are owned
// by the host's armament system; the AI core only reads it.
type MissileLock int

const (
	LockIdle MissileLock = iota
	LockLocking
	LockLocked
	LockCooldown
)

func (l MissileLock) String() string {
	switch l {
	case LockIdle:
		return "idle"
	case LockLocking:
		return "locking"
	case LockLocked:
		return "locked"
	case LockCooldown:
		return "cooldown"
	}

	return "unknown"
}

// EnemyInfo is the sensed snapshot of the nearest hostile ship.
type EnemyInfo struct {
	Kin    Kinematics
	Health float64 // [0, 1]
	Shield float64 // [0, 1]
	Armed  bool    // false once its weapons are disabled
}

// Context is the read-only per-tick snapshot every decision is made from.
// It is rebuilt from sensor queries each tick and never persisted.
//
// When there is no enemy, every enemy-derived field holds its neutral value
// (null vector, zero distance, zero fractions); consumers must not need to
// nil-check beyond HasEnemy/InCombat.
type Context struct {
	Self Kinematics

	Health      float64 // [0, 1]
	Shield      float64 // [0, 1]
	WeaponHeat  float64 // [0, 1]; 1 = primary weapon overheated
	MissileAmmo int
	MissileLock MissileLock

	Enemy *EnemyInfo

	EnemyVector     vector.Vector2 // self → enemy
	EnemyDistance   float64
	EnemyBearingDeg float64 // signed delta from own heading to enemy, (-180, 180]
	HasLOS          bool
	ClosingSpeed    float64 // positive when the gap shrinks

	NearbyEnemies   int // hostiles within sensing radius, the tracked one included
	NearbyFriends   int
	IncomingMissile bool

	EngagementRange float64 // reference distance used to normalize ranges
}

func (ctx Context) HasEnemy() bool {
	return ctx.Enemy != nil
}

// InCombat: an enemy is present and still a threat
func (ctx Context) InCombat() bool {
	return ctx.Enemy != nil
}

func (ctx Context) EnemyHealth() float64 {
	if ctx.Enemy == nil {
		return 0
	}

	return ctx.Enemy.Health
}

func (ctx Context) EnemyShield() float64 {
	if ctx.Enemy == nil {
		return 0
	}

	return ctx.Enemy.Shield
}

func (ctx Context) EnemyKinematics() Kinematics {
	if ctx.Enemy == nil {
		return Kinematics{}
	}

	return ctx.Enemy.Kin
}

func (ctx Context) EnemyArmed() bool {
	return ctx.Enemy != nil && ctx.Enemy.Armed
}

// NormalizedEnemyDistance maps the distance to the enemy onto [0, 1] of the
// engagement range; 1 when there is no enemy (maximally far)
func (ctx Context) NormalizedEnemyDistance() float64 {
	if ctx.Enemy == nil || ctx.EngagementRange <= 0 {
		return 1
	}

	return number.Clamp01(ctx.EnemyDistance / ctx.EngagementRange)
}

// Outnumbered: more hostiles than friendlies around, counting self as a friend
func (ctx Context) Outnumbered() bool {
	return ctx.NearbyEnemies > ctx.NearbyFriends+1
}

// Sanitize enforces the Context invariants: fractions clamped to [0, 1],
// distances non-negative, neutral enemy-derived fields when no enemy exists.
// Hosts call it once after filling the snapshot.
func (ctx Context) Sanitize() Context {
	ctx.Health = number.Clamp01(ctx.Health)
	ctx.Shield = number.Clamp01(ctx.Shield)
	ctx.WeaponHeat = number.Clamp01(ctx.WeaponHeat)

	if ctx.MissileAmmo < 0 {
		ctx.MissileAmmo = 0
	}

	if ctx.Enemy == nil {
		ctx.EnemyVector = vector.MakeNullVector2()
		ctx.EnemyDistance = 0
		ctx.EnemyBearingDeg = 0
		ctx.HasLOS = false
		ctx.ClosingSpeed = 0
	} else {
		ctx.Enemy.Health = number.Clamp01(ctx.Enemy.Health)
		ctx.Enemy.Shield = number.Clamp01(ctx.Enemy.Shield)

		if ctx.EnemyDistance < 0 {
			ctx.EnemyDistance = 0
		}
	}

	if ctx.NearbyEnemies < 0 {
		ctx.NearbyEnemies = 0
	}
	if ctx.NearbyFriends < 0 {
		ctx.NearbyFriends = 0
	}

	return ctx
}

// DeriveEnemyFields computes the enemy-relative fields from Self and Enemy.
// Separate from Sanitize so hosts that sense LOS themselves can overwrite
// HasLOS afterwards.
func (ctx Context) DeriveEnemyFields() Context {
	if ctx.Enemy == nil {
		return ctx.Sanitize()
	}

	toEnemy := ctx.Enemy.Kin.Pos.Sub(ctx.Self.Pos)
	ctx.EnemyVector = toEnemy
	ctx.EnemyDistance = toEnemy.Mag()
	ctx.EnemyBearingDeg = trigo.SignedDeltaDeg(ctx.Self.HeadingDeg, trigo.VectorHeading(toEnemy))

	// rate of change of the gap, sign flipped so that closing is positive
	if ctx.EnemyDistance > 0 {
		relVel := ctx.Enemy.Kin.Vel.Sub(ctx.Self.Vel)
		ctx.ClosingSpeed = -relVel.Dot(toEnemy.DivScalar(ctx.EnemyDistance))
	} else {
		ctx.ClosingSpeed = 0
	}

	return ctx.Sanitize()
}
