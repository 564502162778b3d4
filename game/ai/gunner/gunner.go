// Package gunner holds per-ship targeting state: the current target, a cached
// line-of-sight answer, intercept prediction and the per-tick fire decision.
package gunner

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai/curve"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// VisibilityProbe is the host's raycast: true when the straight segment
// between two points is unobstructed. Probes are expensive; the gunner caches
// answers (see HasLineOfSight).
type VisibilityProbe interface {
	SegmentClear(from vector.Vector2, to vector.Vector2) bool
}

// Target is what the gunner is currently laid on: either a tracked ship
// (position + velocity refreshed by the owning behavior) or a bare point.
type Target struct {
	Pos   vector.Vector2
	Vel   vector.Vector2
	Valid bool
}

type GunnerConfig struct {
	ProjectileSpeed float64

	PrimaryFireDistance float64
	PrimaryFireAngleDeg float64

	MissileDumbFireDistance float64
	MissileDumbFireAngleDeg float64

	// LOS cache staleness policy
	LOSMaxAgeFrames     int
	LOSMoveThreshold    float64 // shooter or target displacement forcing a re-probe
	AngleBeforeRayDeg   float64 // beyond this bearing, skip the probe entirely
	OptimalOrbitRadius  float64
	OptimalOrbitBandRel float64 // band half-width as a fraction of the radius
}

func DefaultGunnerConfig() GunnerConfig {
	return GunnerConfig{
		ProjectileSpeed:         80,
		PrimaryFireDistance:     60,
		PrimaryFireAngleDeg:     12,
		MissileDumbFireDistance: 25,
		MissileDumbFireAngleDeg: 5,
		LOSMaxAgeFrames:         6,
		LOSMoveThreshold:        1.5,
		AngleBeforeRayDeg:       60,
		OptimalOrbitRadius:      35,
		OptimalOrbitBandRel:     0.35,
	}
}

type losCache struct {
	valid      bool
	clear      bool
	frame      int
	shooterPos vector.Vector2
	targetPos  vector.Vector2
}

// Gunner is one ship's targeting and weapons arbiter. It owns no weapon
// state; heat, ammo and the missile lock progression live with the host and
// arrive read-only through the Context.
type Gunner struct {
	cfg   GunnerConfig
	probe VisibilityProbe

	target Target
	cache  losCache

	probeCount int // diagnostics; number of actual raycasts issued
}

func NewGunner(cfg GunnerConfig, probe VisibilityProbe) *Gunner {
	return &Gunner{
		cfg:   cfg,
		probe: probe,
	}
}

func (g *Gunner) Config() GunnerConfig {
	return g.cfg
}

// SetTrackedTarget lays the guns on a moving contact.
func (g *Gunner) SetTrackedTarget(pos vector.Vector2, vel vector.Vector2) {
	g.target = Target{Pos: pos, Vel: vel, Valid: true}
}

// SetPointTarget lays the guns on a fixed point.
func (g *Gunner) SetPointTarget(pos vector.Vector2) {
	g.target = Target{Pos: pos, Valid: true}
}

func (g *Gunner) ClearTarget() {
	g.target = Target{}
	g.cache = losCache{}
}

func (g *Gunner) HasTarget() bool {
	return g.target.Valid
}

func (g *Gunner) Target() Target {
	return g.target
}

func (g *Gunner) ProbeCount() int {
	return g.probeCount
}

// AimPoint is the predicted intercept for the current target, from the given
// kinematics. Without a target it returns the shooter position itself.
func (g *Gunner) AimPoint(kin ship.Kinematics) vector.Vector2 {
	if !g.target.Valid {
		return kin.Pos
	}

	// only the forward velocity component carries into the shot
	forwardVel := kin.Forward().MultScalar(kin.ForwardSpeed())

	return InterceptPoint(kin.Pos, forwardVel, g.target.Pos, g.target.Vel, g.cfg.ProjectileSpeed)
}

// HasLineOfSight answers "can I hit the target in a straight line", re-using
// the cached probe result while it is fresh: newer than LOSMaxAgeFrames and
// neither endpoint moved more than LOSMoveThreshold. A target far outside the
// aimable cone is reported blocked without spending a probe.
func (g *Gunner) HasLineOfSight(kin ship.Kinematics, frame int) bool {
	if !g.target.Valid || g.probe == nil {
		return false
	}

	bearing := trigo.SignedDeltaDeg(kin.HeadingDeg, trigo.VectorHeading(g.target.Pos.Sub(kin.Pos)))
	if math.Abs(bearing) > g.cfg.AngleBeforeRayDeg {
		return false
	}

	if g.cache.valid &&
		frame-g.cache.frame < g.cfg.LOSMaxAgeFrames &&
		kin.Pos.Sub(g.cache.shooterPos).Mag() <= g.cfg.LOSMoveThreshold &&
		g.target.Pos.Sub(g.cache.targetPos).Mag() <= g.cfg.LOSMoveThreshold {
		return g.cache.clear
	}

	clear := g.probe.SegmentClear(kin.Pos, g.target.Pos)
	g.probeCount++
	g.cache = losCache{
		valid:      true,
		clear:      clear,
		frame:      frame,
		shooterPos: kin.Pos,
		targetPos:  g.target.Pos,
	}

	return clear
}

// FireDecision is the pair of intents handed to the host's armament system.
type FireDecision struct {
	Primary   bool
	Secondary bool
}

// DecideFire arbitrates both weapons for this tick.
//
// Secondary: a locked missile always fires and suppresses the primary for the
// tick; while idle/locking, only an opportunistic dumb-fire at very short
// range and tight bearing; in cooldown, never.
// Primary: in range, within bearing tolerance, line of sight holds.
// No target short-circuits to no fire before any geometry runs.
func (g *Gunner) DecideFire(ctx ship.Context, frame int) FireDecision {
	if !g.target.Valid || !ctx.HasEnemy() {
		return FireDecision{}
	}

	kin := ctx.Self
	toTarget := g.target.Pos.Sub(kin.Pos)
	dist := toTarget.Mag()
	bearing := math.Abs(trigo.SignedDeltaDeg(kin.HeadingDeg, trigo.VectorHeading(toTarget)))

	var decision FireDecision

	switch ctx.MissileLock {
	case ship.LockLocked:
		if ctx.MissileAmmo > 0 {
			decision.Secondary = true
		}
	case ship.LockIdle, ship.LockLocking:
		if ctx.MissileAmmo > 0 &&
			dist <= g.cfg.MissileDumbFireDistance &&
			bearing <= g.cfg.MissileDumbFireAngleDeg {
			decision.Secondary = true
		}
	case ship.LockCooldown:
		// never
	}

	// a locked missile takes firing priority over the gun
	if decision.Secondary && ctx.MissileLock == ship.LockLocked {
		return decision
	}

	if dist <= g.cfg.PrimaryFireDistance &&
		bearing <= g.cfg.PrimaryFireAngleDeg &&
		ctx.WeaponHeat < 1 &&
		g.HasLineOfSight(kin, frame) {
		decision.Primary = true
	}

	return decision
}

// AttackDesirability scores how attractive opening fire is right now; shared
// by the Attack, Orbit and Kite utilities.
func (g *Gunner) AttackDesirability(ctx ship.Context) float64 {
	if !ctx.HasEnemy() {
		return 0
	}

	score := curve.Desire(ctx.Health, 0.25)
	score += curve.Desire(ctx.Shield, 0.15)

	// weaker enemy, juicier attack
	score += curve.Fear(ctx.EnemyHealth(), 0.2)
	score += curve.Fear(ctx.EnemyShield(), 0.1)

	if !ctx.EnemyArmed() {
		score += 0.2
	}

	score += curve.Fear(ctx.NormalizedEnemyDistance(), 0.15)

	if ctx.HasLOS {
		score += 0.1
	}

	score += curve.Fear(ctx.WeaponHeat, 0.1)

	if ctx.Outnumbered() {
		score -= 0.25
	}

	return score
}
