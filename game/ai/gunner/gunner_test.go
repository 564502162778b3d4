package gunner

import (
	"testing"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

type countingProbe struct {
	clear bool
	calls int
}

func (p *countingProbe) SegmentClear(from vector.Vector2, to vector.Vector2) bool {
	p.calls++
	return p.clear
}

func enemyAt(pos vector.Vector2, vel vector.Vector2) *ship.EnemyInfo {
	return &ship.EnemyInfo{
		Kin:    ship.MakeKinematics(pos, vel, 0),
		Health: 1,
		Shield: 1,
		Armed:  true,
	}
}

func combatContext(selfHeading float64, enemyPos vector.Vector2) ship.Context {
	ctx := ship.Context{
		Self:            ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), selfHeading),
		Health:          1,
		Shield:          1,
		MissileAmmo:     3,
		MissileLock:     ship.LockIdle,
		Enemy:           enemyAt(enemyPos, vector.MakeNullVector2()),
		EngagementRange: 100,
	}
	return ctx.DeriveEnemyFields()
}

func TestLOSCacheReusesFreshProbe(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)
	g.SetTrackedTarget(vector.MakeVector2(0, 30), vector.MakeNullVector2())

	first := g.HasLineOfSight(kin, 1)
	second := g.HasLineOfSight(kin, 2)

	if !first || !second {
		t.Fatal("probe says clear; both answers must be true")
	}

	if probe.calls != 1 {
		t.Fatalf("probe ran %d times inside the cache window, want 1", probe.calls)
	}
}

func TestLOSCacheExpiresByAge(t *testing.T) {
	cfg := DefaultGunnerConfig()
	probe := &countingProbe{clear: true}
	g := NewGunner(cfg, probe)

	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)
	g.SetTrackedTarget(vector.MakeVector2(0, 30), vector.MakeNullVector2())

	g.HasLineOfSight(kin, 1)
	g.HasLineOfSight(kin, 1+cfg.LOSMaxAgeFrames)

	if probe.calls != 2 {
		t.Fatalf("probe ran %d times across the age limit, want 2", probe.calls)
	}
}

func TestLOSCacheExpiresOnTargetMove(t *testing.T) {
	cfg := DefaultGunnerConfig()
	probe := &countingProbe{clear: true}
	g := NewGunner(cfg, probe)

	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)
	g.SetTrackedTarget(vector.MakeVector2(0, 30), vector.MakeNullVector2())
	g.HasLineOfSight(kin, 1)

	g.SetTrackedTarget(vector.MakeVector2(0, 30+cfg.LOSMoveThreshold*2), vector.MakeNullVector2())
	g.HasLineOfSight(kin, 2)

	if probe.calls != 2 {
		t.Fatalf("probe ran %d times after the target moved, want 2", probe.calls)
	}
}

func TestLOSSkipsProbeOutsideAimCone(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	// target dead astern; way outside the pre-ray angle gate
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)
	g.SetTrackedTarget(vector.MakeVector2(0, -30), vector.MakeNullVector2())

	if g.HasLineOfSight(kin, 1) {
		t.Fatal("target behind the ship reported visible")
	}

	if probe.calls != 0 {
		t.Fatalf("probe ran %d times for an unaimable target, want 0", probe.calls)
	}
}

func TestNoEnemyNeverFires(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	// a stale point target is still set, but the context has no enemy
	g.SetPointTarget(vector.MakeVector2(0, 10))

	ctx := ship.Context{
		Self:        ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0),
		Health:      1,
		Shield:      1,
		MissileAmmo: 5,
		MissileLock: ship.LockLocked,
	}
	ctx = ctx.Sanitize()

	decision := g.DecideFire(ctx, 1)

	if decision.Primary || decision.Secondary {
		t.Fatalf("fired %+v with no enemy in context", decision)
	}

	if probe.calls != 0 {
		t.Fatal("ran geometry/probe work despite the no-target short-circuit")
	}
}

func TestPrimaryFiresInEnvelope(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	enemyPos := vector.MakeVector2(0, 30)
	ctx := combatContext(0, enemyPos)
	g.SetTrackedTarget(enemyPos, vector.MakeNullVector2())

	decision := g.DecideFire(ctx, 1)

	if !decision.Primary {
		t.Fatal("primary held fire inside range, bearing and LOS")
	}
}

func TestPrimaryHeldWhenBlocked(t *testing.T) {
	probe := &countingProbe{clear: false}
	g := NewGunner(DefaultGunnerConfig(), probe)

	enemyPos := vector.MakeVector2(0, 30)
	ctx := combatContext(0, enemyPos)
	g.SetTrackedTarget(enemyPos, vector.MakeNullVector2())

	if g.DecideFire(ctx, 1).Primary {
		t.Fatal("primary fired through an occluder")
	}
}

func TestPrimaryHeldWhenOverheated(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	enemyPos := vector.MakeVector2(0, 30)
	ctx := combatContext(0, enemyPos)
	ctx.WeaponHeat = 1
	g.SetTrackedTarget(enemyPos, vector.MakeNullVector2())

	if g.DecideFire(ctx, 1).Primary {
		t.Fatal("primary fired at full heat")
	}
}

func TestLockedMissileSuppressesPrimary(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	enemyPos := vector.MakeVector2(0, 30)
	ctx := combatContext(0, enemyPos)
	ctx.MissileLock = ship.LockLocked
	g.SetTrackedTarget(enemyPos, vector.MakeNullVector2())

	decision := g.DecideFire(ctx, 1)

	if !decision.Secondary {
		t.Fatal("locked missile did not fire")
	}

	if decision.Primary {
		t.Fatal("primary fired in the same tick as a locked missile")
	}
}

func TestMissileCooldownNeverFires(t *testing.T) {
	probe := &countingProbe{clear: true}
	g := NewGunner(DefaultGunnerConfig(), probe)

	// point blank and dead ahead; still no missile while cooling down
	enemyPos := vector.MakeVector2(0, 5)
	ctx := combatContext(0, enemyPos)
	ctx.MissileLock = ship.LockCooldown
	g.SetTrackedTarget(enemyPos, vector.MakeNullVector2())

	if g.DecideFire(ctx, 1).Secondary {
		t.Fatal("missile fired during cooldown")
	}
}

func TestOpportunisticDumbFire(t *testing.T) {
	cfg := DefaultGunnerConfig()
	probe := &countingProbe{clear: true}
	g := NewGunner(cfg, probe)

	enemyPos := vector.MakeVector2(0, cfg.MissileDumbFireDistance-1)
	ctx := combatContext(0, enemyPos)
	ctx.MissileLock = ship.LockIdle
	g.SetTrackedTarget(enemyPos, vector.MakeNullVector2())

	if !g.DecideFire(ctx, 1).Secondary {
		t.Fatal("no dumb-fire at point blank dead ahead")
	}

	// same shot without ammo stays dry
	ctx.MissileAmmo = 0
	if g.DecideFire(ctx, 2).Secondary {
		t.Fatal("dumb-fired with no ammo")
	}
}

func TestAttackDesirabilityNeutralWithoutEnemy(t *testing.T) {
	g := NewGunner(DefaultGunnerConfig(), &countingProbe{clear: true})

	ctx := ship.Context{Health: 1, Shield: 1}.Sanitize()

	if got := g.AttackDesirability(ctx); got != 0 {
		t.Fatalf("attack desirability without enemy = %v, want 0", got)
	}
}
