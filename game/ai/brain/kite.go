package brain

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai/curve"
	"github.com/amindell11/astronomical-home-sub002/game/ai/gunner"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Kite backs away from the enemy while keeping the guns on it: retreat along
// the blend of away-from-enemy and opposite-of-enemy-velocity, pushed out
// further when too close and eased back in when disengaging too far.
type Kite struct {
	cfg  BrainConfig
	nav  *nav.Navigator
	guns *gunner.Gunner
}

func NewKite(cfg BrainConfig, navigator *nav.Navigator, guns *gunner.Gunner) *Kite {
	return &Kite{cfg: cfg, nav: navigator, guns: guns}
}

func (b *Kite) Name() string { return "kite" }

func (b *Kite) Enter(ctx ship.Context) {}

func (b *Kite) Tick(ctx ship.Context, dt float64) {
	if !ctx.HasEnemy() {
		b.nav.ClearNavigationPoint()
		b.guns.ClearTarget()
		return
	}

	enemy := ctx.EnemyKinematics()
	b.guns.SetTrackedTarget(enemy.Pos, enemy.Vel)

	aim := b.guns.AimPoint(ctx.Self)
	b.nav.SetFacingOverride(trigo.VectorHeading(aim.Sub(ctx.Self.Pos)))

	away := vector.MakeNullVector2()
	if !ctx.EnemyVector.IsNull() {
		away = ctx.EnemyVector.MultScalar(-1).Normalize()
	}

	retreat := away.Add(enemy.Vel.MultScalar(-1).Normalize())
	if retreat.IsNull() {
		retreat = away
	}
	retreat = retreat.Normalize()

	// distance correction around the preferred gun range
	radius := b.guns.Config().OptimalOrbitRadius
	reach := b.cfg.KiteDistance
	if ctx.EnemyDistance < radius {
		reach += radius - ctx.EnemyDistance
	} else if ctx.EnemyDistance > radius*2 {
		// drifting out of the fight; ease back toward the enemy
		retreat = retreat.Lerp(away.MultScalar(-1), 0.5).Normalize()
	}

	point := ctx.Self.Pos.Add(retreat.MultScalar(reach))
	b.nav.SetNavigationPoint(point, vector.MakeNullVector2(), true)
}

func (b *Kite) Exit() {
	b.nav.ClearNavigationPoint()
	b.nav.ClearFacingOverride()
	b.guns.ClearTarget()
}

func (b *Kite) Utility(ctx ship.Context) float64 {
	if !ctx.HasEnemy() {
		return 0
	}

	score := (b.guns.AttackDesirability(ctx) + evadeDesirability(ctx)) / 2

	// too close for comfort
	radius := b.guns.Config().OptimalOrbitRadius
	score += curve.Fear(number.Clamp01(ctx.EnemyDistance/math.Max(radius, 1e-9)), 0.2)

	// guns cold and ready while wanting out of the brawl
	score += curve.Fear(ctx.WeaponHeat, 0.1)

	// cracked hull behind a live shield is the kiting posture
	score += curve.Fear(ctx.Health, 0.15) * curve.Desire(ctx.Shield, 1)

	// kiting only works with the nose on the enemy
	score -= curve.Desire(math.Abs(ctx.EnemyBearingDeg)/180, 0.15)

	return score
}
