package brain

import (
	"math"
	"math/rand"

	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/game/ai/curve"
	"github.com/amindell11/astronomical-home-sub002/game/ai/gunner"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Orbit circles the enemy at the optimal gun radius, strafing past it with
// the nose held on target.
type Orbit struct {
	cfg  BrainConfig
	nav  *nav.Navigator
	guns *gunner.Gunner
	rng  *rand.Rand

	clockwise bool
}

func NewOrbit(cfg BrainConfig, navigator *nav.Navigator, guns *gunner.Gunner, rng *rand.Rand) *Orbit {
	return &Orbit{cfg: cfg, nav: navigator, guns: guns, rng: rng}
}

func (b *Orbit) Name() string { return "orbit" }

func (b *Orbit) Enter(ctx ship.Context) {
	// pick the rotation sense from the already-established relative motion
	if ctx.HasEnemy() {
		relVel := ctx.Self.Vel.Sub(ctx.EnemyKinematics().Vel)
		cross := relVel.Cross(ctx.EnemyVector)
		if !number.IsZero(cross) {
			b.clockwise = cross > 0
			return
		}
	}

	b.clockwise = b.rng.Float64() < 0.5
}

func (b *Orbit) Tick(ctx ship.Context, dt float64) {
	if !ctx.HasEnemy() {
		b.nav.ClearNavigationPoint()
		b.guns.ClearTarget()
		return
	}

	// occasionally reverse the circle to stay unpredictable
	if b.rng.Float64() < b.cfg.OrbitFlipChance*dt {
		b.clockwise = !b.clockwise
	}

	enemy := ctx.EnemyKinematics()
	b.guns.SetTrackedTarget(enemy.Pos, enemy.Vel)

	aim := b.guns.AimPoint(ctx.Self)
	b.nav.SetFacingOverride(trigo.VectorHeading(aim.Sub(ctx.Self.Pos)))

	wp := b.nav.ComputeOrbitPoint(
		enemy.Pos,
		ctx.Self.Pos,
		ctx.Self.Vel,
		b.clockwise,
		b.guns.Config().OptimalOrbitRadius,
		b.cfg.OrbitLeadTime,
	)
	b.nav.SetNavigationPoint(wp.Pos, wp.Vel, true)
}

func (b *Orbit) Exit() {
	b.nav.ClearNavigationPoint()
	b.nav.ClearFacingOverride()
	b.guns.ClearTarget()
}

func (b *Orbit) Utility(ctx ship.Context) float64 {
	if !ctx.HasEnemy() {
		return 0
	}

	score := b.guns.AttackDesirability(ctx)

	radius := b.guns.Config().OptimalOrbitRadius
	band := radius * b.guns.Config().OptimalOrbitBandRel
	offBand := math.Abs(ctx.EnemyDistance-radius) / math.Max(band, 1e-9)
	score += curve.Fear(number.Clamp01(offBand), 0.3)

	// no line of sight rewards circling for a flank
	if !ctx.HasLOS {
		score += 0.15
	}

	// near death, commit to something more decisive than circling
	score -= curve.Fear(ctx.Health, 0.2)

	return score
}
