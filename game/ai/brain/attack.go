package brain

import (
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/game/ai/curve"
	"github.com/amindell11/astronomical-home-sub002/game/ai/gunner"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Attack chases the enemy down, laying the guns on the predicted intercept.
type Attack struct {
	cfg  BrainConfig
	nav  *nav.Navigator
	guns *gunner.Gunner
}

func NewAttack(cfg BrainConfig, navigator *nav.Navigator, guns *gunner.Gunner) *Attack {
	return &Attack{cfg: cfg, nav: navigator, guns: guns}
}

func (b *Attack) Name() string { return "attack" }

func (b *Attack) Enter(ctx ship.Context) {}

func (b *Attack) Tick(ctx ship.Context, dt float64) {
	if !ctx.HasEnemy() {
		b.nav.ClearNavigationPoint()
		b.guns.ClearTarget()
		return
	}

	enemy := ctx.EnemyKinematics()
	b.guns.SetTrackedTarget(enemy.Pos, enemy.Vel)

	aim := b.guns.AimPoint(ctx.Self)

	// force-face the intercept only when the fight is on top of us or the
	// gap is closing hard; otherwise free-face the velocity vector
	if ctx.EnemyDistance <= b.cfg.CloseRange || ctx.ClosingSpeed >= b.cfg.ClosingFastSpeed {
		b.nav.SetFacingOverride(trigo.VectorHeading(aim.Sub(ctx.Self.Pos)))
	} else {
		b.nav.ClearFacingOverride()
	}

	b.nav.SetNavigationPoint(enemy.Pos, enemy.Vel, true)
}

func (b *Attack) Exit() {
	b.nav.ClearNavigationPoint()
	b.nav.ClearFacingOverride()
	b.guns.ClearTarget()
}

func (b *Attack) Utility(ctx ship.Context) float64 {
	if !ctx.HasEnemy() {
		return 0
	}

	score := b.guns.AttackDesirability(ctx)

	// finish them: a crippled enemy is worth pressing
	score += curve.Fear((ctx.EnemyHealth()+ctx.EnemyShield())/2, 0.25)

	// too far out to orbit usefully; close the distance instead
	orbitRadius := b.guns.Config().OptimalOrbitRadius
	band := orbitRadius * b.guns.Config().OptimalOrbitBandRel
	if ctx.EnemyDistance > orbitRadius+band {
		score += 0.1
	}

	// desperation: nothing left to protect
	score += curve.Fear(ctx.Health, 0.08)

	return score
}
