package brain

import (
	"math"
	"math/rand"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai/curve"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Evade runs straight away from the nearest enemy. It is also the sole
// responder to an incoming missile; a dedicated jink behavior may take that
// role over later.
type Evade struct {
	cfg BrainConfig
	nav *nav.Navigator
	rng *rand.Rand

	fleeDir vector.Vector2 // fallback direction while no enemy is sensed
}

func NewEvade(cfg BrainConfig, navigator *nav.Navigator, rng *rand.Rand) *Evade {
	return &Evade{cfg: cfg, nav: navigator, rng: rng}
}

func (b *Evade) Name() string { return "evade" }

func (b *Evade) Enter(ctx ship.Context) {
	b.fleeDir = vector.MakeRandomVector2(b.rng)
	b.nav.ClearFacingOverride()
}

func (b *Evade) Tick(ctx ship.Context, dt float64) {
	away := b.fleeDir
	if ctx.HasEnemy() && !ctx.EnemyVector.IsNull() {
		away = ctx.EnemyVector.MultScalar(-1).Normalize()
	}

	fleePoint := ctx.Self.Pos.Add(away.MultScalar(b.cfg.FleeDistance))
	b.nav.SetNavigationPoint(fleePoint, vector.MakeNullVector2(), true)
}

func (b *Evade) Exit() {
	b.nav.ClearNavigationPoint()
}

func (b *Evade) Utility(ctx ship.Context) float64 {
	return evadeDesirability(ctx)
}

// evadeDesirability is shared with Kite, which averages it against the
// attack desirability.
func evadeDesirability(ctx ship.Context) float64 {
	score := curve.Fear(ctx.Health, 0.4)
	score += curve.Fear(ctx.Shield, 0.2)

	if ctx.Outnumbered() {
		score += 0.15
	}

	if ctx.IncomingMissile {
		score += 0.3
	}

	// fighting retreat: hull is cracked but the shield still holds
	score += curve.Fear(ctx.Health, 0.2) * curve.Desire(ctx.Shield, 1)

	// fleeing nose-first toward the enemy is not fleeing
	if ctx.HasEnemy() {
		score -= curve.Fear(math.Abs(ctx.EnemyBearingDeg)/180, 0.1)
	}

	return score
}
