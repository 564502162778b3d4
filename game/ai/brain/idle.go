package brain

import (
	"github.com/amindell11/astronomical-home-sub002/game/ai/curve"
	"github.com/amindell11/astronomical-home-sub002/game/ai/gunner"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Idle holds position: no waypoint, no target. Also the defensive freeze
// when both health and shield are gone.
type Idle struct {
	cfg  BrainConfig
	nav  *nav.Navigator
	guns *gunner.Gunner
}

func NewIdle(cfg BrainConfig, navigator *nav.Navigator, guns *gunner.Gunner) *Idle {
	return &Idle{cfg: cfg, nav: navigator, guns: guns}
}

func (b *Idle) Name() string { return "idle" }

func (b *Idle) Enter(ctx ship.Context) {
	b.nav.ClearNavigationPoint()
	b.nav.ClearFacingOverride()
	b.guns.ClearTarget()
}

func (b *Idle) Tick(ctx ship.Context, dt float64) {}

func (b *Idle) Exit() {}

func (b *Idle) Utility(ctx ship.Context) float64 {
	score := b.cfg.IdleBaseScore

	if ctx.NearbyEnemies == 0 {
		score += 0.1
	}

	// play dead when both pools are drained
	score += curve.Fear(ctx.Health, 0.2) * curve.Fear(ctx.Shield, 1)

	return score
}
