package brain

import (
	"math/rand"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Patrol wanders between random points inside the patrol radius while no
// fight is on.
type Patrol struct {
	cfg BrainConfig
	nav *nav.Navigator
	rng *rand.Rand
}

func NewPatrol(cfg BrainConfig, navigator *nav.Navigator, rng *rand.Rand) *Patrol {
	return &Patrol{cfg: cfg, nav: navigator, rng: rng}
}

func (b *Patrol) Name() string { return "patrol" }

func (b *Patrol) Enter(ctx ship.Context) {
	b.pickWaypoint(ctx)
}

func (b *Patrol) Tick(ctx ship.Context, dt float64) {
	if !b.nav.HasNavigationPoint() {
		b.pickWaypoint(ctx)
		return
	}

	wp := b.nav.NavigationPoint()
	if wp.Pos.Sub(ctx.Self.Pos).Mag() <= b.cfg.PatrolArriveRadius {
		b.pickWaypoint(ctx)
	}
}

func (b *Patrol) Exit() {
	b.nav.ClearNavigationPoint()
}

// binary gate: all-in while out of combat, out of the running otherwise
func (b *Patrol) Utility(ctx ship.Context) float64 {
	if ctx.InCombat() {
		return 0
	}

	return 1
}

func (b *Patrol) pickWaypoint(ctx ship.Context) {
	offset := vector.MakeRandomVector2(b.rng).MultScalar(b.rng.Float64() * b.cfg.PatrolRadius)
	b.nav.SetNavigationPoint(ctx.Self.Pos.Add(offset), vector.MakeNullVector2(), true)
}
