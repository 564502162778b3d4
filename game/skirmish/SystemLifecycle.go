package skirmish

import (
	"github.com/bytearena/ecs"
)

// systemLifecycle ages out entities past their maximum life.
func systemLifecycle(game *SkirmishGame) {
	for _, entityresult := range game.lifecycleView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if lifecycleAspect.IsDead() {
			continue
		}

		if lifecycleAspect.maxAge > 0 && game.ticknum-lifecycleAspect.tickBirth > lifecycleAspect.maxAge {
			lifecycleAspect.SetDeath(game.ticknum)
		}
	}
}

// systemDeleteEntities disposes everything marked dead this tick, after box2d
// has finished touching bodies. Death hooks fire exactly once, here.
func systemDeleteEntities(game *SkirmishGame) {
	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityresult := range game.lifecycleView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if !lifecycleAspect.IsDead() {
			continue
		}

		if lifecycleAspect.onDeath != nil {
			lifecycleAspect.onDeath()
			lifecycleAspect.onDeath = nil
		}

		entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
	}

	game.manager.DisposeEntities(entitiesToRemove...)
}
