package skirmish

import (
	"github.com/bytearena/ecs"
)

// systemHealth applies impactor damage from this tick's collisions, runs
// shield regeneration, and marks destroyed ships for disposal.
func systemHealth(game *SkirmishGame, collisions []collision, dt float64) {
	for _, coll := range collisions {
		game.applyImpact(coll.entityIDA, coll.entityIDB)
		game.applyImpact(coll.entityIDB, coll.entityIDA)
	}

	for _, entityresult := range game.shipsView.Get() {
		hullAspect := game.CastHull(entityresult.Components[game.hullComponent])
		hullAspect.Regenerate(game.ticknum, dt)

		if !hullAspect.IsDestroyed() {
			continue
		}

		lifecycleQr := game.getEntity(entityresult.Entity.GetID(), game.lifecycleComponent)
		if lifecycleQr == nil {
			continue
		}

		game.CastLifecycle(lifecycleQr.Components[game.lifecycleComponent]).SetDeath(game.ticknum)
	}
}

func (game *SkirmishGame) applyImpact(victimID ecs.EntityID, impactorID ecs.EntityID) {
	victimResult := game.getEntity(victimID, game.hullComponent)
	if victimResult == nil {
		return
	}

	impactorResult := game.getEntity(impactorID, game.impactorComponent)
	if impactorResult == nil {
		return
	}

	hullAspect := game.CastHull(victimResult.Components[game.hullComponent])
	impactorAspect := game.CastImpactor(impactorResult.Components[game.impactorComponent])

	hullAspect.Damage(impactorAspect.GetDamage(), game.ticknum)
}
