package skirmish

import (
	"math"

	"github.com/bytearena/ecs"

	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// systemSense rebuilds every brain's context from the world as it stands at
// the start of the tick: nearest hostile, crowd counts, line of sight and
// incoming seekers.
func systemSense(game *SkirmishGame) {
	spec := game.cfg.Ship

	for _, entityresult := range game.brainsView.Get() {
		brainAspect := game.CastBrain(entityresult.Components[game.brainComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		hullAspect := game.CastHull(entityresult.Components[game.hullComponent])
		armamentAspect := game.CastArmament(entityresult.Components[game.armamentComponent])

		selfID := entityresult.Entity.GetID()
		kin := physicalAspect.Kinematics()

		ctx := ship.Context{
			Self:            kin,
			Health:          hullAspect.HullFraction(),
			Shield:          hullAspect.ShieldFraction(),
			WeaponHeat:      armamentAspect.GetHeat(),
			MissileAmmo:     armamentAspect.GetMissileAmmo(),
			MissileLock:     armamentAspect.GetLockState(),
			EngagementRange: spec.EngagementRange,
		}

		nearby := game.spatial.searchAround(kin.Pos, spec.SenseRadius)

		var enemyID ecs.EntityID
		enemyDistSq := math.Inf(1)

		for _, entry := range nearby {
			if entry.id == selfID {
				continue
			}

			switch entry.kind {
			case bodyKinds.Ship:
				distSq := entry.pos.Sub(kin.Pos).MagSq()
				if distSq > spec.SenseRadius*spec.SenseRadius {
					continue
				}

				ctx.NearbyEnemies++
				if distSq < enemyDistSq {
					enemyDistSq = distSq
					enemyID = entry.id
				}

			case bodyKinds.Missile:
				if entry.owner == selfID {
					continue
				}

				toSelf := kin.Pos.Sub(entry.pos)
				if toSelf.IsNull() || entry.vel.IsNull() {
					continue
				}

				approach := trigo.SignedDeltaDeg(trigo.VectorHeading(entry.vel), trigo.VectorHeading(toSelf))
				if math.Abs(approach) <= 25 {
					ctx.IncomingMissile = true
				}
			}
		}

		if enemyID != 0 {
			ctx.Enemy = game.senseEnemy(enemyID)
		}

		brainAspect.SetEnemyID(enemyID)

		ctx = ctx.DeriveEnemyFields()

		if ctx.HasEnemy() {
			sensor := newShipSensor(game, selfID)
			ctx.HasLOS = sensor.SegmentClear(kin.Pos, ctx.Enemy.Kin.Pos)
		}

		brainAspect.SetContext(ctx)
	}
}

func (game *SkirmishGame) senseEnemy(enemyID ecs.EntityID) *ship.EnemyInfo {
	enemyResult := game.getEntity(enemyID,
		game.physicalBodyComponent,
		game.hullComponent,
		game.armamentComponent,
	)
	if enemyResult == nil {
		return nil
	}

	enemyPhysical := game.CastPhysicalBody(enemyResult.Components[game.physicalBodyComponent])
	enemyHull := game.CastHull(enemyResult.Components[game.hullComponent])
	enemyArmament := game.CastArmament(enemyResult.Components[game.armamentComponent])

	return &ship.EnemyInfo{
		Kin:    enemyPhysical.Kinematics(),
		Health: enemyHull.HullFraction(),
		Shield: enemyHull.ShieldFraction(),
		Armed:  enemyArmament.GetHeat() < 1 || enemyArmament.GetMissileAmmo() > 0,
	}
}
