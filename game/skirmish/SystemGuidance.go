package skirmish

import (
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
)

// systemGuidance re-points every locked missile at its target. A missile
// whose target died keeps its last velocity and flies out straight.
func systemGuidance(game *SkirmishGame) {
	for _, entityresult := range game.missilesView.Get() {
		missileAspect := game.CastMissile(entityresult.Components[game.missileComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		if missileAspect.GetTarget() == 0 {
			continue
		}

		targetResult := game.getEntity(missileAspect.GetTarget(), game.physicalBodyComponent)
		if targetResult == nil {
			continue
		}

		targetPhysical := game.CastPhysicalBody(targetResult.Components[game.physicalBodyComponent])

		toTarget := targetPhysical.GetPosition().Sub(physicalAspect.GetPosition())
		if toTarget.IsNull() {
			continue
		}

		dir := toTarget.Normalize()
		physicalAspect.
			SetVelocity(dir.MultScalar(missileAspect.GetSpeed())).
			SetHeadingDeg(trigo.VectorHeading(dir))
	}
}
