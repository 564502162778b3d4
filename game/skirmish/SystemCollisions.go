package skirmish

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

type collision struct {
	entityIDA ecs.EntityID
	entityIDB ecs.EntityID
	point     vector.Vector2
}

// systemCollisions drains the contact listener into typed collision pairs and
// parks every involved projectile at its impact point, dead.
func systemCollisions(game *SkirmishGame) []collision {
	collisions := make([]collision, 0)

	for _, contact := range game.collisionListener.PopCollisions() {
		descriptorA, ok := contact.GetFixtureA().GetBody().GetUserData().(bodyDescriptor)
		if !ok {
			continue
		}

		descriptorB, ok := contact.GetFixtureB().GetBody().GetUserData().(bodyDescriptor)
		if !ok {
			continue
		}

		worldManifold := box2d.MakeB2WorldManifold()
		contact.GetWorldManifold(&worldManifold)
		point := vector.FromB2Vec2(worldManifold.Points[0])

		collisions = append(collisions, collision{
			entityIDA: descriptorA.ID,
			entityIDB: descriptorB.ID,
			point:     point,
		})

		game.settleProjectile(descriptorA, point)
		game.settleProjectile(descriptorB, point)
	}

	return collisions
}

func (game *SkirmishGame) settleProjectile(descriptor bodyDescriptor, point vector.Vector2) {
	if descriptor.Kind != bodyKinds.Shell && descriptor.Kind != bodyKinds.Missile {
		return
	}

	entityresult := game.getEntity(descriptor.ID, game.physicalBodyComponent, game.lifecycleComponent)
	if entityresult == nil {
		return
	}

	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
	lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])

	physicalAspect.
		SetVelocity(vector.MakeNullVector2()).
		SetPosition(point)

	lifecycleAspect.SetDeath(game.ticknum)
}
