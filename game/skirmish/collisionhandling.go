package skirmish

import (
	"github.com/bytearena/box2d"
)

type collisionFilter struct { /* implements box2d.B2ContactFilterInterface */
	game *SkirmishGame
}

func newCollisionFilter(game *SkirmishGame) *collisionFilter {
	return &collisionFilter{game: game}
}

// ShouldCollide keeps a projectile from hitting the ship that fired it;
// everything else collides.
func (filter *collisionFilter) ShouldCollide(fixtureA *box2d.B2Fixture, fixtureB *box2d.B2Fixture) bool {
	descriptorA, ok := fixtureA.GetBody().GetUserData().(bodyDescriptor)
	if !ok {
		return false
	}

	descriptorB, ok := fixtureB.GetBody().GetUserData().(bodyDescriptor)
	if !ok {
		return false
	}

	aIsProjectile := descriptorA.Kind == bodyKinds.Shell || descriptorA.Kind == bodyKinds.Missile
	bIsProjectile := descriptorB.Kind == bodyKinds.Shell || descriptorB.Kind == bodyKinds.Missile

	if !aIsProjectile && !bIsProjectile {
		return true
	}

	if aIsProjectile && !filter.mayHit(descriptorA, descriptorB) {
		return false
	}

	if bIsProjectile && !filter.mayHit(descriptorB, descriptorA) {
		return false
	}

	return true
}

func (filter *collisionFilter) mayHit(projectile bodyDescriptor, other bodyDescriptor) bool {
	if other.Kind != bodyKinds.Ship {
		return true
	}

	projectileResult := filter.game.getEntity(projectile.ID, filter.game.ownedComponent)
	if projectileResult == nil {
		return false
	}

	ownedAspect := filter.game.CastOwned(projectileResult.Components[filter.game.ownedComponent])

	return ownedAspect.GetOwner() != other.ID
}

type collisionListener struct { /* implements box2d.B2ContactListenerInterface */
	game            *SkirmishGame
	collisionbuffer []box2d.B2ContactInterface
}

func newCollisionListener(game *SkirmishGame) *collisionListener {
	return &collisionListener{game: game}
}

func (listener *collisionListener) PopCollisions() []box2d.B2ContactInterface {
	defer func() { listener.collisionbuffer = make([]box2d.B2ContactInterface, 0) }()
	return listener.collisionbuffer
}

func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) {
	listener.collisionbuffer = append(listener.collisionbuffer, contact)
}

func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) {}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}
