package skirmish

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

func (game *SkirmishGame) newProjectileBody(kind bodyKind, id ecs.EntityID, position vector.Vector2, velocity vector.Vector2, radius float64) *box2d.B2Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = true
	bodydef.FixedRotation = true
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.LinearVelocity = velocity.ToB2Vec2()

	body := game.PhysicalWorld.CreateBody(&bodydef)
	body.SetLinearDamping(0.0)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 1.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(makeBodyDescriptor(kind, id))
	body.SetBullet(true)

	return body
}

// NewEntityShell fires a ballistic primary round. It flies straight and dies
// on impact or at end of life.
func (game *SkirmishGame) NewEntityShell(ownerid ecs.EntityID, position vector.Vector2, velocity vector.Vector2) *ecs.Entity {
	spec := game.cfg.Ship

	shell := game.manager.NewEntity()
	body := game.newProjectileBody(bodyKinds.Shell, shell.GetID(), position, velocity, spec.ProjectileRadius)

	return shell.
		AddComponent(game.physicalBodyComponent, (&PhysicalBody{
			radius:   spec.ProjectileRadius,
			maxSpeed: spec.ProjectileSpeed,
		}).SetBody(body)).
		AddComponent(game.renderComponent, &Render{
			type_:  "shell",
			static: false,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{
			tickBirth: game.ticknum,
			maxAge:    int(spec.ProjectileLife * float64(game.cfg.Tps)),
		}).
		AddComponent(game.ownedComponent, &Owned{owner: ownerid}).
		AddComponent(game.impactorComponent, &Impactor{
			damage: spec.PrimaryDamage,
		})
}

// NewEntityMissile launches a seeker round. While its target lives, guidance
// re-points its velocity every tick; otherwise it flies out straight.
func (game *SkirmishGame) NewEntityMissile(ownerid ecs.EntityID, targetid ecs.EntityID, position vector.Vector2, velocity vector.Vector2) *ecs.Entity {
	spec := game.cfg.Ship

	missile := game.manager.NewEntity()
	body := game.newProjectileBody(bodyKinds.Missile, missile.GetID(), position, velocity, spec.ProjectileRadius)

	entity := missile.
		AddComponent(game.physicalBodyComponent, (&PhysicalBody{
			radius:   spec.ProjectileRadius,
			maxSpeed: spec.MissileSpeed,
		}).SetBody(body)).
		AddComponent(game.renderComponent, &Render{
			type_:  "missile",
			static: false,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{
			tickBirth: game.ticknum,
			maxAge:    int(spec.MissileLife * float64(game.cfg.Tps)),
		}).
		AddComponent(game.ownedComponent, &Owned{owner: ownerid}).
		AddComponent(game.impactorComponent, &Impactor{
			damage: spec.MissileDamage,
		}).
		AddComponent(game.missileComponent, &Missile{
			target: targetid,
			speed:  spec.MissileSpeed,
		})

	game.postMissileLaunched(ownerid, missile.GetID())

	return entity
}
