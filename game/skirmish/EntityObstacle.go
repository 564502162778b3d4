package skirmish

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

// NewEntityObstacle places a static circular hazard: an asteroid, a wreck, a
// station chunk. Obstacles block shots and rays.
func (game *SkirmishGame) NewEntityObstacle(position vector.Vector2, radius float64) *ecs.Entity {
	entity := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = 1.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(makeBodyDescriptor(bodyKinds.Obstacle, entity.GetID()))

	return entity.
		AddComponent(game.physicalBodyComponent, (&PhysicalBody{
			radius: radius,
		}).SetBody(body)).
		AddComponent(game.renderComponent, &Render{
			type_:  "obstacle",
			static: true,
		})
}
