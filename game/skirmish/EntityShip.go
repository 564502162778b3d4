package skirmish

import (
	"math"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// NewEntityShip spawns one AI-flown combatant at the given position.
func (game *SkirmishGame) NewEntityShip(position vector.Vector2) (*ecs.Entity, error) {
	spec := game.cfg.Ship

	tuning, err := ship.DeriveSteeringTuning(spec.Mass, spec.Engine)
	if err != nil {
		return nil, err
	}

	entity := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(spec.Radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = spec.Mass / (math.Pi * spec.Radius * spec.Radius)
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(makeBodyDescriptor(bodyKinds.Ship, entity.GetID()))
	body.SetBullet(false)

	sensor := newShipSensor(game, entity.GetID())

	agentCfg := ai.DefaultAgentConfig()
	agentCfg.Nav.Plan.MaxSpeed = spec.MaxSpeed
	agentCfg.Gunner.ProjectileSpeed = spec.ProjectileSpeed
	agentCfg.Tuning = tuning
	agentCfg.Obstacles = sensor
	agentCfg.Visibility = sensor
	agentCfg.Seed = game.rng.Int63()

	agent, err := ai.NewAgent(agentCfg)
	if err != nil {
		return nil, err
	}

	regenWaitTicks := int(spec.ShieldRegenWait * float64(game.cfg.Tps))

	callsign := NewCallsign()
	game.postShipSpawned(entity.GetID(), callsign.GetName())

	return entity.
		AddComponent(game.physicalBodyComponent, (&PhysicalBody{
			radius:         spec.Radius,
			maxSpeed:       spec.MaxSpeed,
			maxTurnRateDeg: spec.MaxTurnRateDeg,
		}).SetBody(body)).
		AddComponent(game.hullComponent, NewHull(spec.MaxHull, spec.MaxShield, spec.ShieldRegenRate, regenWaitTicks)).
		AddComponent(game.armamentComponent, NewArmament(spec, game.cfg.Tps)).
		AddComponent(game.brainComponent, NewBrain(agent, tuning)).
		AddComponent(game.callsignComponent, callsign).
		AddComponent(game.renderComponent, &Render{
			type_:  "ship",
			static: false,
		}).
		AddComponent(game.lifecycleComponent, &Lifecycle{
			tickBirth: game.ticknum,
			onDeath: func() {
				game.postShipDestroyed(entity.GetID())
			},
		}), nil
}
