// Package skirmish hosts the simulation the AI cores fly in: an ecs world
// over a box2d physics step, with sensing, steering, armament and damage
// systems run in a fixed order every tick.
package skirmish

import (
	"math/rand"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"
)

type SkirmishGame struct {
	cfg     ArenaConfig
	ticknum int
	rng     *rand.Rand

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	hullComponent         *ecs.Component
	armamentComponent     *ecs.Component
	brainComponent        *ecs.Component
	callsignComponent     *ecs.Component
	renderComponent       *ecs.Component
	ownedComponent        *ecs.Component
	impactorComponent     *ecs.Component
	lifecycleComponent    *ecs.Component
	missileComponent      *ecs.Component

	shipsView      *ecs.View
	brainsView     *ecs.View
	physicalView   *ecs.View
	renderableView *ecs.View
	missilesView   *ecs.View
	lifecycleView  *ecs.View

	PhysicalWorld     *box2d.B2World
	collisionListener *collisionListener

	spatial *spatialIndex
}

func NewSkirmishGame(cfg ArenaConfig) *SkirmishGame {
	manager := ecs.NewManager()

	game := &SkirmishGame{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		hullComponent:         manager.NewComponent(),
		armamentComponent:     manager.NewComponent(),
		brainComponent:        manager.NewComponent(),
		callsignComponent:     manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
		ownedComponent:        manager.NewComponent(),
		impactorComponent:     manager.NewComponent(),
		lifecycleComponent:    manager.NewComponent(),
		missileComponent:      manager.NewComponent(),
	}

	// top-down simulation, no gravity
	gravity := box2d.MakeB2Vec2(0.0, 0.0)
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.physicalView = manager.CreateView(game.physicalBodyComponent)

	game.shipsView = manager.CreateView(
		game.physicalBodyComponent,
		game.hullComponent,
		game.armamentComponent,
	)

	game.brainsView = manager.CreateView(
		game.brainComponent,
		game.physicalBodyComponent,
		game.hullComponent,
		game.armamentComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.physicalBodyComponent,
	)

	game.missilesView = manager.CreateView(
		game.missileComponent,
		game.physicalBodyComponent,
	)

	game.lifecycleView = manager.CreateView(
		game.lifecycleComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
	})

	game.collisionListener = newCollisionListener(game)
	game.PhysicalWorld.SetContactListener(game.collisionListener)
	game.PhysicalWorld.SetContactFilter(newCollisionFilter(game))

	game.spatial = newSpatialIndex(game)

	return game
}

func (game *SkirmishGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *SkirmishGame) Tick() int {
	return game.ticknum
}

func (game *SkirmishGame) Config() ArenaConfig {
	return game.cfg
}

// Step advances the whole arena by one tick. The system order is fixed:
// perception must see last tick's world, steering must consume this tick's
// commands, and disposal must run after box2d has finished touching bodies.
func (game *SkirmishGame) Step(dt float64) {
	game.ticknum++

	game.spatial.rebuild()

	systemSense(game)
	systemThink(game, dt)
	systemSteering(game, dt)
	systemArmament(game, dt)
	systemGuidance(game)

	game.PhysicalWorld.Step(
		dt,
		8, // velocityIterations; default 8 in the box2d testbed
		3, // positionIterations; default 3 in the box2d testbed
	)

	collisions := systemCollisions(game)
	systemHealth(game, collisions, dt)
	systemLifecycle(game)
	systemDeleteEntities(game)
}
