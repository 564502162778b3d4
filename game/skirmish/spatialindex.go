package skirmish

import (
	"math"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"

	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
)

// spatialEntry is one body snapshotted into the r-tree for this tick.
type spatialEntry struct {
	id     ecs.EntityID
	kind   bodyKind
	owner  ecs.EntityID
	pos    vector.Vector2
	vel    vector.Vector2
	radius float64
	rect   rtreego.Rect
}

func (e *spatialEntry) Bounds() rtreego.Rect {
	return e.rect
}

// spatialIndex snapshots every physical body into an r-tree once per tick, so
// per-ship sensing never walks the whole entity list.
type spatialIndex struct {
	game *SkirmishGame
	tree *rtreego.Rtree
}

func newSpatialIndex(game *SkirmishGame) *spatialIndex {
	return &spatialIndex{
		game: game,
		tree: rtreego.NewTree(2, 25, 50),
	}
}

func (index *spatialIndex) rebuild() {
	spatials := make([]rtreego.Spatial, 0)

	for _, entityresult := range index.game.physicalView.Get() {
		physicalAspect := index.game.CastPhysicalBody(entityresult.Components[index.game.physicalBodyComponent])

		descriptor, ok := physicalAspect.GetBody().GetUserData().(bodyDescriptor)
		if !ok {
			continue
		}

		pos := physicalAspect.GetPosition()
		radius := physicalAspect.GetRadius()

		rect, err := rtreego.NewRect(
			rtreego.Point{pos.GetX() - radius, pos.GetY() - radius},
			[]float64{radius * 2, radius * 2},
		)
		if err != nil {
			continue
		}

		entry := &spatialEntry{
			id:     descriptor.ID,
			kind:   descriptor.Kind,
			pos:    pos,
			vel:    physicalAspect.GetVelocity(),
			radius: radius,
			rect:   rect,
		}

		if ownedResult := index.game.getEntity(descriptor.ID, index.game.ownedComponent); ownedResult != nil {
			entry.owner = index.game.CastOwned(ownedResult.Components[index.game.ownedComponent]).GetOwner()
		}

		spatials = append(spatials, entry)
	}

	index.tree = rtreego.NewTree(2, 25, 50, spatials...)
}

// searchAround returns every indexed entry whose bounding box intersects the
// square of the given half-extent around center.
func (index *spatialIndex) searchAround(center vector.Vector2, halfExtent float64) []*spatialEntry {
	bb, err := rtreego.NewRect(
		rtreego.Point{center.GetX() - halfExtent, center.GetY() - halfExtent},
		[]float64{halfExtent * 2, halfExtent * 2},
	)
	if err != nil {
		return nil
	}

	matches := index.tree.SearchIntersect(bb)

	entries := make([]*spatialEntry, 0, len(matches))
	for _, match := range matches {
		entries = append(entries, match.(*spatialEntry))
	}

	return entries
}

// shipSensor is one ship's window onto the index and the physics world. It is
// what the AI agent receives as its obstacle source and visibility probe.
type shipSensor struct {
	game   *SkirmishGame
	selfID ecs.EntityID
}

func newShipSensor(game *SkirmishGame, selfID ecs.EntityID) *shipSensor {
	return &shipSensor{game: game, selfID: selfID}
}

// SenseObstacles reports the solid bodies inside the forward cone: other
// ships and obstacles, never projectiles. A body sitting on top of the sensor
// is reported regardless of bearing.
func (sensor *shipSensor) SenseObstacles(origin vector.Vector2, headingDeg float64, spreadDeg float64, rayCount int, maxDist float64) []nav.Obstacle {
	obstacles := make([]nav.Obstacle, 0)

	for _, entry := range sensor.game.spatial.searchAround(origin, maxDist) {
		if entry.id == sensor.selfID {
			continue
		}

		if entry.kind != bodyKinds.Ship && entry.kind != bodyKinds.Obstacle {
			continue
		}

		toEntry := entry.pos.Sub(origin)
		dist := toEntry.Mag()

		if dist-entry.radius > maxDist {
			continue
		}

		if dist > entry.radius*2 {
			bearing := trigo.SignedDeltaDeg(headingDeg, trigo.VectorHeading(toEntry))
			if math.Abs(bearing) > spreadDeg/2 {
				continue
			}
		}

		obstacles = append(obstacles, nav.Obstacle{
			Pos:    entry.pos,
			Vel:    entry.vel,
			Radius: entry.radius,
		})
	}

	return obstacles
}

// SegmentClear raycasts the physics world; only obstacle bodies occlude.
func (sensor *shipSensor) SegmentClear(from vector.Vector2, to vector.Vector2) bool {
	if to.Sub(from).IsNull() {
		return true
	}

	occluded := false

	sensor.game.PhysicalWorld.RayCast(
		func(fixture *box2d.B2Fixture, point box2d.B2Vec2, normal box2d.B2Vec2, fraction float64) float64 {
			descriptor, ok := fixture.GetBody().GetUserData().(bodyDescriptor)
			if !ok {
				return 1.0 // continue the ray
			}

			if descriptor.Kind == bodyKinds.Obstacle {
				occluded = true
				return 0.0 // terminate the ray
			}

			return 1.0 // continue the ray
		},
		from.ToB2Vec2(),
		to.ToB2Vec2(),
	)

	return !occluded
}
