package nav

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Obstacle is one sensed body the planner must steer around.
type Obstacle struct {
	Pos    vector.Vector2
	Vel    vector.Vector2
	Radius float64
}

// PlanConfig carries the tuning knobs of the seek/arrive + avoidance pass.
type PlanConfig struct {
	ArrivalRadius float64
	MaxSpeed      float64
	AvoidRadius   float64 // own clearance radius
	LookAheadTime float64 // seconds of path projected for avoidance
	SafeMargin    float64
}

// Plan is the planner output consumed by the pilot.
type Plan struct {
	DesiredVelocity vector.Vector2
	DesiredAccel    vector.Vector2

	Debug *PlanDebug
}

// PlanDebug is a diagnostics bundle; filling it must never change the plan.
type PlanDebug struct {
	FuturePos    vector.Vector2
	SeekVelocity vector.Vector2
	AvoidVector  vector.Vector2
	Contributors []Obstacle
}

const repulsionEpsilon = 1e-6

// ComputePlan maps the current kinematics and a (possibly moving) goal to a
// desired velocity and acceleration.
//
// Seek/arrive: the desired relative speed is capped by sqrt(2*a*d), the
// largest speed the forward thruster can still cancel over the remaining
// distance, which brakes smoothly into the goal without overshoot.
//
// Avoidance: every obstacle projected LookAheadTime into the future that
// comes within the combined clearance of the projected path contributes a
// repulsion weighted by 1/distSq. The avoidance velocity is added un-clamped:
// dodging is allowed to exceed nominal max speed.
func ComputePlan(
	kin ship.Kinematics,
	goalPos vector.Vector2,
	goalVel vector.Vector2,
	obstacles []Obstacle,
	cfg PlanConfig,
	tuning ship.SteeringTuning,
	wantDebug bool,
) Plan {
	toGoal := goalPos.Sub(kin.Pos)
	dist := toGoal.Mag()

	var seekVel vector.Vector2
	if dist > 0 {
		stoppableSpeed := math.Sqrt(2 * tuning.MaxForwardAccel * dist)
		relSpeed := math.Min(stoppableSpeed, cfg.MaxSpeed)
		seekVel = goalVel.Add(toGoal.DivScalar(dist).MultScalar(relSpeed)).Limit(cfg.MaxSpeed)
	} else {
		// on top of the goal already; match its velocity
		seekVel = goalVel.Limit(cfg.MaxSpeed)
	}

	futurePos := kin.Pos.Add(kin.Vel.MultScalar(cfg.LookAheadTime))

	repulsion := vector.MakeNullVector2()
	totalWeight := 0.0
	var contributors []Obstacle

	for _, ob := range obstacles {
		futureOb := ob.Pos.Add(ob.Vel.MultScalar(cfg.LookAheadTime))

		closest := trigo.ClosestPointOnSegment(futureOb, kin.Pos, futurePos)
		away := closest.Sub(futureOb)
		distSq := away.MagSq()

		clearance := cfg.AvoidRadius + ob.Radius + cfg.SafeMargin
		if distSq >= clearance*clearance {
			continue
		}

		if distSq < repulsionEpsilon {
			// obstacle dead on the path; repel straight back toward self
			away = kin.Pos.Sub(futureOb)
			if away.IsNull() {
				away = kin.Forward().OrthogonalClockwise()
			}
		}

		weight := 1.0 / math.Max(distSq, repulsionEpsilon)
		repulsion = repulsion.Add(away.Normalize().MultScalar(weight))
		totalWeight += weight

		if wantDebug {
			contributors = append(contributors, ob)
		}
	}

	avoidVel := vector.MakeNullVector2()
	if totalWeight > 0 {
		avoidVel = repulsion.DivScalar(totalWeight).MultScalar(cfg.MaxSpeed)
	}

	desiredVel := seekVel.Add(avoidVel)

	plan := Plan{
		DesiredVelocity: desiredVel,
		DesiredAccel:    desiredVel.Sub(kin.Vel),
	}

	if wantDebug {
		plan.Debug = &PlanDebug{
			FuturePos:    futurePos,
			SeekVelocity: seekVel,
			AvoidVector:  avoidVel,
			Contributors: contributors,
		}
	}

	return plan
}
