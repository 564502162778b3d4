package nav

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// ObstacleSource answers the navigator's forward ray-fan scan. Implemented by
// the host on its spatial index; results are valid for the current tick only.
type ObstacleSource interface {
	SenseObstacles(origin vector.Vector2, headingDeg float64, spreadDeg float64, rayCount int, maxDist float64) []Obstacle
}

// Waypoint is the navigator's current goal: a point, the velocity the goal is
// moving at, and whether it is set at all.
type Waypoint struct {
	Pos   vector.Vector2
	Vel   vector.Vector2
	Valid bool
}

// NavConfig tunes the navigator around the planner/pilot pair.
type NavConfig struct {
	Plan PlanConfig

	RayCount      int
	RaySpreadDeg  float64
	SmoothingGain float64 // 1/s; 0 disables smoothing
	OrbitGain     float64 // radius correction strength for orbit waypoints

	UseTiltedHeading bool
}

func DefaultNavConfig() NavConfig {
	return NavConfig{
		Plan: PlanConfig{
			ArrivalRadius: 5,
			MaxSpeed:      40,
			AvoidRadius:   4,
			LookAheadTime: 1.5,
			SafeMargin:    2,
		},
		RayCount:         5,
		RaySpreadDeg:     90,
		SmoothingGain:    8,
		OrbitGain:        0.5,
		UseTiltedHeading: true,
	}
}

// Navigator owns the waypoint and facing override, runs obstacle sensing and
// the planner/pilot pair each tick, and smooths the resulting commands.
type Navigator struct {
	cfg     NavConfig
	tuning  ship.SteeringTuning
	sensor  ObstacleSource
	debugOn bool

	waypoint Waypoint

	facingOverrideDeg float64
	hasFacingOverride bool
	avoidanceEnabled  bool

	smoothedThrust float64
	smoothedStrafe float64

	lastPlan Plan
}

func NewNavigator(cfg NavConfig, tuning ship.SteeringTuning, sensor ObstacleSource) *Navigator {
	return &Navigator{
		cfg:    cfg,
		tuning: tuning,
		sensor: sensor,
	}
}

func (nav *Navigator) SetNavigationPoint(pos vector.Vector2, vel vector.Vector2, avoid bool) {
	nav.waypoint = Waypoint{Pos: pos, Vel: vel, Valid: true}
	nav.avoidanceEnabled = avoid
}

func (nav *Navigator) ClearNavigationPoint() {
	nav.waypoint = Waypoint{}
}

func (nav *Navigator) HasNavigationPoint() bool {
	return nav.waypoint.Valid
}

func (nav *Navigator) NavigationPoint() Waypoint {
	return nav.waypoint
}

// SetFacingOverride forces the ship to face a direction regardless of where
// it is steering; thrust and strafe are unaffected.
func (nav *Navigator) SetFacingOverride(headingDeg float64) {
	nav.facingOverrideDeg = trigo.NormalizeDeg(headingDeg)
	nav.hasFacingOverride = true
}

func (nav *Navigator) ClearFacingOverride() {
	nav.hasFacingOverride = false
}

// EnableDebug makes subsequent ticks retain the planner debug bundle.
func (nav *Navigator) EnableDebug(on bool) {
	nav.debugOn = on
}

func (nav *Navigator) LastPlan() Plan {
	return nav.lastPlan
}

// Tick produces this tick's steering command. Without a valid waypoint the
// command is neutral: no thrust, no strafe, heading held.
func (nav *Navigator) Tick(kin ship.Kinematics, dt float64) ship.Command {
	if !nav.waypoint.Valid {
		nav.smoothedThrust = 0
		nav.smoothedStrafe = 0
		nav.lastPlan = Plan{}
		return ship.MakeNeutralCommand()
	}

	var obstacles []Obstacle
	if nav.avoidanceEnabled && nav.sensor != nil {
		obstacles = nav.sensor.SenseObstacles(
			kin.Pos,
			kin.HeadingDeg,
			nav.cfg.RaySpreadDeg,
			nav.cfg.RayCount,
			nav.brakingDistance(kin),
		)
	}

	plan := ComputePlan(kin, nav.waypoint.Pos, nav.waypoint.Vel, obstacles, nav.cfg.Plan, nav.tuning, nav.debugOn)
	nav.lastPlan = plan

	piloted := MapToCommand(PilotRequest{
		Kin:              kin,
		DesiredVel:       plan.DesiredVelocity,
		DesiredAccel:     plan.DesiredAccel,
		FallbackDir:      nav.waypoint.Pos.Sub(kin.Pos),
		MaxSpeed:         nav.cfg.Plan.MaxSpeed,
		Tuning:           nav.tuning,
		UseTiltedHeading: nav.cfg.UseTiltedHeading,
	})

	nav.smoothedThrust = smooth(nav.smoothedThrust, piloted.Thrust, nav.cfg.SmoothingGain, dt)
	nav.smoothedStrafe = smooth(nav.smoothedStrafe, piloted.Strafe, nav.cfg.SmoothingGain, dt)

	heading := piloted.HeadingDeg
	if nav.hasFacingOverride {
		heading = nav.facingOverrideDeg
	}

	return ship.Command{
		Thrust:           nav.smoothedThrust,
		Strafe:           nav.smoothedStrafe,
		RotateToHeading:  true,
		TargetHeadingDeg: heading,
	}
}

// first-order exponential smoothing; gain 0 passes raw through
func smooth(current float64, raw float64, gain float64, dt float64) float64 {
	if gain <= 0 {
		return raw
	}

	alpha := gain * dt
	if alpha > 1 {
		alpha = 1
	}

	return current + (raw-current)*alpha
}

// distance needed to cancel the current speed with the forward thruster,
// padded by the avoidance clearance
func (nav *Navigator) brakingDistance(kin ship.Kinematics) float64 {
	speed := kin.Speed()
	braking := 0.0
	if nav.tuning.MaxForwardAccel > 0 {
		braking = speed * speed / (2 * nav.tuning.MaxForwardAccel)
	}

	return braking + nav.cfg.Plan.AvoidRadius + nav.cfg.Plan.SafeMargin + nav.cfg.Plan.MaxSpeed*nav.cfg.Plan.LookAheadTime
}

// ComputeOrbitPoint produces a moving waypoint on a circle around center:
// the ideal on-circle position, led along the orbit tangent by leadTime, and
// corrected toward the requested radius when the ship drifts off the band.
func (nav *Navigator) ComputeOrbitPoint(
	center vector.Vector2,
	selfPos vector.Vector2,
	selfVel vector.Vector2,
	clockwise bool,
	radius float64,
	leadTime float64,
) Waypoint {
	radial := selfPos.Sub(center)
	dist := radial.Mag()

	var radialDir vector.Vector2
	if dist > 0 {
		radialDir = radial.DivScalar(dist)
	} else {
		// sitting on the center; any radial works, pick the nose
		radialDir = trigo.HeadingVector(0)
	}

	var tangent vector.Vector2
	if clockwise {
		tangent = radialDir.OrthogonalClockwise()
	} else {
		tangent = radialDir.OrthogonalCounterClockwise()
	}

	orbitSpeed := math.Max(selfVel.Mag(), nav.cfg.Plan.MaxSpeed*0.5)

	ideal := center.Add(radialDir.MultScalar(radius))
	lead := tangent.MultScalar(orbitSpeed * leadTime)
	correction := radialDir.MultScalar((radius - dist) * nav.cfg.OrbitGain)

	return Waypoint{
		Pos:   ideal.Add(lead).Add(correction),
		Vel:   tangent.MultScalar(orbitSpeed),
		Valid: true,
	}
}
