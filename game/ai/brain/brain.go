// Package brain is the behavioral layer: six utility-scored behaviors and
// the machine that re-scores them every tick and runs the winner.
package brain

import (
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Behavior is one behavioral mode. Utility must be a pure function of the
// Context: no mutation, no side effects; Enter/Exit reset behavior-local
// working data only.
type Behavior interface {
	Name() string
	Enter(ctx ship.Context)
	Tick(ctx ship.Context, dt float64)
	Exit()
	Utility(ctx ship.Context) float64
}

// BrainConfig groups the behavior tuning shared across the six modes.
type BrainConfig struct {
	MinTimeInState float64 // seconds; hysteresis dwell

	PatrolRadius        float64
	PatrolArriveRadius  float64
	FleeDistance        float64
	KiteDistance        float64
	CloseRange          float64 // inside this, Attack force-faces the intercept
	ClosingFastSpeed    float64
	OrbitLeadTime       float64
	OrbitFlipChance     float64 // probability per second of flipping direction
	IdleBaseScore       float64
}

func DefaultBrainConfig() BrainConfig {
	return BrainConfig{
		MinTimeInState:     1.0,
		PatrolRadius:       120,
		PatrolArriveRadius: 8,
		FleeDistance:       80,
		KiteDistance:       45,
		CloseRange:         30,
		ClosingFastSpeed:   15,
		OrbitLeadTime:      0.6,
		OrbitFlipChance:    0.05,
		IdleBaseScore:      0.05,
	}
}
