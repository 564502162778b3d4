// Package ai assembles the per-ship control loop: one Navigator, one Gunner
// and one behavior machine, driven by a single Tick per simulation step.
package ai

import (
	"math/rand"

	bettererrors "github.com/xtuc/better-errors"

	"github.com/amindell11/astronomical-home-sub002/game/ai/brain"
	"github.com/amindell11/astronomical-home-sub002/game/ai/gunner"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// AgentConfig wires one agent. Sensor and probe come from the host arena.
type AgentConfig struct {
	Brain  brain.BrainConfig
	Nav    nav.NavConfig
	Gunner gunner.GunnerConfig
	Tuning ship.SteeringTuning

	Obstacles  nav.ObstacleSource
	Visibility gunner.VisibilityProbe

	Seed int64
}

// DefaultAgentConfig carries the stock tuning for every layer; callers still
// have to provide Tuning, Obstacles, Visibility and Seed.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Brain:  brain.DefaultBrainConfig(),
		Nav:    nav.DefaultNavConfig(),
		Gunner: gunner.DefaultGunnerConfig(),
	}
}

// Agent is the per-ship AI unit. All its mutable state is owned exclusively
// by this instance; ticking different agents concurrently is safe as long as
// each agent is ticked from one goroutine at a time.
type Agent struct {
	machine   *brain.Machine
	navigator *nav.Navigator
	guns      *gunner.Gunner

	frame int
}

// NewAgent validates the wiring and builds the behavior roster in its fixed
// declaration order: idle, patrol, evade, attack, orbit, kite. A missing
// collaborator is a construction-time error, never a per-tick one.
func NewAgent(cfg AgentConfig) (*Agent, error) {
	if cfg.Obstacles == nil {
		return nil, bettererrors.
			New("Cannot build agent").
			SetContext("obstacles", "obstacle source is required")
	}

	if cfg.Visibility == nil {
		return nil, bettererrors.
			New("Cannot build agent").
			SetContext("visibility", "visibility probe is required")
	}

	if cfg.Tuning.MaxForwardAccel <= 0 || cfg.Tuning.MaxReverseAccel <= 0 || cfg.Tuning.MaxStrafeAccel <= 0 {
		return nil, bettererrors.
			New("Cannot build agent").
			SetContext("tuning", "steering tuning must be derived before wiring")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	navigator := nav.NewNavigator(cfg.Nav, cfg.Tuning, cfg.Obstacles)
	guns := gunner.NewGunner(cfg.Gunner, cfg.Visibility)

	machine := brain.NewMachine(
		cfg.Brain.MinTimeInState,
		brain.NewIdle(cfg.Brain, navigator, guns),
		brain.NewPatrol(cfg.Brain, navigator, rng),
		brain.NewEvade(cfg.Brain, navigator, rng),
		brain.NewAttack(cfg.Brain, navigator, guns),
		brain.NewOrbit(cfg.Brain, navigator, guns, rng),
		brain.NewKite(cfg.Brain, navigator, guns),
	)

	return &Agent{
		machine:   machine,
		navigator: navigator,
		guns:      guns,
	}, nil
}

// Tick runs one full decision step: behavior switching and ticking, then
// steering, then fire arbitration. ctx must be freshly built for this tick.
func (a *Agent) Tick(ctx ship.Context, dt float64) ship.Command {
	a.frame++

	a.machine.Update(ctx, dt)

	cmd := a.navigator.Tick(ctx.Self, dt)

	fire := a.guns.DecideFire(ctx, a.frame)
	cmd.FirePrimary = fire.Primary
	cmd.FireSecondary = fire.Secondary

	return cmd
}

// Read-only accessors for observation/telemetry layers.

func (a *Agent) ActiveBehavior() string {
	return a.machine.ActiveName()
}

func (a *Agent) BehaviorNames() []string {
	return a.machine.BehaviorNames()
}

func (a *Agent) UtilityScores() []float64 {
	return a.machine.Scores()
}

func (a *Agent) Navigator() *nav.Navigator {
	return a.navigator
}

func (a *Agent) Gunner() *gunner.Gunner {
	return a.guns
}
