package ai

import (
	"math"
	"testing"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ai/brain"
	"github.com/amindell11/astronomical-home-sub002/game/ai/gunner"
	"github.com/amindell11/astronomical-home-sub002/game/ai/nav"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

type openSpace struct{}

func (openSpace) SenseObstacles(origin vector.Vector2, headingDeg float64, spreadDeg float64, rayCount int, maxDist float64) []nav.Obstacle {
	return nil
}

type clearSky struct{}

func (clearSky) SegmentClear(from vector.Vector2, to vector.Vector2) bool { return true }

func testAgentConfig(seed int64) AgentConfig {
	return AgentConfig{
		Brain:  brain.DefaultBrainConfig(),
		Nav:    nav.DefaultNavConfig(),
		Gunner: gunner.DefaultGunnerConfig(),
		Tuning: ship.SteeringTuning{
			MaxForwardAccel: 10,
			MaxReverseAccel: 6,
			MaxStrafeAccel:  4,
			AccelDeadZone:   0.2,
		},
		Obstacles:  openSpace{},
		Visibility: clearSky{},
		Seed:       seed,
	}
}

func calmContext() ship.Context {
	ctx := ship.Context{
		Self:            ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0),
		Health:          1,
		Shield:          1,
		EngagementRange: 100,
	}
	return ctx.Sanitize()
}

func woundedContext() ship.Context {
	ctx := ship.Context{
		Self:   ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0),
		Health: 0.1,
		Shield: 0.1,
		Enemy: &ship.EnemyInfo{
			Kin:    ship.MakeKinematics(vector.MakeVector2(0, 50), vector.MakeVector2(0, -20), 180),
			Health: 1,
			Shield: 1,
			Armed:  true,
		},
		NearbyEnemies:   1,
		IncomingMissile: true,
		EngagementRange: 100,
	}
	return ctx.DeriveEnemyFields()
}

func TestNewAgentRequiresCollaborators(t *testing.T) {
	cfg := testAgentConfig(1)
	cfg.Obstacles = nil

	if _, err := NewAgent(cfg); err == nil {
		t.Fatal("built an agent without an obstacle source")
	}

	cfg = testAgentConfig(1)
	cfg.Visibility = nil

	if _, err := NewAgent(cfg); err == nil {
		t.Fatal("built an agent without a visibility probe")
	}

	cfg = testAgentConfig(1)
	cfg.Tuning.MaxForwardAccel = 0

	if _, err := NewAgent(cfg); err == nil {
		t.Fatal("built an agent with unusable steering tuning")
	}
}

func TestAgentPatrolsWhenCalm(t *testing.T) {
	agent, err := NewAgent(testAgentConfig(7))
	if err != nil {
		t.Fatal(err)
	}

	ctx := calmContext()
	for i := 0; i < 20; i++ {
		agent.Tick(ctx, 0.1)
	}

	if agent.ActiveBehavior() != "patrol" {
		t.Fatalf("calm agent settled on %q, want patrol", agent.ActiveBehavior())
	}

	wp := agent.Navigator().NavigationPoint()
	if !wp.Valid {
		t.Fatal("patrol left no navigation point")
	}

	dist := wp.Pos.Sub(ctx.Self.Pos).Mag()
	if dist > brain.DefaultBrainConfig().PatrolRadius {
		t.Fatalf("patrol waypoint %v beyond the patrol radius", dist)
	}
}

func TestAgentEvadesWhenWounded(t *testing.T) {
	agent, err := NewAgent(testAgentConfig(7))
	if err != nil {
		t.Fatal(err)
	}

	ctx := woundedContext()
	for i := 0; i < 20; i++ {
		agent.Tick(ctx, 0.1)
	}

	if agent.ActiveBehavior() != "evade" {
		t.Fatalf("wounded agent settled on %q, want evade", agent.ActiveBehavior())
	}

	// flight path is the ray from the enemy through self, out to flee distance
	wp := agent.Navigator().NavigationPoint()
	if !wp.Valid {
		t.Fatal("evade left no navigation point")
	}

	want := vector.MakeVector2(0, -brain.DefaultBrainConfig().FleeDistance)
	if wp.Pos.Sub(want).Mag() > 1e-9 {
		t.Fatalf("flee point = %v, want %v", wp.Pos, want)
	}
}

func TestAgentScoresMatchRoster(t *testing.T) {
	agent, err := NewAgent(testAgentConfig(7))
	if err != nil {
		t.Fatal(err)
	}

	names := agent.BehaviorNames()
	wantOrder := []string{"idle", "patrol", "evade", "attack", "orbit", "kite"}

	if len(names) != len(wantOrder) {
		t.Fatalf("roster = %v", names)
	}
	for i, w := range wantOrder {
		if names[i] != w {
			t.Fatalf("roster = %v, want %v", names, wantOrder)
		}
	}

	agent.Tick(calmContext(), 0.1)

	scores := agent.UtilityScores()
	if len(scores) != len(names) {
		t.Fatalf("%d scores for %d behaviors", len(scores), len(names))
	}
	for i, s := range scores {
		if math.IsNaN(s) {
			t.Fatalf("behavior %q scored NaN", names[i])
		}
	}
}

func TestAgentDeterministicAcrossRuns(t *testing.T) {
	a, err := NewAgent(testAgentConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewAgent(testAgentConfig(42))
	if err != nil {
		t.Fatal(err)
	}

	calm := calmContext()
	wounded := woundedContext()

	for i := 0; i < 60; i++ {
		ctx := calm
		if i >= 25 {
			ctx = wounded
		}

		cmdA := a.Tick(ctx, 0.1)
		cmdB := b.Tick(ctx, 0.1)

		if a.ActiveBehavior() != b.ActiveBehavior() {
			t.Fatalf("tick %d: behaviors diverged: %q vs %q", i, a.ActiveBehavior(), b.ActiveBehavior())
		}

		if cmdA != cmdB {
			t.Fatalf("tick %d: commands diverged: %+v vs %+v", i, cmdA, cmdB)
		}
	}
}
