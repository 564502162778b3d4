package skirmish

import (
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// ArenaConfig describes one skirmish: the play field, the simulation rate and
// the hull everybody flies.
type ArenaConfig struct {
	Width  float64 // meters
	Height float64 // meters
	Tps    int     // simulation ticks per second

	Seed int64 // master seed; per-ship seeds are derived from it

	Ship ShipSpec
}

// ShipSpec is the common hull every combatant is built from.
type ShipSpec struct {
	Radius float64
	Mass   float64
	Engine ship.EngineSpec

	MaxSpeed       float64
	MaxTurnRateDeg float64 // deg/s

	MaxHull         float64
	MaxShield       float64
	ShieldRegenRate float64 // points/s once the regen delay has passed
	ShieldRegenWait float64 // seconds without a hit before regen starts

	SenseRadius     float64 // how far the ship detects other hulls
	EngagementRange float64

	PrimaryDamage    float64
	PrimaryHeatCost  float64
	PrimaryCooling   float64 // heat/s dissipated
	PrimaryRate      float64 // shots/s ceiling
	ProjectileSpeed  float64
	ProjectileRadius float64
	ProjectileLife   float64 // seconds

	MissileDamage   float64
	MissileSpeed    float64
	MissileAmmo     int
	MissileLife     float64 // seconds
	MissileLockTime float64 // seconds in the lock cone before Locked
	MissileLockCone float64 // deg half-angle of the seeker cone
	MissileCooldown float64 // seconds after launch before the seeker rearms
}

func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Width:  400,
		Height: 400,
		Tps:    20,
		Seed:   1,
		Ship: ShipSpec{
			Radius: 2,
			Mass:   1,
			Engine: ship.EngineSpec{
				ForwardThrust: 30,
				ReverseThrust: 18,
				StrafeThrust:  12,
			},
			MaxSpeed:       40,
			MaxTurnRateDeg: 180,

			MaxHull:         100,
			MaxShield:       50,
			ShieldRegenRate: 8,
			ShieldRegenWait: 3,

			SenseRadius:     120,
			EngagementRange: 100,

			PrimaryDamage:    6,
			PrimaryHeatCost:  0.12,
			PrimaryCooling:   0.5,
			PrimaryRate:      4,
			ProjectileSpeed:  80,
			ProjectileRadius: 0.3,
			ProjectileLife:   3,

			MissileDamage:   25,
			MissileSpeed:    50,
			MissileAmmo:     4,
			MissileLife:     6,
			MissileLockTime: 1.5,
			MissileLockCone: 30,
			MissileCooldown: 3,
		},
	}
}
