package skirmish

import (
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Armament owns the weapon state the AI only reads: primary heat and rate of
// fire, the missile magazine, and the seeker lock progression.
type Armament struct {
	heat         float64
	heatPerShot  float64
	coolingRate  float64 // heat/s
	shotCooldown int     // ticks between primary shots
	lastShotTick int

	missileAmmo     int
	lockState       ship.MissileLock
	lockProgress    float64 // seconds accumulated in the seeker cone
	lockTime        float64 // seconds needed for a full lock
	lockConeDeg     float64
	cooldownLeft    float64 // seconds until the seeker rearms
	missileCooldown float64
}

func (game *SkirmishGame) CastArmament(data interface{}) *Armament {
	return data.(*Armament)
}

func NewArmament(spec ShipSpec, tps int) *Armament {
	shotCooldown := 0
	if spec.PrimaryRate > 0 {
		shotCooldown = int(float64(tps) / spec.PrimaryRate)
	}

	return &Armament{
		heatPerShot:  spec.PrimaryHeatCost,
		coolingRate:  spec.PrimaryCooling,
		shotCooldown: shotCooldown,
		lastShotTick: -shotCooldown,

		missileAmmo:     spec.MissileAmmo,
		lockState:       ship.LockIdle,
		lockTime:        spec.MissileLockTime,
		lockConeDeg:     spec.MissileLockCone,
		missileCooldown: spec.MissileCooldown,
	}
}

func (a Armament) GetHeat() float64 {
	return a.heat
}

func (a Armament) GetMissileAmmo() int {
	return a.missileAmmo
}

func (a Armament) GetLockState() ship.MissileLock {
	return a.lockState
}

// CanFirePrimary: below the heat ceiling and past the rate-of-fire cooldown.
func (a Armament) CanFirePrimary(tick int) bool {
	return a.heat < 1 && tick-a.lastShotTick >= a.shotCooldown
}

func (a *Armament) FirePrimary(tick int) {
	a.lastShotTick = tick
	a.heat += a.heatPerShot
	if a.heat > 1 {
		a.heat = 1
	}
}

func (a Armament) CanFireMissile() bool {
	return a.missileAmmo > 0 && a.lockState != ship.LockCooldown
}

// FireMissile spends a round and drops the seeker into cooldown.
func (a *Armament) FireMissile() {
	if a.missileAmmo <= 0 {
		return
	}

	a.missileAmmo--
	a.lockState = ship.LockCooldown
	a.lockProgress = 0
	a.cooldownLeft = a.missileCooldown
}

// StepLock advances the seeker state machine by one tick. coneHold is true
// while a visible enemy sits inside the seeker cone.
func (a *Armament) StepLock(coneHold bool, dt float64) {
	switch a.lockState {
	case ship.LockIdle:
		if coneHold {
			a.lockState = ship.LockLocking
			a.lockProgress = 0
		}
	case ship.LockLocking:
		if !coneHold {
			a.lockState = ship.LockIdle
			a.lockProgress = 0
			return
		}
		a.lockProgress += dt
		if a.lockProgress >= a.lockTime {
			a.lockState = ship.LockLocked
		}
	case ship.LockLocked:
		if !coneHold {
			a.lockState = ship.LockIdle
			a.lockProgress = 0
		}
	case ship.LockCooldown:
		a.cooldownLeft -= dt
		if a.cooldownLeft <= 0 {
			a.lockState = ship.LockIdle
			a.cooldownLeft = 0
		}
	}
}

// Cool dissipates primary heat.
func (a *Armament) Cool(dt float64) {
	a.heat -= a.coolingRate * dt
	if a.heat < 0 {
		a.heat = 0
	}
}

func (a Armament) GetLockConeDeg() float64 {
	return a.lockConeDeg
}
