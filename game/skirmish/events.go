package skirmish

import (
	notify "github.com/bitly/go-notify"
	"github.com/bytearena/ecs"
)

// Pub/sub topics observers can hook into with notify.Start.
const (
	EventShipSpawned     = "skirmish:ship-spawned"
	EventShipDestroyed   = "skirmish:ship-destroyed"
	EventMissileLaunched = "skirmish:missile-launched"
)

type ShipSpawnedPayload struct {
	ShipID   ecs.EntityID
	Callsign string
	Tick     int
}

type ShipDestroyedPayload struct {
	ShipID   ecs.EntityID
	Callsign string
	Tick     int
}

type MissileLaunchedPayload struct {
	ShooterID ecs.EntityID
	MissileID ecs.EntityID
	Tick      int
}

func (game *SkirmishGame) postShipSpawned(shipID ecs.EntityID, callsign string) {
	notify.Post(EventShipSpawned, ShipSpawnedPayload{
		ShipID:   shipID,
		Callsign: callsign,
		Tick:     game.ticknum,
	})
}

func (game *SkirmishGame) postShipDestroyed(shipID ecs.EntityID) {
	payload := ShipDestroyedPayload{
		ShipID: shipID,
		Tick:   game.ticknum,
	}

	if qr := game.getEntity(shipID, game.callsignComponent); qr != nil {
		payload.Callsign = game.CastCallsign(qr.Components[game.callsignComponent]).GetName()
	}

	notify.Post(EventShipDestroyed, payload)
}

func (game *SkirmishGame) postMissileLaunched(shooterID ecs.EntityID, missileID ecs.EntityID) {
	notify.Post(EventMissileLaunched, MissileLaunchedPayload{
		ShooterID: shooterID,
		MissileID: missileID,
		Tick:      game.ticknum,
	})
}
