package skirmish

import (
	"encoding/json"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

// FrameObject is one renderable body in an observation frame.
type FrameObject struct {
	Id          string         `json:"id"`
	Type        string         `json:"type"`
	Position    vector.Vector2 `json:"position"`
	Velocity    vector.Vector2 `json:"velocity"`
	Radius      float64        `json:"radius"`
	HeadingDeg  float64        `json:"headingDeg"`
	Callsign    string         `json:"callsign,omitempty"`
	Hull        float64        `json:"hull,omitempty"`
	Shield      float64        `json:"shield,omitempty"`
	Behavior    string         `json:"behavior,omitempty"`
	MissileLock string         `json:"missileLock,omitempty"`

	Scores map[string]float64 `json:"scores,omitempty"`
}

// FrameMessage is the per-tick observation snapshot sent to viewers.
type FrameMessage struct {
	Tick    int           `json:"tick"`
	Objects []FrameObject `json:"objects"`
}

// FrameJSON renders the current world state for the observation stream.
func (game *SkirmishGame) FrameJSON() []byte {
	msg := FrameMessage{
		Tick:    game.ticknum,
		Objects: []FrameObject{},
	}

	for _, entityresult := range game.renderableView.Get() {
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		obj := FrameObject{
			Id:         entityresult.Entity.GetID().String(),
			Type:       renderAspect.GetType(),
			Position:   physicalAspect.GetPosition(),
			Velocity:   physicalAspect.GetVelocity(),
			Radius:     physicalAspect.GetRadius(),
			HeadingDeg: physicalAspect.GetHeadingDeg(),
		}

		id := entityresult.Entity.GetID()

		if qr := game.getEntity(id, game.callsignComponent); qr != nil {
			obj.Callsign = game.CastCallsign(qr.Components[game.callsignComponent]).GetName()
		}

		if qr := game.getEntity(id, game.hullComponent); qr != nil {
			hullAspect := game.CastHull(qr.Components[game.hullComponent])
			obj.Hull = hullAspect.HullFraction()
			obj.Shield = hullAspect.ShieldFraction()
		}

		if qr := game.getEntity(id, game.brainComponent); qr != nil {
			brainAspect := game.CastBrain(qr.Components[game.brainComponent])
			agent := brainAspect.GetAgent()
			obj.Behavior = agent.ActiveBehavior()
			obj.MissileLock = brainAspect.GetContext().MissileLock.String()

			names := agent.BehaviorNames()
			scores := agent.UtilityScores()
			obj.Scores = make(map[string]float64, len(names))
			for i, name := range names {
				obj.Scores[name] = scores[i]
			}
		}

		msg.Objects = append(msg.Objects, obj)
	}

	res, _ := json.Marshal(msg)
	return res
}

// ShipStanding is one scoreboard line for a ship still in the arena.
type ShipStanding struct {
	Callsign string  `json:"callsign"`
	Hull     float64 `json:"hull"`
	Shield   float64 `json:"shield"`
}

// Standings lists the surviving ships; destroyed ships are announced on the
// event bus when they die and no longer appear here.
func (game *SkirmishGame) Standings() []ShipStanding {
	standings := []ShipStanding{}

	for _, entityresult := range game.shipsView.Get() {
		hullAspect := game.CastHull(entityresult.Components[game.hullComponent])

		standing := ShipStanding{
			Hull:   hullAspect.HullFraction(),
			Shield: hullAspect.ShieldFraction(),
		}

		if qr := game.getEntity(entityresult.Entity.GetID(), game.callsignComponent); qr != nil {
			standing.Callsign = game.CastCallsign(qr.Components[game.callsignComponent]).GetName()
		}

		standings = append(standings, standing)
	}

	return standings
}
