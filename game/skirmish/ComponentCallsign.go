package skirmish

import (
	petname "github.com/dustinkirkland/golang-petname"
	uuid "github.com/satori/go.uuid"
)

// Callsign identifies a combatant to observers: a stable uuid and a readable
// generated name.
type Callsign struct {
	id   uuid.UUID
	name string
}

func (game *SkirmishGame) CastCallsign(data interface{}) *Callsign {
	return data.(*Callsign)
}

func NewCallsign() *Callsign {
	return &Callsign{
		id:   uuid.NewV4(),
		name: petname.Generate(2, "-"),
	}
}

func (c Callsign) GetId() uuid.UUID {
	return c.id
}

func (c Callsign) GetName() string {
	return c.name
}
