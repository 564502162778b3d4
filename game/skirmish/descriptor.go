package skirmish

import (
	"github.com/bytearena/ecs"
)

type bodyKind string

// bodyKinds tags every box2d body with what it is, so collision and raycast
// callbacks can sort bodies out without an entity lookup.
var bodyKinds = struct {
	Ship     bodyKind
	Obstacle bodyKind
	Shell    bodyKind
	Missile  bodyKind
}{
	Ship:     "ship",
	Obstacle: "obstacle",
	Shell:    "shell",
	Missile:  "missile",
}

type bodyDescriptor struct {
	Kind bodyKind
	ID   ecs.EntityID
}

func makeBodyDescriptor(kind bodyKind, id ecs.EntityID) bodyDescriptor {
	return bodyDescriptor{Kind: kind, ID: id}
}
