package skirmish

import "github.com/bytearena/ecs"

// Missile is the seeker head: which entity it chases and how fast it flies.
type Missile struct {
	target ecs.EntityID
	speed  float64
}

func (game *SkirmishGame) CastMissile(data interface{}) *Missile {
	return data.(*Missile)
}

func (m Missile) GetTarget() ecs.EntityID {
	return m.target
}

func (m Missile) GetSpeed() float64 {
	return m.speed
}
