package skirmish

import (
	"github.com/bytearena/ecs"

	"github.com/amindell11/astronomical-home-sub002/game/ai"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Brain attaches an AI agent to a ship entity, plus the context handed to it
// this tick and the command it answered with.
type Brain struct {
	agent  *ai.Agent
	tuning ship.SteeringTuning

	context ship.Context
	command ship.Command
	enemyID ecs.EntityID
}

func (game *SkirmishGame) CastBrain(data interface{}) *Brain {
	return data.(*Brain)
}

func NewBrain(agent *ai.Agent, tuning ship.SteeringTuning) *Brain {
	return &Brain{agent: agent, tuning: tuning}
}

func (b Brain) GetTuning() ship.SteeringTuning {
	return b.tuning
}

func (b *Brain) SetEnemyID(id ecs.EntityID) *Brain {
	b.enemyID = id
	return b
}

func (b Brain) GetEnemyID() ecs.EntityID {
	return b.enemyID
}

func (b *Brain) GetAgent() *ai.Agent {
	return b.agent
}

func (b *Brain) SetContext(ctx ship.Context) *Brain {
	b.context = ctx
	return b
}

func (b Brain) GetContext() ship.Context {
	return b.context
}

func (b *Brain) SetCommand(cmd ship.Command) *Brain {
	b.command = cmd
	return b
}

func (b Brain) GetCommand() ship.Command {
	return b.command
}
