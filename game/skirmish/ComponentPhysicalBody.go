package skirmish

import (
	"github.com/bytearena/box2d"

	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

func (game *SkirmishGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody wraps one box2d body. Headings are degrees clockwise from
// north; box2d angles are radians counterclockwise from east, converted at
// this boundary and nowhere else.
type PhysicalBody struct {
	body *box2d.B2Body

	radius         float64
	maxSpeed       float64
	maxTurnRateDeg float64
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p *PhysicalBody) SetBody(body *box2d.B2Body) *PhysicalBody {
	p.body = body
	return p
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	v := p.body.GetPosition()
	return vector.MakeVector2(v.X, v.Y)
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(v.ToB2Vec2(), p.body.GetAngle())
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	v := p.body.GetLinearVelocity()
	return vector.MakeVector2(v.X, v.Y)
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetLinearVelocity(v.ToB2Vec2())
	return p
}

func (p PhysicalBody) GetHeadingDeg() float64 {
	return trigo.NormalizeDeg(90 - trigo.RadToDeg(p.body.GetAngle()))
}

func (p *PhysicalBody) SetHeadingDeg(deg float64) *PhysicalBody {
	p.body.SetTransform(p.body.GetPosition(), trigo.DegToRad(90-deg))
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}

func (p PhysicalBody) GetMaxSpeed() float64 {
	return p.maxSpeed
}

func (p *PhysicalBody) SetMaxSpeed(maxSpeed float64) *PhysicalBody {
	p.maxSpeed = maxSpeed
	return p
}

func (p PhysicalBody) GetMaxTurnRateDeg() float64 {
	return p.maxTurnRateDeg
}

func (p *PhysicalBody) SetMaxTurnRateDeg(rate float64) *PhysicalBody {
	p.maxTurnRateDeg = rate
	return p
}

// Kinematics snapshots the body in the AI core's frame of reference.
func (p PhysicalBody) Kinematics() ship.Kinematics {
	return ship.MakeKinematics(p.GetPosition(), p.GetVelocity(), p.GetHeadingDeg())
}
