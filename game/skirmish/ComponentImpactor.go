package skirmish

type Impactor struct {
	damage float64
}

func (game *SkirmishGame) CastImpactor(data interface{}) *Impactor {
	return data.(*Impactor)
}

func (i Impactor) GetDamage() float64 {
	return i.damage
}
