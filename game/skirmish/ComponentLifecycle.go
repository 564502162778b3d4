package skirmish

// Lifecycle times an entity: birth tick, optional maximum age, and the death
// mark that the end-of-tick sweep turns into disposal.
type Lifecycle struct {
	tickBirth int
	tickDeath int
	maxAge    int // ticks; 0 means immortal
	onDeath   func()
}

func (game *SkirmishGame) CastLifecycle(data interface{}) *Lifecycle {
	return data.(*Lifecycle)
}

func (lc *Lifecycle) SetMaxAge(maxAge int) *Lifecycle {
	lc.maxAge = maxAge
	return lc
}

func (lc Lifecycle) GetBirth() int {
	return lc.tickBirth
}

func (lc Lifecycle) GetDeath() int {
	return lc.tickDeath
}

func (lc *Lifecycle) SetDeath(tick int) *Lifecycle {
	lc.tickDeath = tick
	return lc
}

func (lc Lifecycle) IsDead() bool {
	return lc.tickDeath > 0
}
