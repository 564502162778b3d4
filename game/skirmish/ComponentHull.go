package skirmish

// Hull tracks structural integrity and the regenerating shield. Damage drains
// the shield first; the regen clock restarts on every hit.
type Hull struct {
	maxHull float64
	hull    float64

	maxShield       float64
	shield          float64
	shieldRegenRate float64
	regenWaitTicks  int
	lastHitTick     int
}

func (game *SkirmishGame) CastHull(data interface{}) *Hull {
	return data.(*Hull)
}

func NewHull(maxHull float64, maxShield float64, regenRate float64, regenWaitTicks int) *Hull {
	return &Hull{
		maxHull:         maxHull,
		hull:            maxHull,
		maxShield:       maxShield,
		shield:          maxShield,
		shieldRegenRate: regenRate,
		regenWaitTicks:  regenWaitTicks,
		lastHitTick:     -regenWaitTicks,
	}
}

func (h Hull) GetHull() float64 {
	return h.hull
}

func (h Hull) GetShield() float64 {
	return h.shield
}

func (h Hull) HullFraction() float64 {
	if h.maxHull <= 0 {
		return 0
	}
	return h.hull / h.maxHull
}

func (h Hull) ShieldFraction() float64 {
	if h.maxShield <= 0 {
		return 0
	}
	return h.shield / h.maxShield
}

func (h Hull) IsDestroyed() bool {
	return h.hull <= 0
}

// Damage absorbs the hit, shield first, and stamps the regen clock.
func (h *Hull) Damage(amount float64, tick int) {
	if amount <= 0 {
		return
	}

	h.lastHitTick = tick

	absorbed := amount
	if absorbed > h.shield {
		absorbed = h.shield
	}
	h.shield -= absorbed

	remaining := amount - absorbed
	h.hull -= remaining
	if h.hull < 0 {
		h.hull = 0
	}
}

// Regenerate tops the shield back up once the regen delay has elapsed.
func (h *Hull) Regenerate(tick int, dt float64) {
	if tick-h.lastHitTick < h.regenWaitTicks {
		return
	}

	h.shield += h.shieldRegenRate * dt
	if h.shield > h.maxShield {
		h.shield = h.maxShield
	}
}

func (h *Hull) Restore() *Hull {
	h.hull = h.maxHull
	h.shield = h.maxShield
	return h
}
