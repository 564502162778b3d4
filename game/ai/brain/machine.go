package brain

import (
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// Machine owns the fixed set of behaviors and the switching rule: highest
// utility wins, ties prefer the active behavior then declaration order, and a
// switch only happens after MinTimeInState seconds in the current one.
type Machine struct {
	behaviors []Behavior
	scores    []float64

	active       int
	entered      bool
	clock        float64
	lastSwitchAt float64
	minDwell     float64
}

// NewMachine builds a machine over the given behaviors; the first one is the
// initial behavior.
func NewMachine(minDwell float64, behaviors ...Behavior) *Machine {
	return &Machine{
		behaviors: behaviors,
		scores:    make([]float64, len(behaviors)),
		minDwell:  minDwell,
	}
}

// Update re-scores every behavior, applies the switching rule, then ticks the
// active behavior. Called exactly once per simulation tick.
func (m *Machine) Update(ctx ship.Context, dt float64) {
	if len(m.behaviors) == 0 {
		return
	}

	m.clock += dt

	if !m.entered {
		m.behaviors[m.active].Enter(ctx)
		m.entered = true
		m.lastSwitchAt = m.clock
	}

	for i, b := range m.behaviors {
		m.scores[i] = b.Utility(ctx)
	}

	// first-declared max; an exact tie with the active behavior keeps it
	best := 0
	for i, s := range m.scores {
		if s > m.scores[best] {
			best = i
		}
	}
	if m.scores[m.active] == m.scores[best] {
		best = m.active
	}

	if best != m.active && m.clock-m.lastSwitchAt >= m.minDwell {
		m.behaviors[m.active].Exit()
		m.active = best
		m.lastSwitchAt = m.clock
		m.behaviors[m.active].Enter(ctx)
	}

	m.behaviors[m.active].Tick(ctx, dt)
}

func (m *Machine) ActiveIndex() int {
	return m.active
}

func (m *Machine) ActiveName() string {
	if len(m.behaviors) == 0 {
		return ""
	}

	return m.behaviors[m.active].Name()
}

// Scores is the utility computed for each behavior at the last Update, in
// declaration order. Read-only diagnostics for telemetry/learning layers.
func (m *Machine) Scores() []float64 {
	out := make([]float64, len(m.scores))
	copy(out, m.scores)
	return out
}

func (m *Machine) BehaviorNames() []string {
	names := make([]string, len(m.behaviors))
	for i, b := range m.behaviors {
		names[i] = b.Name()
	}
	return names
}
