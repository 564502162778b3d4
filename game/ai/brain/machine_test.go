package brain

import (
	"testing"

	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// stubBehavior reports a scripted utility and records its lifecycle calls.
type stubBehavior struct {
	name    string
	utility float64

	enters int
	exits  int
	ticks  int
}

func (b *stubBehavior) Name() string                      { return b.name }
func (b *stubBehavior) Enter(ctx ship.Context)            { b.enters++ }
func (b *stubBehavior) Tick(ctx ship.Context, dt float64) { b.ticks++ }
func (b *stubBehavior) Exit()                             { b.exits++ }
func (b *stubBehavior) Utility(ctx ship.Context) float64  { return b.utility }

func TestMachineEntersFirstBehaviorOnFirstUpdate(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.1}
	b := &stubBehavior{name: "b", utility: 0.9}
	m := NewMachine(1.0, a, b)

	m.Update(ship.Context{}, 0.1)

	if a.enters != 1 {
		t.Fatalf("first behavior entered %d times, want 1", a.enters)
	}

	// b scores higher, but the dwell clock just started
	if m.ActiveName() != "a" {
		t.Fatalf("active = %q on first update, want %q", m.ActiveName(), "a")
	}
}

func TestMachineHoldsThroughDwell(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.1}
	b := &stubBehavior{name: "b", utility: 0.9}
	m := NewMachine(1.0, a, b)

	// nine ticks of 0.1s keep us under the one second dwell
	for i := 0; i < 9; i++ {
		m.Update(ship.Context{}, 0.1)
	}

	if m.ActiveName() != "a" {
		t.Fatalf("switched to %q before the dwell elapsed", m.ActiveName())
	}

	// the tenth tick crosses it
	m.Update(ship.Context{}, 0.1)

	if m.ActiveName() != "b" {
		t.Fatalf("active = %q after dwell, want %q", m.ActiveName(), "b")
	}

	if a.exits != 1 || b.enters != 1 {
		t.Fatalf("lifecycle not run on switch: a.exits=%d b.enters=%d", a.exits, b.enters)
	}
}

func TestMachineTicksActiveEveryUpdate(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.5}
	m := NewMachine(1.0, a)

	for i := 0; i < 5; i++ {
		m.Update(ship.Context{}, 0.1)
	}

	if a.ticks != 5 {
		t.Fatalf("active behavior ticked %d times, want 5", a.ticks)
	}
}

func TestMachineTiePrefersActive(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.5}
	b := &stubBehavior{name: "b", utility: 0.5}
	m := NewMachine(0, a, b)

	for i := 0; i < 20; i++ {
		m.Update(ship.Context{}, 0.1)
	}

	if m.ActiveName() != "a" {
		t.Fatalf("exact tie left the active behavior, now %q", m.ActiveName())
	}

	if a.exits != 0 || b.enters != 0 {
		t.Fatal("tie caused a spurious switch")
	}
}

func TestMachineTiePrefersDeclarationOrder(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.1}
	b := &stubBehavior{name: "b", utility: 0.9}
	c := &stubBehavior{name: "c", utility: 0.9}
	m := NewMachine(0, a, b, c)

	m.Update(ship.Context{}, 0.1)

	if m.ActiveName() != "b" {
		t.Fatalf("tie between b and c resolved to %q, want %q", m.ActiveName(), "b")
	}
}

func TestMachineNoFlappingUnderAlternatingScores(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.6}
	b := &stubBehavior{name: "b", utility: 0.4}
	m := NewMachine(1.0, a, b)

	switches := 0
	prev := ""

	// scores flip every tick; dwell must cap switches at one per second
	for i := 0; i < 40; i++ {
		a.utility, b.utility = b.utility, a.utility
		m.Update(ship.Context{}, 0.1)

		if m.ActiveName() != prev {
			if prev != "" {
				switches++
			}
			prev = m.ActiveName()
		}
	}

	// 4 simulated seconds, 1s dwell: at most 4 switches
	if switches > 4 {
		t.Fatalf("%d switches in 4s with a 1s dwell", switches)
	}
}

func TestMachineScoresSnapshot(t *testing.T) {
	a := &stubBehavior{name: "a", utility: 0.25}
	b := &stubBehavior{name: "b", utility: 0.75}
	m := NewMachine(1.0, a, b)

	m.Update(ship.Context{}, 0.1)

	scores := m.Scores()
	if len(scores) != 2 || scores[0] != 0.25 || scores[1] != 0.75 {
		t.Fatalf("scores = %v, want [0.25 0.75]", scores)
	}

	// mutating the copy must not reach the machine
	scores[0] = 99
	if m.Scores()[0] != 0.25 {
		t.Fatal("Scores returned internal state by reference")
	}
}
