package component

import "testing"

func TestHealthApplyDamage(t *testing.T) {
	cases := []struct {
		name        string
		max         float64
		damage      float64
		wantHP      float64
		wantApplied bool
		wantLethal  bool
	}{
		{"partial", 16, 5, 11, true, false},
		{"exact", 16, 16, 0, true, true},
		{"overkill_clamps", 16, 20, 0, true, true},
		{"zero_ignored", 16, 0, 16, false, false},
		{"negative_ignored", 16, -3, 16, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(c.max)
			applied, lethal := h.ApplyDamage(c.damage, CombatEvent{})
			if applied != c.wantApplied || lethal != c.wantLethal {
				t.Fatalf("ApplyDamage = (%v, %v), want (%v, %v)", applied, lethal, c.wantApplied, c.wantLethal)
			}
			if h.CurrentHP() != c.wantHP {
				t.Fatalf("hp = %v, want %v", h.CurrentHP(), c.wantHP)
			}
		})
	}
}

func TestHealthCallbacks(t *testing.T) {
	h := NewHealth(2)
	var damaged, died int
	h.OnDamage = func(*Health, CombatEvent) { damaged++ }
	h.OnDeath = func(*Health, CombatEvent) { died++ }

	h.ApplyDamage(1, CombatEvent{})
	h.ApplyDamage(1, CombatEvent{})
	h.ApplyDamage(1, CombatEvent{})

	if damaged != 2 || died != 1 {
		t.Fatalf("damaged=%d died=%d, want 2 and 1", damaged, died)
	}
	h.Revive(1)
	if !h.IsAlive() {
		t.Fatalf("revived health is not alive")
	}
}

func TestInvincibility(t *testing.T) {
	g := NewInvincibility(60)
	if g.Vulnerable() {
		t.Fatalf("guard at counter == max must not be vulnerable")
	}
	g.Tick()
	if !g.Vulnerable() {
		t.Fatalf("guard past max should be vulnerable")
	}
	g.Reset()
	for i := 0; i < 60; i++ {
		if g.Vulnerable() {
			t.Fatalf("vulnerable after %d ticks", i)
		}
		g.Tick()
	}
	g.Tick()
	if !g.Vulnerable() {
		t.Fatalf("not vulnerable after 61 ticks")
	}
}
