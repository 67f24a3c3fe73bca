package component

// Health is shared by the player and every enemy variant.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	OnDamage func(h *Health, evt CombatEvent)
	OnDeath  func(h *Health, evt CombatEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the owner still has hit points.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount and clamps at zero. It reports whether damage
// was applied and whether it was lethal.
func (h *Health) ApplyDamage(amount float64, evt CombatEvent) (applied, lethal bool) {
	if h == nil || h.Dead || amount <= 0 {
		return false, false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
		return true, true
	}
	return true, false
}

// Revive restores the owner to hp, clamped to [0, Max].
func (h *Health) Revive(hp float64) {
	if h == nil {
		return
	}
	h.SetCurrentHP(hp)
	h.Dead = h.Current <= 0
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() float64 {
	if h == nil {
		return 0
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() float64 {
	if h == nil {
		return 0
	}
	return h.Max
}

// SetCurrentHP sets the current health value and clamps to [0, Max].
func (h *Health) SetCurrentHP(v float64) {
	if h == nil {
		return
	}
	h.Current = v
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Max > 0 && h.Current > h.Max {
		h.Current = h.Max
	}
}

// Invincibility is the player's post-hit grace counter. The player can be hit
// only once Counter exceeds Max; a hit resets Counter to zero.
type Invincibility struct {
	Counter int
	Max     int
}

func NewInvincibility(max int) Invincibility {
	return Invincibility{Counter: max, Max: max}
}

// Tick advances the counter until it passes Max.
func (i *Invincibility) Tick() {
	if i == nil || i.Counter > i.Max {
		return
	}
	i.Counter++
}

func (i *Invincibility) Vulnerable() bool {
	return i != nil && i.Counter > i.Max
}

func (i *Invincibility) Reset() {
	if i == nil {
		return
	}
	i.Counter = 0
}
