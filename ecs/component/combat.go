package component

import "github.com/jakecoffman/cp"

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventPlayerHit     CombatEventType = "player_hit"
)

// CombatEvent is emitted during collision resolution.
type CombatEvent struct {
	Type    CombatEventType
	Target  Variant
	Slot    int
	Damage  float64
	Frame   int
	Pos     cp.Vector
	Lethal  bool
	CueHint Cue
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Cue names the audio notification a collision maps to.
type Cue int

const (
	CueNone Cue = iota
	CueHit
	CueKill
	CueRestart
	CuePlayerDamage
	CuePlayerDeath
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	case CueRestart:
		return "restart"
	case CuePlayerDamage:
		return "player_damage"
	case CuePlayerDeath:
		return "player_death"
	}
	return "none"
}

// ParseCue maps a cue name back to its value.
func ParseCue(name string) Cue {
	for c := CueHit; c <= CuePlayerDeath; c++ {
		if c.String() == name {
			return c
		}
	}
	return CueNone
}
