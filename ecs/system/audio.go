package system

import (
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/cues_mock.go -package=mocks . Cues

// Cues plays the sound of a gameplay cue.
type Cues interface {
	OnHit()
	OnKill()
	OnPlayerDamage()
	OnPlayerDeath()
	OnRestartCue()
}

// AudioSystem forwards this tick's cue events to the Cues collaborator.
type AudioSystem struct {
	cues  Cues
	Muted bool
}

func NewAudioSystem(cues Cues) *AudioSystem {
	return &AudioSystem{cues: cues}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || a.cues == nil || a.Muted {
		return
	}
	for _, evt := range w.Events().Items() {
		if evt.Type != ecs.EventCue {
			continue
		}
		if c, ok := evt.Data.(component.Cue); ok {
			PlayCue(a.cues, c)
		}
	}
}

// PlayCue calls the method of cues matching c.
func PlayCue(cues Cues, c component.Cue) {
	if cues == nil {
		return
	}
	switch c {
	case component.CueHit:
		cues.OnHit()
	case component.CueKill:
		cues.OnKill()
	case component.CueRestart:
		cues.OnRestartCue()
	case component.CuePlayerDamage:
		cues.OnPlayerDamage()
	case component.CuePlayerDeath:
		cues.OnPlayerDeath()
	}
}
