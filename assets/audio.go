package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/prefabs"
)

const defaultSampleRate = 44100

// sweep is a sine oscillator gliding linearly from 'from' to 'to' over n
// samples.
type sweep struct {
	from, to float64
	rate     float64
	n        int
	pos      int
	phase    float64
}

func (o *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.n {
			return i, i > 0
		}
		t := float64(o.pos) / float64(o.n)
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0], samples[i][1] = v, v
		o.phase += (o.from + (o.to-o.from)*t) / o.rate
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// fadeOut scales a stream linearly from 1 down to 0 over n samples.
type fadeOut struct {
	beep.Streamer
	n, pos int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1 - float64(f.pos)/float64(f.n)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Tone returns the streamer for tone: a sine sweeping linearly from
// Frequency to Sweep under a linear fade out, scaled by Volume. It also
// returns the number of samples the stream yields.
func Tone(tone prefabs.ToneSpec, sampleRate int) (beep.Streamer, int) {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return beep.Silence(0), 0
	}
	end := tone.Sweep
	if end <= 0 {
		end = tone.Frequency
	}
	osc := &sweep{from: tone.Frequency, to: end, rate: float64(sampleRate), n: n}
	return volume(&fadeOut{Streamer: osc, n: n}, math.Min(1, tone.Volume)), n
}

// Synthesize renders tone as 16-bit little endian stereo PCM for an ebiten
// audio player.
func Synthesize(tone prefabs.ToneSpec, sampleRate int) []byte {
	s, n := Tone(tone, sampleRate)
	if n == 0 {
		return nil
	}
	buf := make([]byte, 0, n*4)
	chunk := make([][2]float64, 512)
	for {
		k, ok := s.Stream(chunk)
		for i := 0; i < k; i++ {
			l := int16(common.ClampF(chunk[i][0], -1, 1) * math.MaxInt16)
			r := int16(common.ClampF(chunk[i][1], -1, 1) * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(l))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(r))
		}
		if !ok || k == 0 {
			return buf
		}
	}
}

// ToneCues plays a synthesized tone per gameplay cue.
type ToneCues struct {
	players map[component.Cue]*audio.Player
}

// NewToneCues builds one player per tone in spec. The audio context is
// shared by the whole process.
func NewToneCues(spec prefabs.AudioSpec) (*ToneCues, error) {
	rate := spec.SampleRate
	if rate <= 0 {
		rate = defaultSampleRate
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(rate)
	}

	t := &ToneCues{players: map[component.Cue]*audio.Player{}}
	for _, tone := range spec.Tones {
		c := component.ParseCue(tone.Cue)
		if c == component.CueNone {
			return nil, fmt.Errorf("audio: unknown cue %q", tone.Cue)
		}
		t.players[c] = ctx.NewPlayerFromBytes(Synthesize(tone, ctx.SampleRate()))
	}
	return t, nil
}

func (t *ToneCues) play(c component.Cue) {
	if t == nil {
		return
	}
	p := t.players[c]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (t *ToneCues) OnHit()          { t.play(component.CueHit) }
func (t *ToneCues) OnKill()         { t.play(component.CueKill) }
func (t *ToneCues) OnPlayerDamage() { t.play(component.CuePlayerDamage) }
func (t *ToneCues) OnPlayerDeath()  { t.play(component.CuePlayerDeath) }
func (t *ToneCues) OnRestartCue()   { t.play(component.CueRestart) }
