package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Chime and buzz shaping
const (
	BaseFrequency = 440.0 // Step 0 pitch (A4)

	ChimeDuration = 180 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 150 * time.Millisecond

	BuzzFrequency = 110.0
	BuzzDuration  = 150 * time.Millisecond
	BuzzAttack    = 5 * time.Millisecond
	BuzzRelease   = 60 * time.Millisecond

	ChimeVolume = 0.5
	BuzzVolume  = 0.35
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining <= e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// FrequencyFor maps a generation index to a pitch rising one octave across the animation
// Step 0 plays BaseFrequency; step maxSteps plays twice that.
func FrequencyFor(step, maxSteps int) float64 {
	if maxSteps <= 0 || step <= 0 {
		return BaseFrequency
	}
	if step > maxSteps {
		step = maxSteps
	}
	return BaseFrequency * math.Pow(2, float64(step)/float64(maxSteps))
}

// CreateChime generates a short sine ding with a quiet octave overtone
func CreateChime(freq float64, rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(freq, ChimeDuration, WaveSine, rate), ChimeDuration, ChimeAttack, ChimeRelease, rate)
	over := NewEnvelope(NewOscillator(freq*2, ChimeDuration, WaveSine, rate), ChimeDuration, ChimeAttack, ChimeRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, ChimeVolume)
}

// CreateBuzz generates the low saw buzz played with error advisories
func CreateBuzz(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(BuzzFrequency, BuzzDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, BuzzDuration, BuzzAttack, BuzzRelease, rate)
	return newVolume(shaped, BuzzVolume)
}
