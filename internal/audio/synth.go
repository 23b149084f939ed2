// Package audio synthesizes the game's sound effects from waveform
// parameters and plays them back. No audio assets are read from disk.
package audio

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Wave selects the oscillator shape for tone generation.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Buffer is an immutable sequence of mono amplitude samples in [-1, 1].
// Buffers are generated once per effect and replayed on trigger.
type Buffer []float64

// ErrInvalidParams reports unusable synthesis parameters.
// Synthesis failures are fatal at startup, before the game loop runs.
var ErrInvalidParams = errors.New("invalid synthesis parameters")

// Params describes a sound effect to synthesize.
type Params struct {
	Wave       Wave
	Freq       float64 // Oscillator frequency in Hz (ignored for noise)
	Duration   float64 // Length in seconds
	Volume     float64 // Peak amplitude, 0..1
	FadeOut    float64 // Linear fade at the tail, in seconds
	SampleRate int     // Samples per second
}

func (p Params) validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidParams, p.Duration)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParams, p.SampleRate)
	}
	return nil
}

// Tone generates a single-oscillator tone with an optional linear fade-out.
// Pure and deterministic: the same params always produce the same buffer.
func Tone(p Params) (Buffer, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	n := int(p.Duration * float64(p.SampleRate))
	fade := int(p.FadeOut * float64(p.SampleRate))
	buf := make(Buffer, n)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(p.SampleRate)

		var s float64
		switch p.Wave {
		case WaveSine:
			s = math.Sin(2 * math.Pi * p.Freq * t)
		case WaveSquare:
			if math.Sin(2*math.Pi*p.Freq*t) >= 0 {
				s = 1.0
			} else {
				s = -1.0
			}
		case WaveSaw:
			s = 2.0*math.Mod(t*p.Freq, 1.0) - 1.0
		}

		// Linear fade over the last fade samples
		if fade > 0 && i > n-fade {
			s *= float64(n-i) / float64(fade)
		}

		buf[i] = p.Volume * s
	}
	return buf, nil
}

// NoiseBurst generates a decaying burst of softened noise for explosions.
// Averaging three uniform samples centers the distribution, which sounds
// less harsh than raw white noise. The rng makes generation reproducible.
func NoiseBurst(p Params, rng *rand.Rand) (Buffer, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	n := int(p.Duration * float64(p.SampleRate))
	buf := make(Buffer, n)

	for i := 0; i < n; i++ {
		env := 1.0 - float64(i)/float64(n)
		if env < 0 {
			env = 0
		}
		r := (rng.Float64() + rng.Float64() + rng.Float64()) / 3.0
		buf[i] = p.Volume * (r*2.0 - 1.0) * env
	}
	return buf, nil
}
