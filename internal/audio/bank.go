package audio

import (
	"fmt"
	"math/rand"
)

// SampleRate is the sample rate for all generated effects.
const SampleRate = 44100

// Effect identifies one of the game's sound effects.
type Effect int

const (
	EffectFire Effect = iota
	EffectExplosion
	EffectThrust
	effectCount
)

// Bank holds the pre-generated buffer for every effect.
// All buffers are synthesized once at startup; playback never allocates.
type Bank struct {
	buffers [effectCount]Buffer
	rate    int
}

// NewBank synthesizes all effects at the given sample rate.
// The rng seeds the explosion noise so tests can be deterministic.
func NewBank(sampleRate int, rng *rand.Rand) (*Bank, error) {
	b := &Bank{rate: sampleRate}

	fire, err := Tone(Params{
		Wave:       WaveSquare,
		Freq:       920,
		Duration:   0.09,
		Volume:     0.5,
		FadeOut:    0.02,
		SampleRate: sampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("fire effect: %w", err)
	}
	b.buffers[EffectFire] = fire

	explosion, err := NoiseBurst(Params{
		Duration:   0.3,
		Volume:     0.6,
		SampleRate: sampleRate,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("explosion effect: %w", err)
	}
	b.buffers[EffectExplosion] = explosion

	thrust, err := Tone(Params{
		Wave:       WaveSaw,
		Freq:       160,
		Duration:   0.2,
		Volume:     0.35,
		FadeOut:    0.05,
		SampleRate: sampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("thrust effect: %w", err)
	}
	b.buffers[EffectThrust] = thrust

	return b, nil
}

// Buffer returns the pre-generated buffer for the effect, or nil for
// an unknown effect.
func (b *Bank) Buffer(e Effect) Buffer {
	if e < 0 || e >= effectCount {
		return nil
	}
	return b.buffers[e]
}

// Rate returns the sample rate the bank was generated at.
func (b *Bank) Rate() int {
	return b.rate
}

// Seconds returns the playback length of the effect.
func (b *Bank) Seconds(e Effect) float64 {
	buf := b.Buffer(e)
	if buf == nil || b.rate <= 0 {
		return 0
	}
	return float64(len(buf)) / float64(b.rate)
}
