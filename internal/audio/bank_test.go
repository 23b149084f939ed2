package audio

import (
	"math"
	"math/rand"
	"testing"
)

// TestNewBankGeneratesAllEffects verifies every effect has a buffer.
func TestNewBankGeneratesAllEffects(t *testing.T) {
	bank, err := NewBank(SampleRate, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	for _, e := range []Effect{EffectFire, EffectExplosion, EffectThrust} {
		buf := bank.Buffer(e)
		if len(buf) == 0 {
			t.Errorf("effect %d: empty buffer", e)
		}
	}
}

// TestNewBankRejectsBadRate verifies startup fails on an unusable rate.
func TestNewBankRejectsBadRate(t *testing.T) {
	if _, err := NewBank(0, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("NewBank(0) succeeded, want error")
	}
}

// TestBankBufferUnknownEffect verifies out-of-range lookups return nil.
func TestBankBufferUnknownEffect(t *testing.T) {
	bank, err := NewBank(SampleRate, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	if got := bank.Buffer(Effect(99)); got != nil {
		t.Errorf("Buffer(99) = %v, want nil", got)
	}
	if got := bank.Buffer(Effect(-1)); got != nil {
		t.Errorf("Buffer(-1) = %v, want nil", got)
	}
}

// TestBankSeconds verifies effect lengths match their synthesis durations.
func TestBankSeconds(t *testing.T) {
	bank, err := NewBank(SampleRate, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	tests := []struct {
		effect Effect
		want   float64
	}{
		{EffectFire, 0.09},
		{EffectExplosion, 0.3},
		{EffectThrust, 0.2},
	}
	for _, tt := range tests {
		got := bank.Seconds(tt.effect)
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("Seconds(%d) = %f, want %f", tt.effect, got, tt.want)
		}
	}
}

// TestBufferStreamerDrains verifies the beep adapter streams the whole
// buffer as stereo and then reports completion.
func TestBufferStreamerDrains(t *testing.T) {
	buf := Buffer{0.1, -0.2, 0.3}
	s := &bufferStreamer{buf: buf}

	samples := make([][2]float64, 2)
	n, ok := s.Stream(samples)
	if n != 2 || !ok {
		t.Fatalf("first Stream = (%d, %v), want (2, true)", n, ok)
	}
	if samples[0][0] != 0.1 || samples[0][1] != 0.1 {
		t.Errorf("sample 0 = %v, want mono 0.1 in both channels", samples[0])
	}

	n, ok = s.Stream(samples)
	if n != 1 || !ok {
		t.Fatalf("second Stream = (%d, %v), want (1, true)", n, ok)
	}

	n, ok = s.Stream(samples)
	if n != 0 || ok {
		t.Fatalf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Err = %v, want nil", s.Err())
	}
}
