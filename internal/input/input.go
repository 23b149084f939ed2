// Package input maps keyboard state into per-frame intent records.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as "held" after its last byte.
// Terminals deliver repeats, not key-up events, so a short hold window is
// what makes chords like thrust+turn+fire detectable.
const keyHoldDuration = 30 * time.Millisecond

// Intent is the per-frame summary of player input that drives ship
// kinematics and actions. The zero value is the neutral intent.
type Intent struct {
	Thrust      bool
	Reverse     bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Fire        bool
	PauseToggle bool
	Restart     bool
	Quit        bool

	// AimAngle is an absolute heading in radians for sources that can
	// supply one (pointer devices, scripted replays). Keyboard sources
	// leave AimSet false and steer through TurnLeft/TurnRight instead.
	AimAngle float64
	AimSet   bool
}

// Source yields the current intent once per frame. Poll must not block;
// a source with no device behind it returns the neutral intent.
type Source interface {
	Poll() Intent
}

// keyState tracks the last time each key was seen.
type keyState struct {
	thrust      time.Time
	reverse     time.Time
	strafeLeft  time.Time
	strafeRight time.Time
	turnLeft    time.Time
	turnRight   time.Time
	fire        time.Time
	pause       time.Time
	restart     time.Time
	quit        time.Time
}

// Keyboard reads raw terminal bytes on a background goroutine and exposes
// them as frame-sampled intents.
type Keyboard struct {
	ch    chan byte
	state keyState
}

// NewKeyboard starts reading from r. The reader goroutine exits when r
// returns an error (terminal closed, session ended).
func NewKeyboard(r *bufio.Reader) *Keyboard {
	k := &Keyboard{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(k.ch)
				return
			}
			k.ch <- b
		}
	}()
	return k
}

// Poll drains all pending bytes and returns the current intent. Keys seen
// within the hold window are reported as pressed, so simultaneous
// combinations survive the byte-at-a-time terminal protocol.
func (k *Keyboard) Poll() Intent {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-k.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI arrow sequences: ESC [ A/B/C/D
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				k.state.thrust = now
				i += 2
				continue
			case 'B':
				k.state.reverse = now
				i += 2
				continue
			case 'C':
				k.state.turnRight = now
				i += 2
				continue
			case 'D':
				k.state.turnLeft = now
				i += 2
				continue
			}
		}

		k.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Intent{
		Thrust:      held(k.state.thrust),
		Reverse:     held(k.state.reverse),
		StrafeLeft:  held(k.state.strafeLeft),
		StrafeRight: held(k.state.strafeRight),
		TurnLeft:    held(k.state.turnLeft),
		TurnRight:   held(k.state.turnRight),
		Fire:        held(k.state.fire),
		PauseToggle: held(k.state.pause),
		Restart:     held(k.state.restart),
		Quit:        held(k.state.quit),
	}
}

// Reset clears all held-key state, e.g. when transitioning screens so a
// held restart key does not immediately re-fire.
func (k *Keyboard) Reset() {
	k.state = keyState{}
}

func (k *Keyboard) applyByte(b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		k.state.thrust = now
	case 's', 'S':
		k.state.reverse = now
	case 'a', 'A':
		k.state.turnLeft = now
	case 'd', 'D':
		k.state.turnRight = now
	case 'u', 'U':
		k.state.strafeLeft = now
	case 'o', 'O':
		k.state.strafeRight = now
	case ' ':
		k.state.fire = now
	case 'p', 'P':
		k.state.pause = now
	case 'r', 'R', '\n', '\r':
		k.state.restart = now
	case 'q', 'Q', '\x03':
		k.state.quit = now
	}
}

var _ Source = (*Keyboard)(nil)
